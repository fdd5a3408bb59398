package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"paygate/internal/services"
	"paygate/pkg/gatewaylog"
	"paygate/pkg/utils"
)

type stubWebhookService struct {
	decision services.AckDecision
	err      error

	gotBody      []byte
	gotSignature string
}

func (s *stubWebhookService) ProcessNotification(_ context.Context, rawBody []byte, signature string) (services.AckDecision, error) {
	s.gotBody = rawBody
	s.gotSignature = signature
	return s.decision, s.err
}

func performWebhook(stub *stubWebhookService, body, signature string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewWebhookController(stub, gatewaylog.NewNop())
	r.POST("/api/webhooks/paystack", ctrl.Handle)

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/paystack", bytes.NewBufferString(body))
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookHandleStatusCodes(t *testing.T) {
	tests := []struct {
		name     string
		decision services.AckDecision
		err      error
		wantCode int
	}{
		{name: "processed", decision: services.AckProcessed, wantCode: http.StatusOK},
		{name: "duplicate", decision: services.AckDuplicate, wantCode: http.StatusOK},
		{name: "unreconciled", decision: services.AckUnreconciled, wantCode: http.StatusOK},
		{name: "ignored", decision: services.AckIgnored, wantCode: http.StatusOK},
		{name: "missing signature", err: utils.ErrMissingSignature, wantCode: http.StatusBadRequest},
		{name: "invalid signature", err: utils.ErrInvalidSignature, wantCode: http.StatusForbidden},
		{name: "storage failure", err: utils.ErrDatabaseError, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubWebhookService{decision: tt.decision, err: tt.err}
			w := performWebhook(stub, `{"event":"charge.success"}`, "sig-123")
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestWebhookHandlePassesRawBodyAndSignature(t *testing.T) {
	stub := &stubWebhookService{decision: services.AckProcessed}
	body := `{"event":"charge.success","data":{"reference":"ref_001"}}`

	w := performWebhook(stub, body, "sig-abc")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, body, string(stub.gotBody))
	assert.Equal(t, "sig-abc", stub.gotSignature)
}
