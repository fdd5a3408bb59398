package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"paygate/internal/services"
	"paygate/pkg/gatewaylog"
	"paygate/pkg/utils"
)

// SignatureHeader carries the processor's HMAC over the raw request body.
const SignatureHeader = "x-paystack-signature"

type WebhookController struct {
	webhookService services.WebhookService
	logger         gatewaylog.Logger
}

func NewWebhookController(webhookService services.WebhookService, logger gatewaylog.Logger) *WebhookController {
	return &WebhookController{
		webhookService: webhookService,
		logger:         logger,
	}
}

// Handle receives one webhook delivery. Any outcome that should stop the
// sender's retries answers 200; only a missing or invalid signature is
// rejected with a 4xx.
func (w *WebhookController) Handle(c *gin.Context) {
	w.logger.Info("gateway.webhook.received", gatewaylog.Fields{
		"ip":                c.ClientIP(),
		"signature_present": c.GetHeader(SignatureHeader) != "",
		"user_agent":        c.Request.UserAgent(),
	})

	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	decision, err := w.webhookService.ProcessNotification(c.Request.Context(), rawBody, c.GetHeader(SignatureHeader))
	switch {
	case errors.Is(err, utils.ErrMissingSignature):
		utils.RespondError(c, http.StatusBadRequest, "Missing signature")
	case errors.Is(err, utils.ErrInvalidSignature):
		utils.RespondError(c, http.StatusForbidden, "Invalid signature")
	case err != nil:
		// A storage failure means nothing was recorded; a non-200 lets the
		// sender retry later.
		utils.HandleServiceError(c, err)
	case decision == services.AckDuplicate:
		utils.RespondSuccess(c, nil, "Duplicate")
	default:
		utils.RespondSuccess(c, gin.H{"decision": decision.String()}, "ok")
	}
}
