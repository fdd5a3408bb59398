package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paygate/internal/models/request_models"
	"paygate/pkg/gatewaylog"
	"paygate/pkg/utils"
)

func TestCreateTenantMasksSecret(t *testing.T) {
	tenants := newFakeTenantRepo()
	svc := NewTenantService(tenants, gatewaylog.NewNop())

	resp, err := svc.CreateTenant(context.Background(), request_models.CreateTenantRequest{
		Name:        "Acme Store",
		PublicKey:   "pk_test_abcd1234",
		SecretKey:   "sk_test_abcd1234",
		Environment: "live",
		CallbackURL: "https://acme.example.com/return",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.TenantID)
	assert.Equal(t, "****1234", resp.SecretHint)
	assert.Equal(t, "live", resp.Environment)

	stored, err := tenants.GetByTenantID(context.Background(), resp.TenantID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "sk_test_abcd1234", stored.SecretKey)
}

func TestGetTenantNotFound(t *testing.T) {
	svc := NewTenantService(newFakeTenantRepo(), gatewaylog.NewNop())

	_, err := svc.GetTenant(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrTenantNotFound)
}

func TestSecretHint(t *testing.T) {
	assert.Equal(t, "****", secretHint("abc"))
	assert.Equal(t, "****", secretHint(""))
	assert.Equal(t, "****wxyz", secretHint("sk_live_wxyz"))
}
