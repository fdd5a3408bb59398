package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	dbm "paygate/internal/models/db_models"
	"paygate/internal/models/request_models"
	"paygate/internal/models/response_models"
	"paygate/internal/repositories"
	"paygate/pkg/gatewaylog"
	"paygate/pkg/utils"
)

type TenantService interface {
	CreateTenant(ctx context.Context, req request_models.CreateTenantRequest) (*response_models.TenantResponse, error)
	GetTenant(ctx context.Context, tenantID uuid.UUID) (*response_models.TenantResponse, error)
}

type tenantService struct {
	tenants repositories.TenantRepositoryInterface
	logger  gatewaylog.Logger
}

func NewTenantService(tenants repositories.TenantRepositoryInterface, logger gatewaylog.Logger) TenantService {
	return &tenantService{tenants: tenants, logger: logger}
}

func (t *tenantService) CreateTenant(ctx context.Context, req request_models.CreateTenantRequest) (*response_models.TenantResponse, error) {
	env := dbm.EnvTest
	if req.Environment == string(dbm.EnvLive) {
		env = dbm.EnvLive
	}

	tenant := &dbm.Tenant{
		TenantID:      uuid.New(),
		Name:          req.Name,
		PublicKey:     req.PublicKey,
		SecretKey:     req.SecretKey,
		Environment:   env,
		CallbackURL:   req.CallbackURL,
		WebhookSecret: req.WebhookSecret,
	}
	if err := t.tenants.Create(ctx, tenant); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	t.logger.Info("gateway.tenant.created", gatewaylog.Fields{
		"tenant_id":   tenant.TenantID,
		"name":        tenant.Name,
		"environment": tenant.Environment,
	})
	return toTenantResponse(tenant), nil
}

func (t *tenantService) GetTenant(ctx context.Context, tenantID uuid.UUID) (*response_models.TenantResponse, error) {
	tenant, err := t.tenants.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if tenant == nil {
		return nil, utils.ErrTenantNotFound
	}
	return toTenantResponse(tenant), nil
}

func toTenantResponse(tenant *dbm.Tenant) *response_models.TenantResponse {
	return &response_models.TenantResponse{
		TenantID:    tenant.TenantID,
		Name:        tenant.Name,
		PublicKey:   tenant.PublicKey,
		SecretHint:  secretHint(tenant.SecretKey),
		Environment: string(tenant.Environment),
		CallbackURL: tenant.CallbackURL,
		CreatedAt:   tenant.CreatedAt,
	}
}

// secretHint exposes just enough of a key to identify it in a dashboard.
func secretHint(secret string) string {
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
