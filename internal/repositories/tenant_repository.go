package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"paygate/internal/models/db_models"
)

type TenantRepositoryInterface interface {
	Create(ctx context.Context, tenant *db_models.Tenant) error
	GetByTenantID(ctx context.Context, tenantID uuid.UUID) (*db_models.Tenant, error)
}

func NewTenantRepository(db *gorm.DB) TenantRepositoryInterface {
	return &TenantRepository{db: db}
}

type TenantRepository struct {
	db *gorm.DB
}

func (r TenantRepository) Create(ctx context.Context, tenant *db_models.Tenant) error {
	return r.db.WithContext(ctx).Create(tenant).Error
}

func (r TenantRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) (*db_models.Tenant, error) {
	var tenant db_models.Tenant
	err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&tenant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}
