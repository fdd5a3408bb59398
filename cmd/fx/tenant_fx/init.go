package tenant_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"paygate/internal/api/controllers"
	"paygate/internal/repositories"
	"paygate/internal/services"
	"paygate/pkg/gatewaylog"
)

var Module = fx.Provide(
	provideTenantRepository, provideTenantService, provideTenantController,
)

func provideTenantRepository(db *gorm.DB) repositories.TenantRepositoryInterface {
	return repositories.NewTenantRepository(db)
}

func provideTenantService(tenants repositories.TenantRepositoryInterface, logger gatewaylog.Logger) services.TenantService {
	return services.NewTenantService(tenants, logger)
}

func provideTenantController(tenantService services.TenantService) *controllers.TenantController {
	return controllers.NewTenantController(tenantService)
}
