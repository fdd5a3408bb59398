package webhook_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"paygate/internal/api/controllers"
	"paygate/internal/repositories"
	"paygate/internal/services"
	"paygate/pkg/gatewaylog"
	mem "paygate/pkg/memcache"
)

var Module = fx.Provide(
	provideWebhookEventRepository, provideWebhookService, provideWebhookController,
)

func provideWebhookEventRepository(db *gorm.DB) repositories.WebhookEventRepositoryInterface {
	return repositories.NewWebhookEventRepository(db)
}

func provideWebhookService(
	transactions repositories.TransactionRepositoryInterface,
	tenants repositories.TenantRepositoryInterface,
	events repositories.WebhookEventRepositoryInterface,
	seen *mem.SeenSignatures,
	logger gatewaylog.Logger,
) services.WebhookService {
	return services.NewWebhookService(transactions, tenants, events, seen, logger)
}

func provideWebhookController(webhookService services.WebhookService, logger gatewaylog.Logger) *controllers.WebhookController {
	return controllers.NewWebhookController(webhookService, logger)
}
