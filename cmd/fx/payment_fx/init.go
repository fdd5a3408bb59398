package payment_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"paygate/internal/api/controllers"
	"paygate/internal/gateway"
	"paygate/internal/repositories"
	"paygate/internal/services"
	"paygate/pkg/gatewaylog"
)

var Module = fx.Provide(
	provideTransactionRepository, providePaymentService, providePaymentController,
)

func provideTransactionRepository(db *gorm.DB) repositories.TransactionRepositoryInterface {
	return repositories.NewTransactionRepository(db)
}

func providePaymentService(
	transactions repositories.TransactionRepositoryInterface,
	tenants repositories.TenantRepositoryInterface,
	clients gateway.Factory,
	logger gatewaylog.Logger,
) services.PaymentService {
	instance, err := services.NewPaymentService(transactions, tenants, clients, services.PaymentConfig{
		CallbackURL: os.Getenv("GATEWAY_CALLBACK_URL"),
	}, logger)
	if err != nil {
		log.Fatalf("Error initializing PaymentService: %v", err)
	}
	return instance
}

func providePaymentController(paymentService services.PaymentService) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
