package gateway_fx

import (
	"os"

	"go.uber.org/fx"

	"paygate/internal/gateway"
	"paygate/pkg/gatewaylog"
)

var Module = fx.Provide(
	provideGatewayFactory,
)

func provideGatewayFactory(logger gatewaylog.Logger) gateway.Factory {
	return gateway.NewPaystackFactory(gateway.Config{
		BaseURL:    os.Getenv("PAYSTACK_BASE_URL"),
		MaxRetries: 2,
	}, logger)
}
