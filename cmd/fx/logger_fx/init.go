package logger_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"paygate/pkg/gatewaylog"
)

var Module = fx.Provide(
	provideZap, provideGatewayLogger,
)

func provideZap() *zap.Logger {
	var logger *zap.Logger
	var err error
	if os.Getenv("APP_ENV") == "dev" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	return logger
}

func provideGatewayLogger(l *zap.Logger) gatewaylog.Logger {
	return gatewaylog.NewZapLogger(l)
}
