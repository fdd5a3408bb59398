package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"paygate/cmd/fx/db_fx"
	"paygate/cmd/fx/gateway_fx"
	"paygate/cmd/fx/logger_fx"
	"paygate/cmd/fx/memcache_fx"
	"paygate/cmd/fx/payment_fx"
	"paygate/cmd/fx/tenant_fx"
	"paygate/cmd/fx/webhook_fx"
	"paygate/internal/api/controllers"
	"paygate/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		gateway_fx.Module,
		tenant_fx.Module,
		payment_fx.Module,
		webhook_fx.Module,

		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	paymentController *controllers.PaymentController,
	webhookController *controllers.WebhookController,
	tenantController *controllers.TenantController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, paymentController, webhookController, tenantController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	paymentController *controllers.PaymentController,
	webhookController *controllers.WebhookController,
	tenantController *controllers.TenantController) {

	api := r.Group("/api")

	payments := api.Group("/payments")
	payments.POST("/initialize", paymentController.Initialize)
	payments.GET("/callback", paymentController.Callback)
	payments.GET("/:reference", paymentController.GetTransaction)

	webhooks := api.Group("/webhooks")
	webhooks.POST("/paystack", webhookController.Handle)

	tenants := api.Group("/tenants")
	tenants.POST("", tenantController.Create)
	tenants.GET("/:tenant_id", tenantController.Get)
}
