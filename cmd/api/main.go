package main

import (
	"context"
	"log"
	"os/signal"
	_ "payment_gateway/docs"
	"payment_gateway/internal/adapter/http/handlers"
	"payment_gateway/internal/adapter/http/routes"
	"payment_gateway/internal/app"
	"payment_gateway/internal/config"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payment Gateway API
// @version         1.0
// @description     Checkout registration and payment reconciliation against Mercado Pago.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer a.Close(context.Background())

	router := routes.New(routes.Handlers{
		Payments:        handlers.NewPaymentHandler(a.Payments),
		Reconciliations: handlers.NewReconciliationHandler(a.Reconciler),
		Settings:        handlers.NewSettingsHandler(a.Settings),
		Metrics:         a.Metrics,
	})

	if err := routes.Run(ctx, cfg.Addr(), router); err != nil {
		log.Printf("Server stopped with error: %v", err)
	}
}
