package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	_ "payment_gateway/docs" // swagger spec registration
	"payment_gateway/internal/adapter/http/handlers"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router exposes. Metrics may be nil.
type Handlers struct {
	Payments        *handlers.PaymentHandler
	Reconciliations *handlers.ReconciliationHandler
	Settings        *handlers.SettingsHandler
	Metrics         http.Handler
}

// New builds the gin engine with middlewares, swagger, metrics and the /v1 routes.
func New(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, h.Payments)
	addReconciliationRoutes(v1, h.Reconciliations)
	addSettingsRoutes(v1, h.Settings)

	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, addr string, router *gin.Engine) error {
	srv := &http.Server{
		Addr: addr,
		Handler: otelhttp.NewHandler(router, "payment-gateway-http",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[http][server] listening addr=%s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
