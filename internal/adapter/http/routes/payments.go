package routes

import (
	"payment_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments        = "/payments"
	PathReconciliations = "/reconciliations"
	PathSettings        = "/settings"
	PathPaymentMethod   = "/payment-method"
)

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:order_id", h.CreatePayment)
		payments.GET("/:order_id", h.ListPayments)
		payments.GET("/:order_id/request", h.PreviewPayment)
	}
}

func addReconciliationRoutes(rg *gin.RouterGroup, h *handlers.ReconciliationHandler) {
	rg.POST(PathReconciliations, h.Run)
}

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("", h.GetSettings)
		settings.PUT("", h.UpdateSettings)
		settings.POST("/reload", h.ReloadSettings)
	}
	rg.GET(PathPaymentMethod, h.GetPaymentMethod)
}
