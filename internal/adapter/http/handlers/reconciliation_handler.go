package handlers

import (
	"log"
	"net/http"
	"payment_gateway/internal/adapter/http/dto/response"
	"payment_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReconciliationHandler lets an external scheduler trigger a reconcile run over HTTP.
type ReconciliationHandler struct {
	reconciler usecase.IPaymentReconciler
}

func NewReconciliationHandler(r usecase.IPaymentReconciler) *ReconciliationHandler {
	return &ReconciliationHandler{reconciler: r}
}

// Run executes one reconcile pass.
//
// @Summary      Reconcile pending orders
// @Tags         reconciliations
// @Produce      json
// @Success      200  {object}  response.ReconciliationReportResponse
// @Failure      500,503  {object}  pkg.HTTPError
// @Router       /reconciliations [post]
func (h *ReconciliationHandler) Run(c *gin.Context) {
	log.Printf("[reconcile][handler] run start")

	report, err := h.reconciler.Reconcile(c.Request.Context())
	if err != nil {
		log.Printf("[reconcile][handler] run failed err=%v", err)
		abortWithError(c, mapPaymentError(err))
		return
	}
	log.Printf("[reconcile][handler] run success candidates=%d marked_paid=%d failed=%d", report.Candidates, report.MarkedPaid, report.Failed)

	c.JSON(http.StatusOK, response.FromReconciliationReport(report))
}
