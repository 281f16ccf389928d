package handlers

import (
	"log"
	"net/http"
	"payment_gateway/internal/adapter/http/dto/request"
	"payment_gateway/internal/adapter/http/dto/response"
	"payment_gateway/internal/usecase"
	"payment_gateway/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the checkout side: submit, preview and list registrations.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment registers the order at the gateway and returns the redirect URL.
//
// @Summary      Register checkout
// @Tags         payments
// @Produce      json
// @Param        order_id  path      int  true  "Order ID"
// @Success      201  {object}  response.PaymentRegistrationResponse
// @Failure      400,404,422,502,503,504  {object}  pkg.HTTPError
// @Router       /payments/{order_id} [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	orderID, err := request.ParseOrderID(c.Param("order_id"))
	if err != nil {
		log.Printf("[payment][handler] invalid order id raw=%q", c.Param("order_id"))
		abortWithError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] create start order_id=%d", orderID)

	reg, err := h.usecase.CreatePayment(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] create failed order_id=%d err=%v", orderID, err)
		abortWithError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] create success order_id=%d registration_id=%s", orderID, reg.ID)

	c.JSON(http.StatusCreated, response.FromPaymentRegistration(reg))
}

// ListPayments returns every registration stored for the order, oldest first.
//
// @Summary      List checkout registrations
// @Tags         payments
// @Produce      json
// @Param        order_id  path      int  true  "Order ID"
// @Success      200  {array}   response.PaymentRegistrationResponse
// @Failure      400,404  {object}  pkg.HTTPError
// @Router       /payments/{order_id} [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	orderID, err := request.ParseOrderID(c.Param("order_id"))
	if err != nil {
		abortWithError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] list start order_id=%d", orderID)

	regs, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] list failed order_id=%d err=%v", orderID, err)
		abortWithError(c, mapPaymentError(err))
		return
	}
	if len(regs) == 0 {
		log.Printf("[payment][handler] list not-found order_id=%d", orderID)
		abortWithError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRegistrations(regs))
}

// PreviewPayment builds the gateway request for the order without submitting it.
//
// @Summary      Preview gateway request
// @Tags         payments
// @Produce      json
// @Param        order_id  path      int  true  "Order ID"
// @Success      200  {object}  response.PaymentRequestResponse
// @Failure      400,404,422,503  {object}  pkg.HTTPError
// @Router       /payments/{order_id}/request [get]
func (h *PaymentHandler) PreviewPayment(c *gin.Context) {
	orderID, err := request.ParseOrderID(c.Param("order_id"))
	if err != nil {
		abortWithError(c, mapPaymentError(err))
		return
	}

	req, err := h.usecase.PreviewPayment(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] preview failed order_id=%d err=%v", orderID, err)
		abortWithError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRequest(req))
}
