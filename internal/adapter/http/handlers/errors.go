package handlers

import (
	"context"
	"errors"
	"net/http"
	"payment_gateway/internal/adapter/http/dto/request"
	"payment_gateway/internal/usecase"
	"payment_gateway/pkg"

	"github.com/gin-gonic/gin"
)

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConfiguration):
		return pkg.NewDomainError("PAYMENT_NOT_CONFIGURED", "Payment gateway is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGateway) && errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("PAYMENT_PROVIDER_TIMEOUT", "Payment provider did not answer in time", err, http.StatusGatewayTimeout)
	case errors.Is(err, usecase.ErrGateway):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider rejected or failed the request", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrDataIntegrity):
		return pkg.NewDomainError("ORDER_DATA_INCOMPLETE", "Order references missing records", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapSettingsError treats a rejected setting as bad input rather than a broken deployment.
func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentSetting), errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainError("INVALID_SETTINGS", "Invalid payment settings", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSettlementCurrencyNotFound):
		return pkg.NewDomainError("CURRENCY_NOT_REGISTERED", "Settlement currency is not registered in the store", err, http.StatusBadRequest)
	default:
		return mapPaymentError(err)
	}
}

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
