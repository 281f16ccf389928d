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

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// GetSettings returns the active snapshot. The account token is never echoed.
//
// @Summary      Get payment settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  response.SettingsResponse
// @Router       /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPaymentSetting(h.usecase.Current()))
}

// UpdateSettings validates and persists the setting, then swaps the snapshot.
//
// @Summary      Update payment settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      request.SettingsUpdateRequest  true  "Settings"
// @Success      200  {object}  response.SettingsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req request.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[settings][handler] invalid payload err=%v", err)
		abortWithError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}
	log.Printf("[settings][handler] update start currency=%s token_set=%t", req.SettlementCurrencyCode, req.AccountToken != "")

	saved, err := h.usecase.Update(c.Request.Context(), req.ToEntity())
	if err != nil {
		log.Printf("[settings][handler] update failed err=%v", err)
		abortWithError(c, mapSettingsError(err))
		return
	}
	log.Printf("[settings][handler] update success store_id=%d", saved.StoreID)

	c.JSON(http.StatusOK, response.FromPaymentSetting(saved))
}

// ReloadSettings re-reads the stored setting and swaps the snapshot.
//
// @Summary      Reload payment settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  response.SettingsResponse
// @Failure      400,503  {object}  pkg.HTTPError
// @Router       /settings/reload [post]
func (h *SettingsHandler) ReloadSettings(c *gin.Context) {
	s, err := h.usecase.Reload(c.Request.Context())
	if err != nil {
		log.Printf("[settings][handler] reload failed err=%v", err)
		abortWithError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSetting(s))
}

// GetPaymentMethod exposes what the checkout page shows for this payment method.
//
// @Summary      Payment method info
// @Tags         settings
// @Produce      json
// @Success      200  {object}  response.PaymentMethodResponse
// @Router       /payment-method [get]
func (h *SettingsHandler) GetPaymentMethod(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPaymentMethod(h.usecase.Current()))
}
