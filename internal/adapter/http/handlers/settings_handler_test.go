package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"payment_gateway/internal/adapter/http/handlers/mocks"
	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func storedSetting() entities.PaymentSetting {
	return entities.PaymentSetting{
		StoreID:                  1,
		AccountEmail:             "seller@loja.com.br",
		AccountToken:             "token-123",
		PaymentMethodDescription: "Pague com PagSeguro",
		PaymentMethodSystemName:  "Payments.PagSeguro",
		SettlementCurrencyCode:   "BRL",
		PendingStatuses:          []entities.PaymentStatus{entities.PaymentStatusPending},
		TieBreak:                 entities.TieBreakFirst,
	}
}

func newSettingsRouter(h *SettingsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/settings", h.GetSettings)
	r.PUT("/v1/settings", h.UpdateSettings)
	r.POST("/v1/settings/reload", h.ReloadSettings)
	r.GET("/v1/payment-method", h.GetPaymentMethod)
	return r
}

func TestSettingsHandler_GetSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISettingsUseCase(ctrl)
	r := newSettingsRouter(NewSettingsHandler(uc))

	uc.EXPECT().Current().Return(storedSetting())

	req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "token-123") {
		t.Fatalf("token leaked: %s", w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["account_token_set"] != true || body["settlement_currency_code"] != "BRL" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestSettingsHandler_UpdateSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		r := newSettingsRouter(NewSettingsHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/v1/settings", bytes.NewBufferString(`{"account_email":"not-an-email","settlement_currency_code":"BRL","pending_statuses":[10]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("currency not registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		r := newSettingsRouter(NewSettingsHandler(uc))

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.PaymentSetting{}, fmt.Errorf("%w: code=XYZ", usecase.ErrSettlementCurrencyNotFound))

		req := httptest.NewRequest(http.MethodPut, "/v1/settings", bytes.NewBufferString(`{"account_email":"seller@loja.com.br","settlement_currency_code":"XYZ","pending_statuses":[10]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "CURRENCY_NOT_REGISTERED") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		r := newSettingsRouter(NewSettingsHandler(uc))

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, s entities.PaymentSetting) (entities.PaymentSetting, error) {
			if s.AccountEmail != "seller@loja.com.br" || s.AccountToken != "" || s.SettlementCurrencyCode != "USD" {
				t.Fatalf("unexpected setting passed: %+v", s)
			}
			saved := storedSetting()
			saved.SettlementCurrencyCode = "USD"
			return saved, nil
		})

		req := httptest.NewRequest(http.MethodPut, "/v1/settings", bytes.NewBufferString(`{"account_email":"seller@loja.com.br","settlement_currency_code":"USD","pending_statuses":[10],"tie_break":"first"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"settlement_currency_code":"USD"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSettingsHandler_ReloadSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISettingsUseCase(ctrl)
	r := newSettingsRouter(NewSettingsHandler(uc))

	uc.EXPECT().Reload(gomock.Any()).Return(entities.PaymentSetting{}, usecase.ErrInvalidCredentials)

	req := httptest.NewRequest(http.MethodPost, "/v1/settings/reload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSettingsHandler_GetPaymentMethod(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISettingsUseCase(ctrl)
	r := newSettingsRouter(NewSettingsHandler(uc))

	uc.EXPECT().Current().Return(storedSetting())

	req := httptest.NewRequest(http.MethodGet, "/v1/payment-method", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["description"] != "Pague com PagSeguro" || body["system_name"] != "Payments.PagSeguro" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
