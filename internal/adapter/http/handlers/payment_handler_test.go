package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ferragens_atlas/internal/adapter/http/handlers/mocks"
	"ferragens_atlas/internal/domain/billing"
	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_SubmitPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payments", h.SubmitPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payments", h.SubmitPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/payments", bytes.NewBufferString(`{"method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("order not payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payments", h.SubmitPayment)

		uc.EXPECT().SubmitPayment(gomock.Any(), "order-1", gomock.Any(), entities.PaymentMethodCash, "").Return(entities.Payment{}, billing.ErrOrderNotPayable)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/payments", bytes.NewBufferString(`{"amount":100,"method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("amount off schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payments", h.SubmitPayment)

		uc.EXPECT().SubmitPayment(gomock.Any(), "order-1", gomock.Any(), entities.PaymentMethodCheque, "").Return(entities.Payment{}, billing.ErrAmountOffSchedule)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/payments", bytes.NewBufferString(`{"amount":123.45,"method":"cheque"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payments", h.SubmitPayment)

		now := time.Now().UTC()
		uc.EXPECT().SubmitPayment(gomock.Any(), "order-1", gomock.Any(), entities.PaymentMethodCash, "caixa-17").DoAndReturn(
			func(_ context.Context, orderID string, amount decimal.Decimal, method entities.PaymentMethod, receiptRef string) (entities.Payment, error) {
				if !amount.Equal(decimal.RequireFromString("150.5")) {
					t.Fatalf("unexpected amount %s", amount)
				}
				return entities.Payment{
					ID:         "pay-1",
					OrderID:    orderID,
					CustomerID: "customer-1",
					Amount:     amount,
					Method:     method,
					Status:     entities.PaymentStatusPending,
					ReceiptRef: receiptRef,
					CreatedAt:  now,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/payments", bytes.NewBufferString(`{"amount":150.5,"method":"cash","receipt_ref":"caixa-17"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_ListPaymentsByOrderID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id/payments", h.ListPaymentsByOrderID)

		uc.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return(nil, usecase.ErrInvalidOrderID)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id/payments", h.ListPaymentsByOrderID)

		uc.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return([]entities.Payment{
			{ID: "pay-1", OrderID: "order-1", Amount: decimal.RequireFromString("100"), Method: entities.PaymentMethodCash, Status: entities.PaymentStatusReceived},
			{ID: "pay-2", OrderID: "order-1", Amount: decimal.RequireFromString("50"), Method: entities.PaymentMethodCheque, Status: entities.PaymentStatusPending},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["payment_id"] != "pay-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetPaymentByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:payment_id", h.GetPaymentByID)

		uc.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:payment_id", h.GetPaymentByID)

		reviewedAt := time.Now().UTC()
		uc.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{
			ID:         "pay-1",
			OrderID:    "order-1",
			Amount:     decimal.RequireFromString("100"),
			Method:     entities.PaymentMethodCash,
			Status:     entities.PaymentStatusReceived,
			ReviewedBy: "ana",
			ReviewedAt: &reviewedAt,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["reviewed_by"] != "ana" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidOrderID, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentID, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentMethod, http.StatusBadRequest},
		{billing.ErrNonPositiveAmount, http.StatusBadRequest},
		{billing.ErrAmountExceedsBalance, http.StatusBadRequest},
		{billing.ErrAmountOffSchedule, http.StatusBadRequest},
		{billing.ErrOrderNotPayable, http.StatusConflict},
		{usecase.ErrOrderNotFound, http.StatusNotFound},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
