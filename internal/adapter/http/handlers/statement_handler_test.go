package handlers

import (
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

func TestStatementHandler_GetStatement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingStatementUseCase(ctrl)
		h := NewStatementHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id/statement", h.GetStatement)

		uc.EXPECT().BuildStatement(gomock.Any(), "order-1").Return(billing.OrderStatement{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/statement", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingStatementUseCase(ctrl)
		h := NewStatementHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:order_id/statement", h.GetStatement)

		order := entities.Order{
			ID:          "order-1",
			CustomerID:  "customer-1",
			Items:       []entities.OrderItem{{SKU: "BOLT-M8", Quantity: 2, UnitPrice: decimal.RequireFromString("50")}},
			ShippingFee: decimal.RequireFromString("20"),
		}
		st := billing.BuildOrderStatement(order, entities.Customer{}, nil, nil, billing.DefaultCashStep, time.Now().UTC())
		uc.EXPECT().BuildStatement(gomock.Any(), "order-1").Return(st, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/statement", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["order_id"] != "order-1" || body["balance"] != 120.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		opts, _ := body["payment_options"].(map[string]any)
		if opts["mode"] != "cash" || opts["payable"] != true {
			t.Fatalf("unexpected payment options: %s", w.Body.String())
		}
	})
}

func TestStatementHandler_ListOutstanding(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingStatementUseCase(ctrl)
		h := NewStatementHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/outstanding", h.ListOutstanding)

		uc.EXPECT().ListOutstanding(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/outstanding", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingStatementUseCase(ctrl)
		h := NewStatementHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/outstanding", h.ListOutstanding)

		uc.EXPECT().ListOutstanding(gomock.Any()).Return([]billing.OutstandingRow{
			{OrderID: "order-1", CustomerID: "customer-1", CustomerName: "Oficina Central", GrandTotal: decimal.RequireFromString("500"), AppliedTotal: decimal.RequireFromString("100"), Balance: decimal.RequireFromString("400"), Overdue: true},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/outstanding", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["order_id"] != "order-1" || body[0]["overdue"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapStatementError(t *testing.T) {
	if got := mapStatementError(usecase.ErrInvalidOrderID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapStatementError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapStatementError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
