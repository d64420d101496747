package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ferragens_atlas/internal/domain/billing"
	"ferragens_atlas/internal/domain/entities"
	mock_interfaces "ferragens_atlas/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// cashStatement is a payable order with a 1200.00 balance and a customer in
// cash mode, so any positive amount up to the balance validates.
func cashStatement(t *testing.T) billing.OrderStatement {
	t.Helper()
	order := entities.Order{
		ID:         "order-1",
		CustomerID: "customer-1",
		Items: []entities.OrderItem{
			{SKU: "BOLT-M8", Quantity: 10, UnitPrice: decimal.RequireFromString("100")},
		},
		ShippingFee: decimal.RequireFromString("200"),
	}
	customer := entities.Customer{ID: "customer-1", Name: "Oficina Central"}
	return billing.BuildOrderStatement(order, customer, nil, nil, decimal.Decimal{}, time.Now().UTC())
}

// creditStatement is the same order with a credit customer and a two-term
// schedule, so only 600.00 and 1200.00 validate.
func creditStatement(t *testing.T) billing.OrderStatement {
	t.Helper()
	order := entities.Order{
		ID:         "order-1",
		CustomerID: "customer-1",
		Items: []entities.OrderItem{
			{SKU: "BOLT-M8", Quantity: 10, UnitPrice: decimal.RequireFromString("100")},
		},
		ShippingFee: decimal.RequireFromString("200"),
	}
	customer := entities.Customer{ID: "customer-1", Name: "Oficina Central", TermAmount: decimal.RequireFromString("600")}
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	terms := []entities.InstallmentTerm{
		{OrderID: "order-1", TermNo: 1, DueDate: due, AmountDue: decimal.RequireFromString("600"), Status: entities.InstallmentStatusPending},
		{OrderID: "order-1", TermNo: 2, DueDate: due.AddDate(0, 1, 0), AmountDue: decimal.RequireFromString("600"), Status: entities.InstallmentStatusPending},
	}
	return billing.BuildOrderStatement(order, customer, terms, nil, decimal.Decimal{}, time.Now().UTC())
}

func TestPaymentUseCase_SubmitPayment(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.SubmitPayment(context.Background(), "  ", decimal.RequireFromString("100"), entities.PaymentMethodCash, "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("invalid method", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.SubmitPayment(context.Background(), "order-1", decimal.RequireFromString("100"), "pix", "")
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("statement error passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		statements := mock_interfaces.NewMockIStatementProvider(ctrl)
		uc := NewPaymentUseCase(repo, statements)

		statements.EXPECT().BuildStatement(gomock.Any(), "order-1").Return(billing.OrderStatement{}, ErrOrderNotFound)

		_, err := uc.SubmitPayment(context.Background(), "order-1", decimal.RequireFromString("100"), entities.PaymentMethodCash, "")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("amount over balance is rejected without a write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		statements := mock_interfaces.NewMockIStatementProvider(ctrl)
		uc := NewPaymentUseCase(repo, statements)

		statements.EXPECT().BuildStatement(gomock.Any(), "order-1").Return(cashStatement(t), nil)

		_, err := uc.SubmitPayment(context.Background(), "order-1", decimal.RequireFromString("1200.01"), entities.PaymentMethodCash, "")
		if !errors.Is(err, billing.ErrAmountExceedsBalance) {
			t.Fatalf("expected ErrAmountExceedsBalance, got %v", err)
		}
	})

	t.Run("credit amount off schedule is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		statements := mock_interfaces.NewMockIStatementProvider(ctrl)
		uc := NewPaymentUseCase(repo, statements)

		statements.EXPECT().BuildStatement(gomock.Any(), "order-1").Return(creditStatement(t), nil)

		_, err := uc.SubmitPayment(context.Background(), "order-1", decimal.RequireFromString("700"), entities.PaymentMethodCheque, "")
		if !errors.Is(err, billing.ErrAmountOffSchedule) {
			t.Fatalf("expected ErrAmountOffSchedule, got %v", err)
		}
	})

	t.Run("cash success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		statements := mock_interfaces.NewMockIStatementProvider(ctrl)
		uc := NewPaymentUseCase(repo, statements)

		statements.EXPECT().BuildStatement(gomock.Any(), "order-1").Return(cashStatement(t), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID == "" {
					t.Fatalf("expected generated id")
				}
				if p.OrderID != "order-1" || p.CustomerID != "customer-1" {
					t.Fatalf("unexpected refs: %+v", p)
				}
				if !p.Amount.Equal(decimal.RequireFromString("600.50")) {
					t.Fatalf("expected amount 600.50, got %s", p.Amount)
				}
				if p.Method != entities.PaymentMethodCash || p.Status != entities.PaymentStatusPending {
					t.Fatalf("unexpected method/status: %+v", p)
				}
				if p.ReceiptRef != "caixa-17" {
					t.Fatalf("expected trimmed receipt ref, got %q", p.ReceiptRef)
				}
				if p.CreatedAt.IsZero() {
					t.Fatalf("expected created at")
				}
				return p, nil
			},
		)

		res, err := uc.SubmitPayment(context.Background(), " order-1 ", decimal.RequireFromString("600.504"), entities.PaymentMethodCash, " caixa-17 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusPending {
			t.Fatalf("expected pending payment, got %+v", res)
		}
	})

	t.Run("credit multiple success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		statements := mock_interfaces.NewMockIStatementProvider(ctrl)
		uc := NewPaymentUseCase(repo, statements)

		statements.EXPECT().BuildStatement(gomock.Any(), "order-1").Return(creditStatement(t), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if !p.Amount.Equal(decimal.RequireFromString("600")) {
					t.Fatalf("expected amount 600, got %s", p.Amount)
				}
				return p, nil
			},
		)

		_, err := uc.SubmitPayment(context.Background(), "order-1", decimal.RequireFromString("600"), entities.PaymentMethodCheque, "chq-9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("create error passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		statements := mock_interfaces.NewMockIStatementProvider(ctrl)
		uc := NewPaymentUseCase(repo, statements)

		statements.EXPECT().BuildStatement(gomock.Any(), "order-1").Return(cashStatement(t), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errors.New("db"))

		_, err := uc.SubmitPayment(context.Background(), "order-1", decimal.RequireFromString("100"), entities.PaymentMethodCash, "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPaymentUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1"}, nil)

		res, err := uc.GetByID(context.Background(), " pay-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "pay-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestPaymentUseCase_ListByOrderID(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.ListByOrderID(context.Background(), "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return([]entities.Payment{{ID: "pay-1"}, {ID: "pay-2"}}, nil)

		res, err := uc.ListByOrderID(context.Background(), " order-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 payments, got %d", len(res))
		}
	})
}
