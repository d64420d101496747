package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/domain/money"
	"ferragens_atlas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// IPaymentUseCase encapsulates payment submission.
//
// Submission never trusts the caller's amount: the statement is rebuilt from
// storage and the amount must clear its validator before anything is written.
// Accepted payments always start pending; reconciliation moves them on.

type IPaymentUseCase interface {
	SubmitPayment(ctx context.Context, orderID string, amount decimal.Decimal, method entities.PaymentMethod, receiptRef string) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo       interfaces.IPaymentRepository
	statements interfaces.IStatementProvider
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, statements interfaces.IStatementProvider) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, statements: statements}
}

func (u *PaymentUseCase) SubmitPayment(ctx context.Context, orderID string, amount decimal.Decimal, method entities.PaymentMethod, receiptRef string) (entities.Payment, error) {
	log.Printf("[payment][usecase] submit start order_id=%q amount=%s method=%s", orderID, amount, method)
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Payment{}, ErrInvalidOrderID
	}
	switch method {
	case entities.PaymentMethodCash, entities.PaymentMethodCheque:
	default:
		log.Printf("[payment][usecase] invalid method order_id=%s method=%q", orderID, method)
		return entities.Payment{}, ErrInvalidPaymentMethod
	}
	amount = money.Round2(amount)

	st, err := u.statements.BuildStatement(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] statement failed order_id=%s err=%v", orderID, err)
		return entities.Payment{}, err
	}
	if err := st.Options.ValidateAmount(amount); err != nil {
		log.Printf("[payment][usecase] amount rejected order_id=%s amount=%s balance=%s err=%v", orderID, amount, st.Balance, err)
		return entities.Payment{}, err
	}

	p := entities.Payment{
		ID:         uuid.NewString(),
		OrderID:    st.Order.ID,
		CustomerID: st.Order.CustomerID,
		Amount:     amount,
		Method:     method,
		Status:     entities.PaymentStatusPending,
		ReceiptRef: strings.TrimSpace(receiptRef),
		CreatedAt:  time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] create failed order_id=%s payment_id=%s err=%v", orderID, p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] submit success order_id=%s payment_id=%s amount=%s", orderID, created.ID, created.Amount)
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}
