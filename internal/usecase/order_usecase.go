package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/domain/money"
	"ferragens_atlas/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidOrderID         = errors.New("invalid order id")
	ErrInvalidShippingFee     = errors.New("invalid shipping fee")
	ErrInvalidInstallmentPlan = errors.New("invalid installment plan")
)

// IOrderUseCase exposes order ingestion operations.
//
// Orders and installment plans arrive as snapshots from the commercial
// system. The shipping fee is patched separately once logistics quotes it,
// which is also the moment the order becomes payable.

type IOrderUseCase interface {
	UpsertOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	SetShippingFee(ctx context.Context, orderID string, fee decimal.Decimal) (entities.Order, error)
	ReplaceInstallmentPlan(ctx context.Context, orderID string, terms []entities.InstallmentTerm) ([]entities.InstallmentTerm, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo            interfaces.IOrderRepository
	installmentRepo interfaces.IInstallmentRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, installmentRepo interfaces.IInstallmentRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, installmentRepo: installmentRepo}
}

func (u *OrderUseCase) UpsertOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.ID = strings.TrimSpace(o.ID)
	o.CustomerID = strings.TrimSpace(o.CustomerID)
	if o.ID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if o.CustomerID == "" {
		return entities.Order{}, ErrInvalidCustomerID
	}

	o.TaxAmount = money.Round2(o.TaxAmount)
	o.ShippingFee = money.FloorZero(money.Round2(o.ShippingFee))
	if o.GrandTotalOverride != nil {
		rounded := money.Round2(*o.GrandTotalOverride)
		o.GrandTotalOverride = &rounded
	}

	now := time.Now().UTC()
	existing, err := u.repo.GetByID(ctx, o.ID)
	if err != nil {
		return entities.Order{}, err
	}
	if existing.ID != "" {
		o.CreatedAt = existing.CreatedAt
	} else {
		o.CreatedAt = now
	}
	o.UpdatedAt = now

	return u.repo.Upsert(ctx, o)
}

func (u *OrderUseCase) SetShippingFee(ctx context.Context, orderID string, fee decimal.Decimal) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !fee.IsPositive() {
		return entities.Order{}, ErrInvalidShippingFee
	}

	updated, err := u.repo.UpdateShippingFee(ctx, orderID, money.Round2(fee))
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) ReplaceInstallmentPlan(ctx context.Context, orderID string, terms []entities.InstallmentTerm) ([]entities.InstallmentTerm, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, ErrOrderNotFound
	}

	normalized := make([]entities.InstallmentTerm, 0, len(terms))
	seen := make(map[int]bool, len(terms))
	for _, t := range terms {
		if t.TermNo < 1 || seen[t.TermNo] {
			return nil, ErrInvalidInstallmentPlan
		}
		seen[t.TermNo] = true
		if t.DueDate.IsZero() {
			return nil, ErrInvalidInstallmentPlan
		}
		if !t.AmountDue.IsPositive() || t.AmountPaid.IsNegative() {
			return nil, ErrInvalidInstallmentPlan
		}
		switch t.Status {
		case "":
			t.Status = entities.InstallmentStatusPending
		case entities.InstallmentStatusPending, entities.InstallmentStatusPaid:
		default:
			return nil, ErrInvalidInstallmentPlan
		}
		t.OrderID = orderID
		t.AmountDue = money.Round2(t.AmountDue)
		t.AmountPaid = money.Round2(t.AmountPaid)
		normalized = append(normalized, t)
	}
	sort.Slice(normalized, func(i, j int) bool { return normalized[i].TermNo < normalized[j].TermNo })

	if err := u.installmentRepo.ReplaceForOrder(ctx, orderID, normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}
