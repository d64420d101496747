package usecase

import (
	"context"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"ferragens_atlas/internal/domain/billing"
	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// IBillingStatementUseCase composes the read side of billing: the statement
// of a single order and the outstanding balances report.
//
// Nothing here is persisted. Balances, equalized schedules and payment
// options are recomputed from the stored orders, terms and payments on every
// call, so a retried read after a conflict always reflects the winner.

type IBillingStatementUseCase interface {
	BuildStatement(ctx context.Context, orderID string) (billing.OrderStatement, error)
	ListOutstanding(ctx context.Context) ([]billing.OutstandingRow, error)
}

type BillingStatementUseCase struct {
	orderRepo       interfaces.IOrderRepository
	customerRepo    interfaces.ICustomerRepository
	installmentRepo interfaces.IInstallmentRepository
	paymentRepo     interfaces.IPaymentRepository
	cashStep        decimal.Decimal
}

var _ IBillingStatementUseCase = (*BillingStatementUseCase)(nil)
var _ interfaces.IStatementProvider = (*BillingStatementUseCase)(nil)

func NewBillingStatementUseCase(
	orderRepo interfaces.IOrderRepository,
	customerRepo interfaces.ICustomerRepository,
	installmentRepo interfaces.IInstallmentRepository,
	paymentRepo interfaces.IPaymentRepository,
) *BillingStatementUseCase {
	return &BillingStatementUseCase{
		orderRepo:       orderRepo,
		customerRepo:    customerRepo,
		installmentRepo: installmentRepo,
		paymentRepo:     paymentRepo,
		cashStep:        cashStepFromEnv(),
	}
}

func cashStepFromEnv() decimal.Decimal {
	raw := strings.TrimSpace(os.Getenv("CASH_PAYMENT_STEP"))
	if raw == "" {
		return billing.DefaultCashStep
	}
	step, err := decimal.NewFromString(raw)
	if err != nil || !step.IsPositive() {
		log.Printf("[statement][usecase] ignoring invalid CASH_PAYMENT_STEP=%q", raw)
		return billing.DefaultCashStep
	}
	return step
}

func (u *BillingStatementUseCase) BuildStatement(ctx context.Context, orderID string) (billing.OrderStatement, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return billing.OrderStatement{}, ErrInvalidOrderID
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return billing.OrderStatement{}, err
	}
	if order.ID == "" {
		return billing.OrderStatement{}, ErrOrderNotFound
	}

	// A missing profile is a sync lag, not a fatal state. The statement
	// degrades to cash mode until the customer record lands.
	customer, err := u.customerRepo.GetByID(ctx, order.CustomerID)
	if err != nil {
		return billing.OrderStatement{}, err
	}
	if customer.ID == "" {
		log.Printf("[statement][usecase] customer missing order_id=%s customer_id=%s", order.ID, order.CustomerID)
	}

	terms, err := u.installmentRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return billing.OrderStatement{}, err
	}
	payments, err := u.paymentRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return billing.OrderStatement{}, err
	}

	return billing.BuildOrderStatement(order, customer, terms, payments, u.cashStep, time.Now().UTC()), nil
}

func (u *BillingStatementUseCase) ListOutstanding(ctx context.Context) ([]billing.OutstandingRow, error) {
	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	customers := make(map[string]entities.Customer)
	rows := make([]billing.OutstandingRow, 0, len(orders))

	for _, o := range orders {
		payments, err := u.paymentRepo.ListByOrderID(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		totals := billing.ComputeTotals(o)
		balance := billing.OutstandingBalance(totals.GrandTotal, payments)
		if !balance.IsPositive() {
			continue
		}

		terms, err := u.installmentRepo.ListByOrderID(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		overdue := false
		for _, et := range billing.EqualizeSchedule(o.ID, terms, balance, now) {
			if et.Overdue {
				overdue = true
				break
			}
		}

		customer, ok := customers[o.CustomerID]
		if !ok {
			customer, err = u.customerRepo.GetByID(ctx, o.CustomerID)
			if err != nil {
				return nil, err
			}
			customers[o.CustomerID] = customer
		}

		rows = append(rows, billing.OutstandingRow{
			OrderID:      o.ID,
			CustomerID:   o.CustomerID,
			CustomerName: customer.Name,
			GrandTotal:   totals.GrandTotal,
			AppliedTotal: billing.AppliedTotal(payments),
			Balance:      balance,
			Overdue:      overdue,
		})
	}

	// Largest debt first; order id keeps ties stable.
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Balance.Equal(rows[j].Balance) {
			return rows[i].Balance.GreaterThan(rows[j].Balance)
		}
		return rows[i].OrderID < rows[j].OrderID
	})
	return rows, nil
}
