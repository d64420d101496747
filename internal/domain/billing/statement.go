package billing

import (
	"time"

	"ferragens_atlas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// OrderStatement is the full billing view of one order: computed totals,
// applied payments, the equalized schedule and the payment options derived
// from all of it. It is rebuilt from storage on every read, nothing in it is
// persisted.

type OrderStatement struct {
	Order        entities.Order
	Customer     entities.Customer
	Totals       TotalsBreakdown
	AppliedTotal decimal.Decimal
	Balance      decimal.Decimal
	Schedule     []EqualizedTerm
	Options      PaymentOptions
	Payments     []entities.Payment
}

// BuildOrderStatement composes the statement from its raw parts.
func BuildOrderStatement(order entities.Order, customer entities.Customer, terms []entities.InstallmentTerm, payments []entities.Payment, cashStep decimal.Decimal, now time.Time) OrderStatement {
	totals := ComputeTotals(order)
	applied := AppliedTotal(payments)
	balance := OutstandingBalance(totals.GrandTotal, payments)
	schedule := EqualizeSchedule(order.ID, terms, balance, now)
	options := BuildPaymentOptions(customer.EffectiveMode(), balance, schedule, order.Payable(), cashStep)

	return OrderStatement{
		Order:        order,
		Customer:     customer,
		Totals:       totals,
		AppliedTotal: applied,
		Balance:      balance,
		Schedule:     schedule,
		Options:      options,
		Payments:     payments,
	}
}

// OutstandingRow is one line of the outstanding balances report.

type OutstandingRow struct {
	OrderID      string
	CustomerID   string
	CustomerName string
	GrandTotal   decimal.Decimal
	AppliedTotal decimal.Decimal
	Balance      decimal.Decimal
	Overdue      bool
}
