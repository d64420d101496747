package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "pending"
	InstallmentStatusPaid    InstallmentStatus = "paid"
)

// InstallmentTerm is one contracted term of a credit schedule.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - SK: term_no
//
// AmountDue and AmountPaid are written by the commercial system; the billing
// side never mutates them directly. Term sums are not trusted to match the
// order total, the equalizer rebuilds remaining amounts from the balance.

type InstallmentTerm struct {
	OrderID    string            `json:"order_id"`
	TermNo     int               `json:"term_no"`
	DueDate    time.Time         `json:"due_date"`
	AmountDue  decimal.Decimal   `json:"amount_due"`
	AmountPaid decimal.Decimal   `json:"amount_paid"`
	Status     InstallmentStatus `json:"status"`
}

// Settled reports whether the term needs no further payment. A term marked
// paid is settled regardless of the recorded amounts.
func (t InstallmentTerm) Settled() bool {
	if t.Status == InstallmentStatusPaid {
		return true
	}
	return t.AmountPaid.GreaterThanOrEqual(t.AmountDue)
}
