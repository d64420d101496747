package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCheque PaymentMethod = "cheque"
)

// PaymentStatus is the reconciliation state. Every payment starts pending and
// is moved exactly once to received or rejected by a reviewer.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusReceived PaymentStatus = "received"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Payment is a customer payment awaiting or past reconciliation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// ReceiptRef carries the teller receipt or cheque number for the reviewer.

type Payment struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     PaymentMethod   `json:"method"`
	Status     PaymentStatus   `json:"status"`
	ReceiptRef string          `json:"receipt_ref,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	ReviewedBy string          `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time      `json:"reviewed_at,omitempty"`
}

// Terminal reports whether the payment already went through reconciliation.
func (p Payment) Terminal() bool {
	return p.Status == PaymentStatusReceived || p.Status == PaymentStatusRejected
}

// CountsTowardBalance reports whether the amount reduces the order balance.
// Received payments always count. A pending cash payment counts as well: the
// money is already in the till and a second teller must not collect it again.
// Pending cheques clear only on confirmation.
func (p Payment) CountsTowardBalance() bool {
	if p.Status == PaymentStatusReceived {
		return true
	}
	return p.Status == PaymentStatusPending && p.Method == PaymentMethodCash
}
