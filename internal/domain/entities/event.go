package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentEventKind string

const (
	PaymentEventSubmitted  PaymentEventKind = "payment_submitted"
	PaymentEventReconciled PaymentEventKind = "payment_reconciled"
)

// PaymentEvent is the change fact published to downstream consumers when a
// payment is created or reconciled. It is built from the payments table
// stream, so it reflects what was actually written.

type PaymentEvent struct {
	Kind       PaymentEventKind `json:"kind"`
	PaymentID  string           `json:"payment_id"`
	OrderID    string           `json:"order_id"`
	CustomerID string           `json:"customer_id"`
	Amount     decimal.Decimal  `json:"amount"`
	Method     PaymentMethod    `json:"method"`
	Outcome    PaymentStatus    `json:"outcome"`
	ReviewedBy string           `json:"reviewed_by,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
