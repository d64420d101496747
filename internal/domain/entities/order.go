package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order as captured by the commercial system.
// Values arrive unchecked; the ledger clamps malformed quantities, prices and
// discounts instead of rejecting the order.

type OrderItem struct {
	SKU             string          `json:"sku"`
	Description     string          `json:"description"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// Order is the billable order persisted by the billing-service.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - ShippingFee doubles as the payability gate: zero means the fee was
//     never quoted and the order cannot receive payments yet.
//   - GrandTotalOverride, when set, replaces the computed total wholesale.

type Order struct {
	ID                 string           `json:"id"`
	CustomerID         string           `json:"customer_id"`
	Items              []OrderItem      `json:"items"`
	TaxAmount          decimal.Decimal  `json:"tax_amount"`
	ShippingFee        decimal.Decimal  `json:"shipping_fee"`
	GrandTotalOverride *decimal.Decimal `json:"grand_total_override,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// Payable reports whether the order may receive payments. The shipping fee is
// the last amount quoted before checkout, so a zero fee means billing data is
// still incomplete.
func (o Order) Payable() bool {
	return o.ShippingFee.IsPositive()
}
