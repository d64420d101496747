// Package billing implements the money arithmetic of the service: order
// totals, outstanding balances, installment equalization and payment amount
// validation. Everything in this package is pure; persistence and transport
// live in the adapter layers.
package billing

import (
	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/domain/money"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TotalsBreakdown is the computed ledger of an order.
//
// Subtotal is gross of discounts, so GrandTotal = Subtotal - DiscountTotal
// + Tax + ShippingFee, unless the commercial system pushed a manual
// override, in which case the override wins wholesale and Overridden is set.

type TotalsBreakdown struct {
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	Tax           decimal.Decimal
	ShippingFee   decimal.Decimal
	GrandTotal    decimal.Decimal
	Overridden    bool
}

// LineTotal computes the net value of one order line. Malformed input is
// clamped rather than rejected: negative quantities and prices count as zero
// and discounts are bounded to 0..100 percent.
func LineTotal(it entities.OrderItem) decimal.Decimal {
	gross := grossLine(it)
	net := gross.Mul(hundred.Sub(clampPercent(it.DiscountPercent))).Div(hundred)
	return money.Round2(net)
}

// ComputeTotals derives the full breakdown for an order. The tax amount is
// taken as given, negative tax is a legitimate credit adjustment.
func ComputeTotals(o entities.Order) TotalsBreakdown {
	subtotal := decimal.Zero
	discount := decimal.Zero
	for _, it := range o.Items {
		gross := grossLine(it)
		subtotal = subtotal.Add(gross)
		discount = discount.Add(gross.Sub(LineTotal(it)))
	}

	b := TotalsBreakdown{
		Subtotal:      money.Round2(subtotal),
		DiscountTotal: money.Round2(discount),
		Tax:           money.Round2(o.TaxAmount),
		ShippingFee:   money.FloorZero(money.Round2(o.ShippingFee)),
	}
	net := money.FloorZero(b.Subtotal.Sub(b.DiscountTotal))
	b.GrandTotal = money.Round2(net.Add(b.Tax).Add(b.ShippingFee))

	if o.GrandTotalOverride != nil {
		b.GrandTotal = money.Round2(*o.GrandTotalOverride)
		b.Overridden = true
	}
	return b
}

func grossLine(it entities.OrderItem) decimal.Decimal {
	qty := it.Quantity
	if qty < 0 {
		qty = 0
	}
	price := money.FloorZero(it.UnitPrice)
	return money.Round2(price.Mul(decimal.NewFromInt(int64(qty))))
}

func clampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}
