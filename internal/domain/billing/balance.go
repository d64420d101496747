package billing

import (
	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/domain/money"

	"github.com/shopspring/decimal"
)

// AppliedTotal sums the payments that currently count against an order:
// everything received plus cash still sitting in review. A duplicate cash
// submission must see the first one even before a reviewer confirms it.
func AppliedTotal(payments []entities.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.CountsTowardBalance() {
			total = total.Add(p.Amount)
		}
	}
	return money.Round2(total)
}

// OutstandingBalance is what the customer still owes on the order.
// Overpayment never drives it negative.
func OutstandingBalance(grandTotal decimal.Decimal, payments []entities.Payment) decimal.Decimal {
	return money.FloorZero(money.Round2(grandTotal.Sub(AppliedTotal(payments))))
}
