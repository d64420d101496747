package billing

import (
	"time"

	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/domain/money"

	"github.com/shopspring/decimal"
)

// EqualizedTerm is a schedule term with its remaining amount recomputed from
// the live balance. AmountDue is redefined as AmountPaid + Remaining so the
// printed schedule always adds up to what is actually owed, even when the
// contracted term sums drifted from the order total.

type EqualizedTerm struct {
	entities.InstallmentTerm
	Remaining decimal.Decimal
	Synthetic bool
	Overdue   bool
}

// EqualizeSchedule spreads the outstanding balance uniformly across the
// unpaid terms. The half-up rounded share goes to every term but the last,
// which absorbs the remainder, so the shares always sum to the balance
// exactly. When every contracted term is settled but a balance remains, a
// synthetic catch-up term due immediately is appended.
func EqualizeSchedule(orderID string, terms []entities.InstallmentTerm, balance decimal.Decimal, now time.Time) []EqualizedTerm {
	balance = money.FloorZero(money.Round2(balance))

	out := make([]EqualizedTerm, 0, len(terms)+1)
	unpaid := make([]int, 0, len(terms))
	lastTermNo := 0
	for _, t := range terms {
		if t.TermNo > lastTermNo {
			lastTermNo = t.TermNo
		}
		out = append(out, EqualizedTerm{InstallmentTerm: t})
		if !t.Settled() {
			unpaid = append(unpaid, len(out)-1)
		}
	}

	if len(unpaid) == 0 {
		if balance.IsPositive() {
			out = append(out, EqualizedTerm{
				InstallmentTerm: entities.InstallmentTerm{
					OrderID:   orderID,
					TermNo:    lastTermNo + 1,
					DueDate:   now,
					AmountDue: balance,
					Status:    entities.InstallmentStatusPending,
				},
				Remaining: balance,
				Synthetic: true,
			})
		}
		return out
	}

	count := decimal.NewFromInt(int64(len(unpaid)))
	share := balance.DivRound(count, 2)
	last := balance.Sub(share.Mul(count.Sub(decimal.NewFromInt(1))))
	if last.IsNegative() {
		// Rounding the share up can overshoot tiny balances. Round down
		// instead and let the final term absorb the whole difference.
		share = balance.Div(count).RoundDown(2)
		last = balance.Sub(share.Mul(count.Sub(decimal.NewFromInt(1))))
	}

	for i, idx := range unpaid {
		remaining := share
		if i == len(unpaid)-1 {
			remaining = last
		}
		et := &out[idx]
		et.Remaining = remaining
		et.AmountDue = money.Round2(et.AmountPaid.Add(remaining))
		et.Overdue = remaining.IsPositive() && et.DueDate.Before(now)
	}
	return out
}

// RemainingTotal sums the remaining amounts of an equalized schedule.
func RemainingTotal(schedule []EqualizedTerm) decimal.Decimal {
	total := decimal.Zero
	for _, t := range schedule {
		total = total.Add(t.Remaining)
	}
	return money.Round2(total)
}
