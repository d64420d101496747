package billing

import (
	"errors"

	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/domain/money"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotPayable      = errors.New("order is not payable yet")
	ErrNonPositiveAmount    = errors.New("payment amount must be positive")
	ErrAmountExceedsBalance = errors.New("payment amount exceeds the outstanding balance")
	ErrAmountOffSchedule    = errors.New("payment amount does not match the installment schedule")
)

// DefaultCashStep is the quantum used by the cash amount stepper when no
// other step is configured.
var DefaultCashStep = decimal.NewFromInt(100)

// PaymentOptions captures what a customer is allowed to pay right now.
//
// Cash mode accepts any amount in (0, Balance]. Credit mode accepts only the
// cumulative term amounts in Multiples, or the full balance. CatchUp marks
// the degenerate credit state (no open contracted terms) where the schedule
// cannot constrain the amount and cash range rules apply instead.

type PaymentOptions struct {
	Payable       bool
	Mode          entities.PaymentMode
	Balance       decimal.Decimal
	Multiples     []decimal.Decimal
	MaxMultiplier int
	CatchUp       bool
	Step          decimal.Decimal
}

// BuildPaymentOptions derives the options from an equalized schedule.
func BuildPaymentOptions(mode entities.PaymentMode, balance decimal.Decimal, schedule []EqualizedTerm, payable bool, step decimal.Decimal) PaymentOptions {
	opts := PaymentOptions{
		Payable: payable,
		Mode:    mode,
		Balance: money.FloorZero(money.Round2(balance)),
		Step:    step,
	}
	if !opts.Step.IsPositive() {
		opts.Step = DefaultCashStep
	}
	if !payable || mode != entities.PaymentModeCredit {
		return opts
	}

	for _, t := range schedule {
		if t.Synthetic {
			opts.CatchUp = true
			return opts
		}
	}

	running := decimal.Zero
	for _, t := range schedule {
		if !t.Remaining.IsPositive() {
			continue
		}
		running = money.Round2(running.Add(t.Remaining))
		opts.Multiples = append(opts.Multiples, running)
	}
	opts.MaxMultiplier = len(opts.Multiples)
	return opts
}

// ValidateAmount checks a proposed payment amount against the options.
func (o PaymentOptions) ValidateAmount(amount decimal.Decimal) error {
	if !o.Payable {
		return ErrOrderNotPayable
	}
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	if o.Mode == entities.PaymentModeCredit && !o.CatchUp && len(o.Multiples) > 0 {
		for _, m := range o.Multiples {
			if money.Equal(amount, m) {
				return nil
			}
		}
		if money.Equal(amount, o.Balance) {
			return nil
		}
		if !money.AtMost(amount, o.Balance) {
			return ErrAmountExceedsBalance
		}
		return ErrAmountOffSchedule
	}

	if !money.AtMost(amount, o.Balance) {
		return ErrAmountExceedsBalance
	}
	return nil
}

// AmountForMultiplier returns the amount that settles the first k open terms.
func (o PaymentOptions) AmountForMultiplier(k int) (decimal.Decimal, bool) {
	if k < 1 || k > len(o.Multiples) {
		return decimal.Zero, false
	}
	return o.Multiples[k-1], true
}

// FullAmount settles the order in one payment.
func (o PaymentOptions) FullAmount() decimal.Decimal {
	return o.Balance
}

// HalfAmount is the preselected "pay in half" suggestion: the amount covering
// the first half of the open terms, or half the balance when no schedule
// constrains the amount.
func (o PaymentOptions) HalfAmount() decimal.Decimal {
	if o.Mode == entities.PaymentModeCredit && !o.CatchUp && len(o.Multiples) > 0 {
		k := len(o.Multiples) / 2
		if k < 1 {
			k = 1
		}
		return o.Multiples[k-1]
	}
	return o.Balance.DivRound(decimal.NewFromInt(2), 2)
}

// StepUp advances a cash amount by one step, capped at the balance.
func (o PaymentOptions) StepUp(current decimal.Decimal) decimal.Decimal {
	next := money.Round2(current.Add(o.Step))
	if next.GreaterThan(o.Balance) {
		return o.Balance
	}
	return next
}

// StepDown lowers a cash amount by one step. When the step would land on
// zero or below, the current amount is kept.
func (o PaymentOptions) StepDown(current decimal.Decimal) decimal.Decimal {
	next := money.Round2(current.Sub(o.Step))
	if !next.IsPositive() {
		return current
	}
	return next
}
