package billing

import (
	"errors"
	"testing"
	"time"

	"ferragens_atlas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func creditOptions(t *testing.T, balance string, termAmounts ...string) PaymentOptions {
	t.Helper()
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	terms := pendingTerms(t, "ord-v", termAmounts...)
	schedule := EqualizeSchedule("ord-v", terms, dec(t, balance), now)
	return BuildPaymentOptions(entities.PaymentModeCredit, dec(t, balance), schedule, true, decimal.Zero)
}

func TestBuildPaymentOptions_CreditMultiples(t *testing.T) {
	opts := creditOptions(t, "1500", "500", "500", "500")

	if opts.CatchUp {
		t.Fatalf("did not expect catch-up state")
	}
	if opts.MaxMultiplier != 3 {
		t.Fatalf("max multiplier = %d, want 3", opts.MaxMultiplier)
	}
	want := []string{"500", "1000", "1500"}
	for i, w := range want {
		got, ok := opts.AmountForMultiplier(i + 1)
		if !ok || !got.Equal(dec(t, w)) {
			t.Fatalf("multiplier %d = %s (ok=%v), want %s", i+1, got, ok, w)
		}
	}
	if _, ok := opts.AmountForMultiplier(0); ok {
		t.Fatalf("multiplier 0 must be rejected")
	}
	if _, ok := opts.AmountForMultiplier(4); ok {
		t.Fatalf("multiplier beyond the schedule must be rejected")
	}

	if !opts.FullAmount().Equal(dec(t, "1500")) {
		t.Fatalf("full amount = %s, want 1500", opts.FullAmount())
	}
	// Half of three open terms selects the first term.
	if !opts.HalfAmount().Equal(dec(t, "500")) {
		t.Fatalf("half amount = %s, want 500", opts.HalfAmount())
	}
}

func TestValidateAmount_CreditPrefixOnly(t *testing.T) {
	opts := creditOptions(t, "1500", "500", "500", "500")

	for _, amount := range []string{"500", "1000", "1500"} {
		if err := opts.ValidateAmount(dec(t, amount)); err != nil {
			t.Fatalf("amount %s: unexpected error %v", amount, err)
		}
	}

	if err := opts.ValidateAmount(dec(t, "750")); !errors.Is(err, ErrAmountOffSchedule) {
		t.Fatalf("amount 750: expected ErrAmountOffSchedule, got %v", err)
	}
	if err := opts.ValidateAmount(dec(t, "1500.01")); !errors.Is(err, ErrAmountExceedsBalance) {
		t.Fatalf("amount 1500.01: expected ErrAmountExceedsBalance, got %v", err)
	}
	if err := opts.ValidateAmount(decimal.Zero); !errors.Is(err, ErrNonPositiveAmount) {
		t.Fatalf("amount 0: expected ErrNonPositiveAmount, got %v", err)
	}
	if err := opts.ValidateAmount(dec(t, "-10")); !errors.Is(err, ErrNonPositiveAmount) {
		t.Fatalf("amount -10: expected ErrNonPositiveAmount, got %v", err)
	}
}

func TestValidateAmount_CashRange(t *testing.T) {
	opts := BuildPaymentOptions(entities.PaymentModeCash, dec(t, "1200.00"), nil, true, decimal.Zero)

	for _, amount := range []string{"0.01", "600.50", "1200.00"} {
		if err := opts.ValidateAmount(dec(t, amount)); err != nil {
			t.Fatalf("amount %s: unexpected error %v", amount, err)
		}
	}
	if err := opts.ValidateAmount(dec(t, "1200.01")); !errors.Is(err, ErrAmountExceedsBalance) {
		t.Fatalf("expected ErrAmountExceedsBalance, got %v", err)
	}
	if err := opts.ValidateAmount(decimal.Zero); !errors.Is(err, ErrNonPositiveAmount) {
		t.Fatalf("expected ErrNonPositiveAmount, got %v", err)
	}
}

func TestValidateAmount_NotPayableBlocksEverything(t *testing.T) {
	opts := BuildPaymentOptions(entities.PaymentModeCash, dec(t, "1200.00"), nil, false, decimal.Zero)
	if err := opts.ValidateAmount(dec(t, "100")); !errors.Is(err, ErrOrderNotPayable) {
		t.Fatalf("expected ErrOrderNotPayable, got %v", err)
	}
	if len(opts.Multiples) != 0 {
		t.Fatalf("blocked options must not offer multiples")
	}
}

func TestValidateAmount_FullyPaidOrder(t *testing.T) {
	opts := BuildPaymentOptions(entities.PaymentModeCash, decimal.Zero, nil, true, decimal.Zero)
	if err := opts.ValidateAmount(dec(t, "0.01")); !errors.Is(err, ErrAmountExceedsBalance) {
		t.Fatalf("expected ErrAmountExceedsBalance on a settled order, got %v", err)
	}
}

func TestBuildPaymentOptions_CreditCatchUpFallsBackToRange(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	terms := pendingTerms(t, "ord-c", "500", "500")
	for i := range terms {
		terms[i].Status = entities.InstallmentStatusPaid
		terms[i].AmountPaid = terms[i].AmountDue
	}
	schedule := EqualizeSchedule("ord-c", terms, dec(t, "250"), now)

	opts := BuildPaymentOptions(entities.PaymentModeCredit, dec(t, "250"), schedule, true, decimal.Zero)
	if !opts.CatchUp {
		t.Fatalf("expected catch-up state")
	}
	if len(opts.Multiples) != 0 {
		t.Fatalf("catch-up must not offer prefix multiples")
	}

	// Range semantics: any amount up to the balance clears.
	if err := opts.ValidateAmount(dec(t, "120.55")); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := opts.ValidateAmount(dec(t, "250.01")); !errors.Is(err, ErrAmountExceedsBalance) {
		t.Fatalf("expected ErrAmountExceedsBalance, got %v", err)
	}
	if !opts.HalfAmount().Equal(dec(t, "125")) {
		t.Fatalf("half amount = %s, want 125", opts.HalfAmount())
	}
}

func TestPaymentOptions_Stepper(t *testing.T) {
	opts := BuildPaymentOptions(entities.PaymentModeCash, dec(t, "1250"), nil, true, decimal.Zero)

	if !opts.Step.Equal(DefaultCashStep) {
		t.Fatalf("step = %s, want default %s", opts.Step, DefaultCashStep)
	}
	if got := opts.StepUp(decimal.Zero); !got.Equal(dec(t, "100")) {
		t.Fatalf("step up from 0 = %s, want 100", got)
	}
	if got := opts.StepUp(dec(t, "1200")); !got.Equal(dec(t, "1250")) {
		t.Fatalf("step up near the balance = %s, want 1250", got)
	}
	if got := opts.StepDown(dec(t, "250")); !got.Equal(dec(t, "150")) {
		t.Fatalf("step down = %s, want 150", got)
	}
	if got := opts.StepDown(dec(t, "100")); !got.Equal(dec(t, "100")) {
		t.Fatalf("step down at the floor = %s, want 100 kept", got)
	}

	custom := BuildPaymentOptions(entities.PaymentModeCash, dec(t, "1250"), nil, true, dec(t, "25"))
	if got := custom.StepUp(dec(t, "10")); !got.Equal(dec(t, "35")) {
		t.Fatalf("custom step up = %s, want 35", got)
	}
}

func TestValidateAmount_EpsilonTolerance(t *testing.T) {
	opts := creditOptions(t, "1500", "500", "500", "500")
	if err := opts.ValidateAmount(dec(t, "1000.0000004")); err != nil {
		t.Fatalf("expected epsilon tolerance on prefix match, got %v", err)
	}

	cash := BuildPaymentOptions(entities.PaymentModeCash, dec(t, "1200"), nil, true, decimal.Zero)
	if err := cash.ValidateAmount(dec(t, "1200.0000004")); err != nil {
		t.Fatalf("expected epsilon tolerance at the balance boundary, got %v", err)
	}
}
