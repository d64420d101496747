package billing

import (
	"testing"
	"time"

	"ferragens_atlas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func pendingTerms(t *testing.T, orderID string, amounts ...string) []entities.InstallmentTerm {
	t.Helper()
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	terms := make([]entities.InstallmentTerm, 0, len(amounts))
	for i, a := range amounts {
		terms = append(terms, entities.InstallmentTerm{
			OrderID:   orderID,
			TermNo:    i + 1,
			DueDate:   due.AddDate(0, i, 0),
			AmountDue: dec(t, a),
			Status:    entities.InstallmentStatusPending,
		})
	}
	return terms
}

func TestEqualizeSchedule_UniformSplitWithRemainderOnLast(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	terms := pendingTerms(t, "ord-1", "40", "40", "40")

	schedule := EqualizeSchedule("ord-1", terms, dec(t, "100.00"), now)
	if len(schedule) != 3 {
		t.Fatalf("expected 3 terms, got %d", len(schedule))
	}

	want := []string{"33.33", "33.33", "33.34"}
	for i, w := range want {
		if !schedule[i].Remaining.Equal(dec(t, w)) {
			t.Fatalf("term %d remaining = %s, want %s", i+1, schedule[i].Remaining, w)
		}
		if !schedule[i].AmountDue.Equal(dec(t, w)) {
			t.Fatalf("term %d amount due = %s, want %s", i+1, schedule[i].AmountDue, w)
		}
	}
	if !RemainingTotal(schedule).Equal(dec(t, "100.00")) {
		t.Fatalf("remaining total = %s, want 100.00", RemainingTotal(schedule))
	}
}

func TestEqualizeSchedule_PartialPaymentsKeepPaidAmounts(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	terms := pendingTerms(t, "ord-2", "500", "500", "500")
	terms[0].AmountPaid = dec(t, "200")

	schedule := EqualizeSchedule("ord-2", terms, dec(t, "900"), now)

	// 900 over 3 open terms: 300 each.
	if !schedule[0].Remaining.Equal(dec(t, "300")) {
		t.Fatalf("term 1 remaining = %s, want 300", schedule[0].Remaining)
	}
	// Redefined due keeps what was already paid.
	if !schedule[0].AmountDue.Equal(dec(t, "500")) {
		t.Fatalf("term 1 amount due = %s, want 500", schedule[0].AmountDue)
	}
	if !schedule[1].AmountDue.Equal(dec(t, "300")) {
		t.Fatalf("term 2 amount due = %s, want 300", schedule[1].AmountDue)
	}
}

func TestEqualizeSchedule_SettledTermsPassThrough(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	terms := pendingTerms(t, "ord-3", "500", "500", "500")
	terms[0].Status = entities.InstallmentStatusPaid
	terms[0].AmountPaid = dec(t, "500")

	schedule := EqualizeSchedule("ord-3", terms, dec(t, "1000"), now)
	if !schedule[0].Remaining.IsZero() {
		t.Fatalf("settled term remaining = %s, want 0", schedule[0].Remaining)
	}
	if !schedule[0].AmountDue.Equal(dec(t, "500")) {
		t.Fatalf("settled term amount due must not change, got %s", schedule[0].AmountDue)
	}
	if !schedule[1].Remaining.Equal(dec(t, "500")) || !schedule[2].Remaining.Equal(dec(t, "500")) {
		t.Fatalf("open terms = %s / %s, want 500 / 500", schedule[1].Remaining, schedule[2].Remaining)
	}
}

func TestEqualizeSchedule_CatchUpTerm(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	terms := pendingTerms(t, "ord-4", "500", "500")
	for i := range terms {
		terms[i].Status = entities.InstallmentStatusPaid
		terms[i].AmountPaid = terms[i].AmountDue
	}

	schedule := EqualizeSchedule("ord-4", terms, dec(t, "250.00"), now)
	if len(schedule) != 3 {
		t.Fatalf("expected a synthetic catch-up term, got %d terms", len(schedule))
	}

	catchUp := schedule[2]
	if !catchUp.Synthetic {
		t.Fatalf("expected synthetic flag")
	}
	if catchUp.TermNo != 3 {
		t.Fatalf("catch-up term no = %d, want 3", catchUp.TermNo)
	}
	if !catchUp.DueDate.Equal(now) {
		t.Fatalf("catch-up due = %s, want %s", catchUp.DueDate, now)
	}
	if !catchUp.Remaining.Equal(dec(t, "250.00")) {
		t.Fatalf("catch-up remaining = %s, want 250.00", catchUp.Remaining)
	}
	if catchUp.Overdue {
		t.Fatalf("a term due right now is not overdue")
	}
}

func TestEqualizeSchedule_NoScheduleNoBalance(t *testing.T) {
	now := time.Now().UTC()
	if got := EqualizeSchedule("ord-5", nil, decimal.Zero, now); len(got) != 0 {
		t.Fatalf("expected empty schedule, got %d terms", len(got))
	}
	// A bare balance with no contracted terms still yields a catch-up term.
	got := EqualizeSchedule("ord-5", nil, dec(t, "80"), now)
	if len(got) != 1 || !got[0].Synthetic || got[0].TermNo != 1 {
		t.Fatalf("expected a single synthetic term, got %+v", got)
	}
	if got[0].OrderID != "ord-5" {
		t.Fatalf("synthetic term order id = %q, want ord-5", got[0].OrderID)
	}
}

func TestEqualizeSchedule_ZeroBalanceZeroesOpenTerms(t *testing.T) {
	now := time.Now().UTC()
	terms := pendingTerms(t, "ord-6", "500", "500")

	schedule := EqualizeSchedule("ord-6", terms, decimal.Zero, now)
	for i, et := range schedule {
		if !et.Remaining.IsZero() {
			t.Fatalf("term %d remaining = %s, want 0", i+1, et.Remaining)
		}
		if et.Overdue {
			t.Fatalf("term %d flagged overdue with nothing owed", i+1)
		}
	}
}

func TestEqualizeSchedule_NegativeBalanceClampsToZero(t *testing.T) {
	now := time.Now().UTC()
	terms := pendingTerms(t, "ord-7", "500")
	schedule := EqualizeSchedule("ord-7", terms, dec(t, "-10"), now)
	if !schedule[0].Remaining.IsZero() {
		t.Fatalf("remaining = %s, want 0", schedule[0].Remaining)
	}
}

func TestEqualizeSchedule_OverdueFlag(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	terms := []entities.InstallmentTerm{
		{OrderID: "ord-8", TermNo: 1, DueDate: now.AddDate(0, -1, 0), AmountDue: dec(t, "100"), Status: entities.InstallmentStatusPending},
		{OrderID: "ord-8", TermNo: 2, DueDate: now.AddDate(0, 1, 0), AmountDue: dec(t, "100"), Status: entities.InstallmentStatusPending},
	}

	schedule := EqualizeSchedule("ord-8", terms, dec(t, "200"), now)
	if !schedule[0].Overdue {
		t.Fatalf("past-due open term must be overdue")
	}
	if schedule[1].Overdue {
		t.Fatalf("future term must not be overdue")
	}
}

func TestEqualizeSchedule_SharesAlwaysSumToBalance(t *testing.T) {
	now := time.Now().UTC()
	balances := []string{"0.01", "0.02", "0.03", "0.05", "1.00", "99.99", "100.00", "1500.00", "12345.67"}
	for _, b := range balances {
		for n := 1; n <= 7; n++ {
			amounts := make([]string, n)
			for i := range amounts {
				amounts[i] = "10"
			}
			terms := pendingTerms(t, "ord-sum", amounts...)
			schedule := EqualizeSchedule("ord-sum", terms, dec(t, b), now)

			total := RemainingTotal(schedule)
			if !total.Equal(dec(t, b)) {
				t.Fatalf("balance %s over %d terms: shares sum to %s", b, n, total)
			}
			for i, et := range schedule {
				if et.Remaining.IsNegative() {
					t.Fatalf("balance %s over %d terms: term %d has negative share %s", b, n, i+1, et.Remaining)
				}
			}
		}
	}
}

func TestEqualizeSchedule_Idempotent(t *testing.T) {
	now := time.Now().UTC()
	terms := pendingTerms(t, "ord-9", "40", "40", "40")
	balance := dec(t, "100.00")

	first := EqualizeSchedule("ord-9", terms, balance, now)

	// Feed the redefined schedule back in; with the same balance the shares
	// must not move.
	again := make([]entities.InstallmentTerm, 0, len(first))
	for _, et := range first {
		again = append(again, et.InstallmentTerm)
	}
	second := EqualizeSchedule("ord-9", again, balance, now)

	if len(first) != len(second) {
		t.Fatalf("schedule size changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Remaining.Equal(second[i].Remaining) {
			t.Fatalf("term %d share moved: %s vs %s", i+1, first[i].Remaining, second[i].Remaining)
		}
	}
}
