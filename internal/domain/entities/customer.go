package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode decides how a customer settles an order: a free cash amount or
// a contracted per-term credit schedule.

type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "cash"
	PaymentModeCredit PaymentMode = "credit"
)

// Customer is the billing profile synced from the commercial system.
//
// Storage model (DynamoDB):
//   - PK: id
//
// PaymentMode may be absent on legacy records. EffectiveMode derives it from
// the contract fields so old profiles keep billing correctly.

type Customer struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PaymentMode   PaymentMode     `json:"payment_mode,omitempty"`
	TermAmount    decimal.Decimal `json:"term_amount"`
	ContractTerms string          `json:"contract_terms,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Contract wordings that imply an installment agreement on legacy records.
var installmentMarkers = []string{"installment", "instalment", "parcel", "monthly"}

// EffectiveMode resolves the billing mode. An explicit PaymentMode wins;
// otherwise a contracted term amount or installment wording in the contract
// text means credit, and everything else falls back to cash.
func (c Customer) EffectiveMode() PaymentMode {
	switch c.PaymentMode {
	case PaymentModeCash, PaymentModeCredit:
		return c.PaymentMode
	}

	if c.TermAmount.IsPositive() {
		return PaymentModeCredit
	}

	terms := strings.ToLower(c.ContractTerms)
	for _, marker := range installmentMarkers {
		if strings.Contains(terms, marker) {
			return PaymentModeCredit
		}
	}
	return PaymentModeCash
}
