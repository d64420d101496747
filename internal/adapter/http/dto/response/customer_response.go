package response

import (
	"time"

	"ferragens_atlas/internal/domain/entities"
)

type CustomerResponse struct {
	CustomerID    string    `json:"customer_id"`
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	PaymentMode   string    `json:"payment_mode,omitempty"`
	EffectiveMode string    `json:"effective_mode"`
	TermAmount    float64   `json:"term_amount"`
	ContractTerms string    `json:"contract_terms,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    c.ID,
		ID:            c.ID,
		Name:          c.Name,
		PaymentMode:   string(c.PaymentMode),
		EffectiveMode: string(c.EffectiveMode()),
		TermAmount:    c.TermAmount.InexactFloat64(),
		ContractTerms: c.ContractTerms,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
