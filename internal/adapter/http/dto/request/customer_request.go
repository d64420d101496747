package request

import (
	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/domain/money"
)

type CustomerUpsertRequest struct {
	CustomerID    string  `json:"customer_id" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	PaymentMode   string  `json:"payment_mode"`
	TermAmount    float64 `json:"term_amount"`
	ContractTerms string  `json:"contract_terms"`
}

func (r CustomerUpsertRequest) ToEntity() entities.Customer {
	return entities.Customer{
		ID:            r.CustomerID,
		Name:          r.Name,
		PaymentMode:   entities.PaymentMode(r.PaymentMode),
		TermAmount:    money.FromFloat(r.TermAmount),
		ContractTerms: r.ContractTerms,
	}
}
