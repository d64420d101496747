package response

import (
	"time"

	"ferragens_atlas/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID  string     `json:"payment_id"`
	ID         string     `json:"id"`
	OrderID    string     `json:"order_id"`
	CustomerID string     `json:"customer_id"`
	Amount     float64    `json:"amount"`
	Method     string     `json:"method"`
	Status     string     `json:"status"`
	ReceiptRef string     `json:"receipt_ref,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ReviewedBy string     `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:  p.ID,
		ID:         p.ID,
		OrderID:    p.OrderID,
		CustomerID: p.CustomerID,
		Amount:     p.Amount.InexactFloat64(),
		Method:     string(p.Method),
		Status:     string(p.Status),
		ReceiptRef: p.ReceiptRef,
		CreatedAt:  p.CreatedAt,
		ReviewedBy: p.ReviewedBy,
		ReviewedAt: p.ReviewedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
