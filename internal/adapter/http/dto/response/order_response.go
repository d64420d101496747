package response

import (
	"time"

	"ferragens_atlas/internal/domain/entities"
)

type OrderItemResponse struct {
	SKU             string  `json:"sku"`
	Description     string  `json:"description,omitempty"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
}

type OrderResponse struct {
	OrderID            string              `json:"order_id"`
	ID                 string              `json:"id"`
	CustomerID         string              `json:"customer_id"`
	Items              []OrderItemResponse `json:"items"`
	TaxAmount          float64             `json:"tax_amount"`
	ShippingFee        float64             `json:"shipping_fee"`
	GrandTotalOverride *float64            `json:"grand_total_override,omitempty"`
	Payable            bool                `json:"payable"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			SKU:             it.SKU,
			Description:     it.Description,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice.InexactFloat64(),
			DiscountPercent: it.DiscountPercent.InexactFloat64(),
		})
	}

	res := OrderResponse{
		OrderID:     o.ID,
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		Items:       items,
		TaxAmount:   o.TaxAmount.InexactFloat64(),
		ShippingFee: o.ShippingFee.InexactFloat64(),
		Payable:     o.Payable(),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if o.GrandTotalOverride != nil {
		override := o.GrandTotalOverride.InexactFloat64()
		res.GrandTotalOverride = &override
	}
	return res
}

type InstallmentTermResponse struct {
	OrderID    string    `json:"order_id"`
	TermNo     int       `json:"term_no"`
	DueDate    time.Time `json:"due_date"`
	AmountDue  float64   `json:"amount_due"`
	AmountPaid float64   `json:"amount_paid"`
	Status     string    `json:"status"`
}

func FromInstallmentTerms(terms []entities.InstallmentTerm) []InstallmentTermResponse {
	out := make([]InstallmentTermResponse, 0, len(terms))
	for _, term := range terms {
		out = append(out, InstallmentTermResponse{
			OrderID:    term.OrderID,
			TermNo:     term.TermNo,
			DueDate:    term.DueDate,
			AmountDue:  term.AmountDue.InexactFloat64(),
			AmountPaid: term.AmountPaid.InexactFloat64(),
			Status:     string(term.Status),
		})
	}
	return out
}
