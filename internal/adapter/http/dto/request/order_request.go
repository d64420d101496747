package request

import (
	"time"

	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/domain/money"
)

type OrderItemRequest struct {
	SKU             string  `json:"sku" binding:"required"`
	Description     string  `json:"description"`
	Quantity        int     `json:"quantity" binding:"required"`
	UnitPrice       float64 `json:"unit_price" binding:"required"`
	DiscountPercent float64 `json:"discount_percent"`
}

type OrderUpsertRequest struct {
	OrderID            string             `json:"order_id" binding:"required"`
	CustomerID         string             `json:"customer_id" binding:"required"`
	Items              []OrderItemRequest `json:"items"`
	TaxAmount          float64            `json:"tax_amount"`
	ShippingFee        float64            `json:"shipping_fee"`
	GrandTotalOverride *float64           `json:"grand_total_override"`
}

func (r OrderUpsertRequest) ToEntity() entities.Order {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			SKU:             it.SKU,
			Description:     it.Description,
			Quantity:        it.Quantity,
			UnitPrice:       money.FromFloat(it.UnitPrice),
			DiscountPercent: money.FromFloat(it.DiscountPercent),
		})
	}

	order := entities.Order{
		ID:          r.OrderID,
		CustomerID:  r.CustomerID,
		Items:       items,
		TaxAmount:   money.FromFloat(r.TaxAmount),
		ShippingFee: money.FromFloat(r.ShippingFee),
	}
	if r.GrandTotalOverride != nil {
		override := money.FromFloat(*r.GrandTotalOverride)
		order.GrandTotalOverride = &override
	}
	return order
}

type ShippingFeeRequest struct {
	ShippingFee float64 `json:"shipping_fee" binding:"required"`
}

type InstallmentTermRequest struct {
	TermNo     int       `json:"term_no" binding:"required"`
	DueDate    time.Time `json:"due_date" binding:"required"`
	AmountDue  float64   `json:"amount_due" binding:"required"`
	AmountPaid float64   `json:"amount_paid"`
	Status     string    `json:"status"`
}

type InstallmentPlanRequest struct {
	Terms []InstallmentTermRequest `json:"terms" binding:"required"`
}

func (r InstallmentPlanRequest) ToEntities(orderID string) []entities.InstallmentTerm {
	terms := make([]entities.InstallmentTerm, 0, len(r.Terms))
	for _, t := range r.Terms {
		terms = append(terms, entities.InstallmentTerm{
			OrderID:    orderID,
			TermNo:     t.TermNo,
			DueDate:    t.DueDate,
			AmountDue:  money.FromFloat(t.AmountDue),
			AmountPaid: money.FromFloat(t.AmountPaid),
			Status:     entities.InstallmentStatus(t.Status),
		})
	}
	return terms
}
