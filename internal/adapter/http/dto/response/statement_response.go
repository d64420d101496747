package response

import (
	"time"

	"ferragens_atlas/internal/domain/billing"
)

type TotalsResponse struct {
	Subtotal      float64 `json:"subtotal"`
	DiscountTotal float64 `json:"discount_total"`
	Tax           float64 `json:"tax"`
	ShippingFee   float64 `json:"shipping_fee"`
	GrandTotal    float64 `json:"grand_total"`
	Overridden    bool    `json:"overridden"`
}

type ScheduleTermResponse struct {
	TermNo     int       `json:"term_no"`
	DueDate    time.Time `json:"due_date"`
	AmountDue  float64   `json:"amount_due"`
	AmountPaid float64   `json:"amount_paid"`
	Remaining  float64   `json:"remaining"`
	Status     string    `json:"status"`
	Synthetic  bool      `json:"synthetic"`
	Overdue    bool      `json:"overdue"`
}

type PaymentOptionsResponse struct {
	Payable       bool      `json:"payable"`
	Mode          string    `json:"mode"`
	Balance       float64   `json:"balance"`
	Multiples     []float64 `json:"multiples,omitempty"`
	MaxMultiplier int       `json:"max_multiplier"`
	CatchUp       bool      `json:"catch_up"`
	Step          float64   `json:"step"`
	FullAmount    float64   `json:"full_amount"`
	HalfAmount    float64   `json:"half_amount"`
}

type StatementResponse struct {
	OrderID      string                 `json:"order_id"`
	CustomerID   string                 `json:"customer_id"`
	CustomerName string                 `json:"customer_name,omitempty"`
	Totals       TotalsResponse         `json:"totals"`
	AppliedTotal float64                `json:"applied_total"`
	Balance      float64                `json:"balance"`
	Schedule     []ScheduleTermResponse `json:"schedule"`
	Options      PaymentOptionsResponse `json:"payment_options"`
	Payments     []PaymentResponse      `json:"payments"`
}

func FromStatement(st billing.OrderStatement) StatementResponse {
	schedule := make([]ScheduleTermResponse, 0, len(st.Schedule))
	for _, term := range st.Schedule {
		schedule = append(schedule, ScheduleTermResponse{
			TermNo:     term.TermNo,
			DueDate:    term.DueDate,
			AmountDue:  term.AmountDue.InexactFloat64(),
			AmountPaid: term.AmountPaid.InexactFloat64(),
			Remaining:  term.Remaining.InexactFloat64(),
			Status:     string(term.Status),
			Synthetic:  term.Synthetic,
			Overdue:    term.Overdue,
		})
	}

	multiples := make([]float64, 0, len(st.Options.Multiples))
	for _, m := range st.Options.Multiples {
		multiples = append(multiples, m.InexactFloat64())
	}

	return StatementResponse{
		OrderID:      st.Order.ID,
		CustomerID:   st.Order.CustomerID,
		CustomerName: st.Customer.Name,
		Totals: TotalsResponse{
			Subtotal:      st.Totals.Subtotal.InexactFloat64(),
			DiscountTotal: st.Totals.DiscountTotal.InexactFloat64(),
			Tax:           st.Totals.Tax.InexactFloat64(),
			ShippingFee:   st.Totals.ShippingFee.InexactFloat64(),
			GrandTotal:    st.Totals.GrandTotal.InexactFloat64(),
			Overridden:    st.Totals.Overridden,
		},
		AppliedTotal: st.AppliedTotal.InexactFloat64(),
		Balance:      st.Balance.InexactFloat64(),
		Schedule:     schedule,
		Options: PaymentOptionsResponse{
			Payable:       st.Options.Payable,
			Mode:          string(st.Options.Mode),
			Balance:       st.Options.Balance.InexactFloat64(),
			Multiples:     multiples,
			MaxMultiplier: st.Options.MaxMultiplier,
			CatchUp:       st.Options.CatchUp,
			Step:          st.Options.Step.InexactFloat64(),
			FullAmount:    st.Options.FullAmount().InexactFloat64(),
			HalfAmount:    st.Options.HalfAmount().InexactFloat64(),
		},
		Payments: FromPayments(st.Payments),
	}
}

type OutstandingRowResponse struct {
	OrderID      string  `json:"order_id"`
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name,omitempty"`
	GrandTotal   float64 `json:"grand_total"`
	AppliedTotal float64 `json:"applied_total"`
	Balance      float64 `json:"balance"`
	Overdue      bool    `json:"overdue"`
}

func FromOutstandingRows(rows []billing.OutstandingRow) []OutstandingRowResponse {
	out := make([]OutstandingRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, OutstandingRowResponse{
			OrderID:      row.OrderID,
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			GrandTotal:   row.GrandTotal.InexactFloat64(),
			AppliedTotal: row.AppliedTotal.InexactFloat64(),
			Balance:      row.Balance.InexactFloat64(),
			Overdue:      row.Overdue,
		})
	}
	return out
}
