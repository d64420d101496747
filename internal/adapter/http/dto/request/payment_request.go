package request

type PaymentSubmitRequest struct {
	Amount     float64 `json:"amount" binding:"required"`
	Method     string  `json:"method" binding:"required"`
	ReceiptRef string  `json:"receipt_ref"`
}

type ReconcileRequest struct {
	Reviewer string `json:"reviewer" binding:"required"`
}
