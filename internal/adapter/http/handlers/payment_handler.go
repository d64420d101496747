package handlers

import (
	"errors"
	request "ferragens_atlas/internal/adapter/http/dto/request"
	response "ferragens_atlas/internal/adapter/http/dto/response"
	"ferragens_atlas/internal/domain/billing"
	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/domain/money"
	"ferragens_atlas/internal/usecase"
	"ferragens_atlas/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payment submissions.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// SubmitPayment registers a pending payment against an order after the
// amount passes the order's payment options.
func (h *PaymentHandler) SubmitPayment(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] submit start order_id=%s", orderID)

	var payload request.PaymentSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload order_id=%s err=%v", orderID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.SubmitPayment(c.Request.Context(), orderID, money.FromFloat(payload.Amount), entities.PaymentMethod(payload.Method), payload.ReceiptRef)
	if err != nil {
		log.Printf("[payment][handler] submit failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] submit success order_id=%s payment_id=%s amount=%s", orderID, created.ID, created.Amount)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// ListPaymentsByOrderID returns every payment recorded against an order.
func (h *PaymentHandler) ListPaymentsByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] list start order_id=%s", orderID)

	payments, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] list failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] get start payment_id=%s", paymentID)

	payment, err := h.usecase.GetByID(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, billing.ErrNonPositiveAmount):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_AMOUNT", "Payment amount must be positive", http.StatusBadRequest)
	case errors.Is(err, billing.ErrAmountExceedsBalance):
		return pkg.NewDomainErrorSimple("AMOUNT_EXCEEDS_BALANCE", "Payment amount exceeds the outstanding balance", http.StatusBadRequest)
	case errors.Is(err, billing.ErrAmountOffSchedule):
		return pkg.NewDomainErrorSimple("AMOUNT_OFF_SCHEDULE", "Credit payments must cover a whole number of installments", http.StatusBadRequest)
	case errors.Is(err, billing.ErrOrderNotPayable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PAYABLE", "Order has no shipping quote yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
