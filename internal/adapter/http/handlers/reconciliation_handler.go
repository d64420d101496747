package handlers

import (
	"context"
	"errors"
	request "ferragens_atlas/internal/adapter/http/dto/request"
	response "ferragens_atlas/internal/adapter/http/dto/response"
	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/usecase"
	"ferragens_atlas/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReconciliationHandler handles the back-office review of pending payments.

type ReconciliationHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewReconciliationHandler(uc usecase.IReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{usecase: uc}
}

// ConfirmPayment marks a pending payment as received.
func (h *ReconciliationHandler) ConfirmPayment(c *gin.Context) {
	h.resolvePaymentByRequest(c, "confirm", h.usecase.Confirm)
}

// RejectPayment marks a pending payment as rejected.
func (h *ReconciliationHandler) RejectPayment(c *gin.Context) {
	h.resolvePaymentByRequest(c, "reject", h.usecase.Reject)
}

func (h *ReconciliationHandler) resolvePaymentByRequest(
	c *gin.Context,
	action string,
	updater func(ctx context.Context, paymentID, reviewer string) (entities.Payment, error),
) {
	paymentID := c.Param("payment_id")
	log.Printf("[reconciliation][handler] %s start payment_id=%s", action, paymentID)

	var payload request.ReconcileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[reconciliation][handler] %s invalid payload payment_id=%s err=%v", action, paymentID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payment, err := updater(c.Request.Context(), paymentID, payload.Reviewer)
	if err != nil {
		log.Printf("[reconciliation][handler] %s failed payment_id=%s err=%v", action, paymentID, err)
		appErr := mapReconciliationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[reconciliation][handler] %s success payment_id=%s status=%s reviewer=%s", action, paymentID, payment.Status, payload.Reviewer)

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func mapReconciliationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidReviewer):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentAlreadyProcessed):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_PROCESSED", "Payment was already reviewed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
