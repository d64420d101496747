package handlers

import (
	"errors"
	response "ferragens_atlas/internal/adapter/http/dto/response"
	"ferragens_atlas/internal/usecase"
	"ferragens_atlas/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatementHandler handles HTTP requests for billing statements and the
// outstanding balances report.

type StatementHandler struct {
	usecase usecase.IBillingStatementUseCase
}

func NewStatementHandler(uc usecase.IBillingStatementUseCase) *StatementHandler {
	return &StatementHandler{usecase: uc}
}

// GetStatement returns the computed billing view of one order.
func (h *StatementHandler) GetStatement(c *gin.Context) {
	orderID := c.Param("order_id")

	statement, err := h.usecase.BuildStatement(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapStatementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatement(statement))
}

// ListOutstanding returns every order that still carries a positive balance.
func (h *StatementHandler) ListOutstanding(c *gin.Context) {
	rows, err := h.usecase.ListOutstanding(c.Request.Context())
	if err != nil {
		appErr := mapStatementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOutstandingRows(rows))
}

func mapStatementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
