package handlers

import (
	"errors"
	request "ferragens_atlas/internal/adapter/http/dto/request"
	response "ferragens_atlas/internal/adapter/http/dto/response"
	"ferragens_atlas/internal/domain/money"
	"ferragens_atlas/internal/usecase"
	"ferragens_atlas/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for sales orders and their installment
// plans.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// UpsertOrder creates or replaces a sales order.
func (h *OrderHandler) UpsertOrder(c *gin.Context) {
	var payload request.OrderUpsertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpsertOrder(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.usecase.GetByID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// SetShippingFee records the shipping quote that makes an order payable.
func (h *OrderHandler) SetShippingFee(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.ShippingFeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.SetShippingFee(c.Request.Context(), orderID, money.FromFloat(payload.ShippingFee))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ReplaceInstallmentPlan swaps the whole installment schedule of an order.
func (h *OrderHandler) ReplaceInstallmentPlan(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.InstallmentPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	terms, err := h.usecase.ReplaceInstallmentPlan(c.Request.Context(), orderID, payload.ToEntities(orderID))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallmentTerms(terms))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidShippingFee), errors.Is(err, usecase.ErrInvalidInstallmentPlan):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
