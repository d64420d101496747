package handlers

import (
	"errors"
	request "ferragens_atlas/internal/adapter/http/dto/request"
	response "ferragens_atlas/internal/adapter/http/dto/response"
	"ferragens_atlas/internal/usecase"
	"ferragens_atlas/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)
)

// CustomerHandler handles HTTP requests for customer profiles.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// UpsertCustomer creates or replaces a customer profile.
func (h *CustomerHandler) UpsertCustomer(c *gin.Context) {
	var payload request.CustomerUpsertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.UpsertCustomer(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) GetCustomerByID(c *gin.Context) {
	customerID := c.Param("customer_id")

	customer, err := h.usecase.GetByID(c.Request.Context(), customerID)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidCustomerName), errors.Is(err, usecase.ErrInvalidPaymentMode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
