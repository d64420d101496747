package routes

import (
	"ferragens_atlas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathOrders    = "/orders"
	PathPayments  = "/payments"
	PathReports   = "/reports"
)

func addBillingRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	orderHandler *handlers.OrderHandler,
	paymentHandler *handlers.PaymentHandler,
	reconciliationHandler *handlers.ReconciliationHandler,
	statementHandler *handlers.StatementHandler,
) {
	customers := rg.Group(PathCustomers)
	{
		// Perfis sincronizados pelo sistema comercial.
		customers.POST("", customerHandler.UpsertCustomer)
		customers.GET("/:customer_id", customerHandler.GetCustomerByID)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.UpsertOrder)
		orders.GET("/:order_id", orderHandler.GetOrderByID)
		orders.PATCH("/:order_id/shipping-fee", orderHandler.SetShippingFee)
		orders.PUT("/:order_id/installments", orderHandler.ReplaceInstallmentPlan)
		orders.GET("/:order_id/statement", statementHandler.GetStatement)
		orders.POST("/:order_id/payments", paymentHandler.SubmitPayment)
		orders.GET("/:order_id/payments", paymentHandler.ListPaymentsByOrderID)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetPaymentByID)
		payments.POST("/:payment_id/confirm", reconciliationHandler.ConfirmPayment)
		payments.POST("/:payment_id/reject", reconciliationHandler.RejectPayment)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/outstanding", statementHandler.ListOutstanding)
	}
}
