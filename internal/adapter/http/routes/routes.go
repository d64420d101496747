package routes

import (
	"context"
	_ "ferragens_atlas/docs" // This will be auto-generated
	"ferragens_atlas/internal/adapter/http/handlers"
	repository2 "ferragens_atlas/internal/adapter/persistence/repository"
	"ferragens_atlas/internal/infrastructure/database"
	"ferragens_atlas/internal/infrastructure/notification"
	"ferragens_atlas/internal/infrastructure/stream"
	"ferragens_atlas/internal/usecase"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	installmentRepo := repository2.NewInstallmentDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, installmentRepo)
	statementUseCase := usecase.NewBillingStatementUseCase(orderRepo, customerRepo, installmentRepo, paymentRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, statementUseCase)
	reconciliationUseCase := usecase.NewReconciliationUseCase(paymentRepo)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	reconciliationHandler := handlers.NewReconciliationHandler(reconciliationUseCase)
	statementHandler := handlers.NewStatementHandler(statementUseCase)

	// Webhook notifications ride the payments table stream.
	dispatcher := notification.NewWebhookDispatcher(os.Getenv("NOTIFY_WEBHOOK_URL"))
	watcher := stream.NewPaymentWatcher(database.ConnectDynamoDBStreams(), dispatcher, os.Getenv("PAYMENTS_STREAM_ARN"))
	go watcher.Run(context.Background())

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, customerHandler, orderHandler, paymentHandler, reconciliationHandler, statementHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
