package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "paygate/docs" // This will be auto-generated
	"paygate/internal/adapter/http/handlers"
	"paygate/internal/adapter/persistence/repository"
	"paygate/internal/domain/rules"
	"paygate/internal/infrastructure/bank"
	"paygate/internal/infrastructure/database"
	"paygate/internal/usecase"
	"paygate/internal/usecase/interfaces"

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
	currencies := rules.SupportedCurrenciesFromEnv()
	log.Printf("[payment][routes] supported currencies %v", currencies.Allowed())

	paymentRepo := newPaymentRepository()
	bankGateway := bank.NewClient(os.Getenv("BANK_BASE_URL"), bankTimeoutFromEnv())
	validator := usecase.NewPaymentValidator(currencies, nil)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, bankGateway, validator)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, currencies, nil)

	addPingRoutes(router.Group("/"))
	addPaymentRoutes(router.Group(PathPayments), paymentHandler)
}

// newPaymentRepository selects the payment store. The volatile in-memory map
// is the default; STORAGE_DRIVER=dynamodb switches to DynamoDB.
func newPaymentRepository() interfaces.IPaymentRepository {
	if os.Getenv("STORAGE_DRIVER") == "dynamodb" {
		log.Printf("[payment][routes] using dynamodb payment store")
		return repository.NewPaymentDynamoRepository(database.ConnectDynamoDB())
	}
	log.Printf("[payment][routes] using in-memory payment store")
	return repository.NewPaymentMemoryRepository()
}

func bankTimeoutFromEnv() time.Duration {
	raw := os.Getenv("BANK_TIMEOUT_MS")
	if raw == "" {
		return 0
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		log.Printf("[payment][routes] ignoring invalid BANK_TIMEOUT_MS=%q", raw)
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
