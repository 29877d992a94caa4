package routes

import (
	"paygate/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	rg.POST("", paymentHandler.ProcessPayment)
	rg.GET("/:id", paymentHandler.GetPaymentByID)
}
