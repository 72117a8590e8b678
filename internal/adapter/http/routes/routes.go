package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "premiumpay/docs" // swag-generated
	"premiumpay/internal/adapter/http/handlers"
	"premiumpay/internal/adapter/persistence/repository"
	"premiumpay/internal/infrastructure/database"
	"premiumpay/internal/infrastructure/payments"
	"premiumpay/internal/payment"
	"premiumpay/internal/usecase"
	"premiumpay/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
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

	ledgerRepo := repository.NewPaymentOutcomeDynamoRepository(ddb)
	accountRepo := repository.NewAccountDynamoRepository(ddb)

	var gateway interfaces.IPaymentGateway
	ppGateway, err := payments.NewPayPalGateway(os.Getenv("PAYPAL_CLIENT_ID"), os.Getenv("PAYPAL_CLIENT_SECRET"))
	if err != nil {
		log.Printf("PayPal gateway not configured: %v", err)
	} else {
		gateway = ppGateway
	}

	upgradeUseCase := usecase.NewPremiumUpgradeUseCase(accountRepo)
	captureUseCase := usecase.NewCaptureUseCase(ledgerRepo, gateway, upgradeUseCase, planPricingFromEnv(), payment.Config{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		Timeout:    30 * time.Second,
	})
	webhookUseCase := usecase.NewWebhookUseCase(ledgerRepo, gateway)

	captureHandler := handlers.NewCaptureHandler(captureUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, captureHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.Default())
}

func planPricingFromEnv() usecase.PlanPricing {
	return usecase.PlanPricing{
		Monthly: getenvFloat("PREMIUM_MONTHLY_PRICE", 9.99),
		Annual:  getenvFloat("PREMIUM_ANNUAL_PRICE", 89.99),
	}
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q; using default %.2f", key, v, def)
		return def
	}
	return f
}
