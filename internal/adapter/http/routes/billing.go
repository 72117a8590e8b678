package routes

import (
	"premiumpay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, captureHandler *handlers.CaptureHandler, webhookHandler *handlers.WebhookHandler) {
	payments := rg.Group(PathPayments)
	{
		// Client-triggered capture carries the authenticated identity.
		payments.POST("/capture", CallerIdentity(), captureHandler.CapturePayment)
		payments.GET("/:order_id", captureHandler.GetLedgerByOrderID)

		// Provider-pushed events are unauthenticated but signature-bearing.
		payments.POST("/webhook", webhookHandler.HandleProviderEvent)
	}
}
