package handlers

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"

	"premiumpay/internal/adapter/http/dto/response"
	"premiumpay/internal/usecase"
	"premiumpay/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives provider-pushed payment events.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleProviderEvent verifies and records one webhook event. It never touches
// the account entitlement.
//
// @Summary      Ingest a provider webhook event
// @Tags         payments
// @Accept       json
// @Produce      json
// @Success      200 {object} response.WebhookResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /payments/webhook [post]
func (h *WebhookHandler) HandleProviderEvent(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	// Signature verification re-reads the request body.
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	idempotent, err := h.usecase.Ingest(c.Request.Context(), c.Request, body)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSignature):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_signature"})
		case errors.Is(err, usecase.ErrInvalidEvent):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_event"})
		case errors.Is(err, usecase.ErrGatewayNotConfigured):
			appErr := pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment processing is temporarily unavailable", http.StatusServiceUnavailable)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		default:
			log.Printf("[webhook][handler] ingest failed err=%v", err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	c.JSON(http.StatusOK, response.WebhookResponse{OK: true, Idempotent: idempotent})
}
