package handlers

import (
	"errors"
	"log"
	"net/http"

	"premiumpay/internal/adapter/http/dto/request"
	"premiumpay/internal/adapter/http/dto/response"
	"premiumpay/internal/payment"
	"premiumpay/internal/usecase"
	"premiumpay/pkg"

	"github.com/gin-gonic/gin"
)

// Context keys populated by the identity middleware.
const (
	ContextAccountID    = "account_id"
	ContextAccountEmail = "account_email"
)

// CaptureHandler handles the client-triggered capture call and the per-order
// ledger audit read.

type CaptureHandler struct {
	usecase usecase.ICaptureUseCase
}

func NewCaptureHandler(uc usecase.ICaptureUseCase) *CaptureHandler {
	return &CaptureHandler{usecase: uc}
}

// CapturePayment captures a provider order and upgrades the caller's account
// on first-seen success.
//
// @Summary      Capture a payment order
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body body request.CaptureRequest true "order reference and optional plan"
// @Success      200 {object} response.CaptureResponse
// @Failure      400 {object} response.CaptureErrorResponse
// @Router       /payments/capture [post]
func (h *CaptureHandler) CapturePayment(c *gin.Context) {
	var req request.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid capture payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	caller := usecase.CallerIdentity{
		AccountID: c.GetString(ContextAccountID),
		Email:     c.GetString(ContextAccountEmail),
	}
	log.Printf("[payment][handler] capture start order_id=%s account_id=%q", req.ResolveOrderID(), caller.AccountID)

	res, err := h.usecase.CaptureAndUpgrade(c.Request.Context(), req.ResolveOrderID(), req.ResolvePlan(), caller)
	if err != nil {
		var perr *payment.Error
		if errors.As(err, &perr) {
			log.Printf("[payment][handler] capture failed order_id=%s code=%s attempts=%d", req.ResolveOrderID(), perr.Code, perr.Attempt)
			c.JSON(perr.HTTPStatus(), response.FromPaymentError(perr))
			return
		}
		log.Printf("[payment][handler] capture failed order_id=%s err=%v", req.ResolveOrderID(), err)
		appErr := mapCaptureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] capture success order_id=%s status=%s attempts=%d idempotent=%t",
		req.ResolveOrderID(), res.Status, res.Attempts, res.Idempotent)
	c.JSON(http.StatusOK, response.FromCaptureResult(res))
}

// GetLedgerByOrderID lists every ledger row recorded for an order, across both
// delivery channels.
//
// @Summary      List ledger rows for an order
// @Tags         payments
// @Produce      json
// @Param        order_id path string true "provider order reference"
// @Success      200 {array} response.LedgerEntryResponse
// @Router       /payments/{order_id} [get]
func (h *CaptureHandler) GetLedgerByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")

	outcomes, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] ledger list failed order_id=%s err=%v", orderID, err)
		appErr := mapCaptureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentOutcomes(outcomes))
}

func mapCaptureError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing order_id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPlan):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unknown plan", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment processing is temporarily unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
