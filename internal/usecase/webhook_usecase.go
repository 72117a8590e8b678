package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"premiumpay/internal/domain/entities"
	"premiumpay/internal/usecase/interfaces"
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrInvalidEvent     = errors.New("invalid webhook event")
)

// IWebhookUseCase ingests provider-pushed payment events.

type IWebhookUseCase interface {
	Ingest(ctx context.Context, req *http.Request, body []byte) (idempotent bool, err error)
}

// WebhookUseCase verifies an event's signature and records it in the ledger,
// keyed by the event's own id. It deliberately never touches the account
// entitlement: the capture path, correlated with an authenticated session, is
// the only channel trusted to extend premium, so a payment reported on both
// channels extends it exactly once. Webhook rows exist as durable
// audit/reconciliation records.
type WebhookUseCase struct {
	ledger  interfaces.IPaymentLedgerRepository
	gateway interfaces.IPaymentGateway
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(ledger interfaces.IPaymentLedgerRepository, gateway interfaces.IPaymentGateway) *WebhookUseCase {
	return &WebhookUseCase{ledger: ledger, gateway: gateway}
}

// webhookEvent is the subset of the provider event body this service reads.
type webhookEvent struct {
	ID        string `json:"id"`
	EventType string `json:"event_type"`
	Resource  struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Amount struct {
			CurrencyCode string `json:"currency_code"`
			Value        string `json:"value"`
		} `json:"amount"`
		SupplementaryData struct {
			RelatedIDs struct {
				OrderID string `json:"order_id"`
			} `json:"related_ids"`
		} `json:"supplementary_data"`
	} `json:"resource"`
}

func (u *WebhookUseCase) Ingest(ctx context.Context, req *http.Request, body []byte) (bool, error) {
	if u.gateway == nil {
		log.Printf("[webhook][usecase] gateway not configured; rejecting event")
		return false, ErrGatewayNotConfigured
	}

	ok, err := u.gateway.VerifyWebhookSignature(ctx, req)
	if err != nil {
		log.Printf("[webhook][usecase] signature verification errored err=%v", err)
		return false, err
	}
	if !ok {
		log.Printf("[webhook][usecase] signature rejected")
		return false, ErrInvalidSignature
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil || strings.TrimSpace(event.ID) == "" {
		log.Printf("[webhook][usecase] unparseable event payload len=%d err=%v", len(body), err)
		return false, ErrInvalidEvent
	}

	amount, _ := strconv.ParseFloat(event.Resource.Amount.Value, 64)

	outcome := entities.PaymentOutcome{
		OrderID:            event.Resource.SupplementaryData.RelatedIDs.OrderID,
		EventID:            event.ID,
		Status:             entities.PaymentStatus(event.Resource.Status),
		Amount:             amount,
		Currency:           event.Resource.Amount.CurrencyCode,
		Source:             entities.SourceWebhook,
		Attempts:           1,
		CreatedAt:          time.Now().UTC(),
		ProviderPayloadRaw: body,
	}
	if strings.HasPrefix(event.EventType, "PAYMENT.CAPTURE.") {
		outcome.CaptureID = event.Resource.ID
	}

	idempotent, err := u.ledger.Record(ctx, outcome)
	if err != nil {
		log.Printf("[webhook][usecase] ledger record failed event_id=%s err=%v", event.ID, err)
		return false, err
	}

	log.Printf("[webhook][usecase] event recorded event_id=%s type=%s order_id=%s idempotent=%t",
		event.ID, event.EventType, outcome.OrderID, idempotent)
	return idempotent, nil
}
