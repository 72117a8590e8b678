package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"premiumpay/internal/usecase/interfaces"

	"github.com/plutov/paypal/v4"
)

var ErrMissingPayPalCredentials = errors.New("missing PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET")

// PayPalGateway adapts the PayPal REST API to the IPaymentGateway port.
//
// The OAuth token is fetched lazily on first use, guarded by a single
// initialization check, instead of at construction: the service must come up
// even when the provider is briefly unreachable.
type PayPalGateway struct {
	client    *paypal.Client
	webhookID string

	authOnce sync.Once
	authErr  error
}

var _ interfaces.IPaymentGateway = (*PayPalGateway)(nil)

func NewPayPalGateway(clientID, secret string) (*PayPalGateway, error) {
	if clientID == "" || secret == "" {
		log.Printf("[payment][gateway] missing PayPal credentials")
		return nil, ErrMissingPayPalCredentials
	}

	apiBase := paypal.APIBaseSandBox
	if strings.EqualFold(strings.TrimSpace(os.Getenv("PAYPAL_ENV")), "live") {
		apiBase = paypal.APIBaseLive
	}

	client, err := paypal.NewClient(clientID, secret, apiBase)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk client err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] PayPal client initialized api_base=%s", apiBase)

	return &PayPalGateway{
		client:    client,
		webhookID: strings.TrimSpace(os.Getenv("PAYPAL_WEBHOOK_ID")),
	}, nil
}

func (g *PayPalGateway) ensureAuth(ctx context.Context) error {
	g.authOnce.Do(func() {
		if _, err := g.client.GetAccessToken(ctx); err != nil {
			log.Printf("[payment][gateway] access token fetch failed err=%v", err)
			g.authErr = err
		}
	})
	return g.authErr
}

// CaptureOrder finalizes the fund transfer for an approved order and
// normalizes the response. Failures are returned raw; classification is the
// caller's concern.
func (g *PayPalGateway) CaptureOrder(ctx context.Context, orderID string) (interfaces.ProviderCapture, error) {
	if err := g.ensureAuth(ctx); err != nil {
		return interfaces.ProviderCapture{}, err
	}

	log.Printf("[payment][gateway] capture start order_id=%s", orderID)
	resp, err := g.client.CaptureOrder(ctx, orderID, paypal.CaptureOrderRequest{})
	if err != nil {
		log.Printf("[payment][gateway] capture failed order_id=%s err=%v", orderID, err)
		return interfaces.ProviderCapture{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.ProviderCapture{}, err
	}

	capture := interfaces.ProviderCapture{
		OrderID: resp.ID,
		Status:  string(resp.Status),
		Raw:     raw,
	}
	if resp.Payer != nil {
		capture.PayerID = resp.Payer.PayerID
		capture.PayerEmail = resp.Payer.EmailAddress
	}
	for _, unit := range resp.PurchaseUnits {
		if unit.Payments == nil || len(unit.Payments.Captures) == 0 {
			continue
		}
		c := unit.Payments.Captures[0]
		capture.CaptureID = c.ID
		if c.Amount != nil {
			capture.Currency = c.Amount.Currency
			if v, perr := strconv.ParseFloat(c.Amount.Value, 64); perr == nil {
				capture.Amount = v
			}
		}
		break
	}

	log.Printf("[payment][gateway] capture success order_id=%s capture_id=%s status=%s", orderID, capture.CaptureID, capture.Status)
	return capture, nil
}

// VerifyWebhookSignature asks PayPal whether the event was really signed for
// the configured webhook id.
func (g *PayPalGateway) VerifyWebhookSignature(ctx context.Context, req *http.Request) (bool, error) {
	if g.webhookID == "" {
		log.Printf("[payment][gateway] PAYPAL_WEBHOOK_ID not configured; rejecting event")
		return false, nil
	}
	if err := g.ensureAuth(ctx); err != nil {
		return false, err
	}

	resp, err := g.client.VerifyWebhookSignature(ctx, req, g.webhookID)
	if err != nil {
		return false, err
	}
	return resp.VerificationStatus == "SUCCESS", nil
}
