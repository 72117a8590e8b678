package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
)

// ProviderCapture is the normalized result of a successful provider capture
// call. Raw keeps the full provider response for the ledger.
type ProviderCapture struct {
	OrderID    string
	CaptureID  string
	Status     string
	PayerID    string
	PayerEmail string
	Currency   string
	Amount     float64
	Raw        json.RawMessage
}

// IPaymentGateway abstracts the payment provider (PayPal).
//
// CaptureOrder finalizes fund transfer for a previously approved order.
// VerifyWebhookSignature checks an incoming event's authenticity against the
// configured webhook identity; failures surface as the provider's raw errors.
type IPaymentGateway interface {
	CaptureOrder(ctx context.Context, orderID string) (ProviderCapture, error)
	VerifyWebhookSignature(ctx context.Context, req *http.Request) (bool, error)
}
