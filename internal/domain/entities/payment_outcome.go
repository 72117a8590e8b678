package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the provider-reported outcome of a capture or webhook event.
//
// COMPLETED/APPROVED/FAILED are the statuses this service acts on; any other
// provider status is stored verbatim for audit.

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusApproved  PaymentStatus = "APPROVED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// IsSuccess reports whether the status confirms captured funds.
func (s PaymentStatus) IsSuccess() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusApproved
}

// PaymentSource tags which delivery channel produced a ledger row.
type PaymentSource string

const (
	SourceCapture PaymentSource = "capture"
	SourceWebhook PaymentSource = "webhook"
)

// RetryAttemptRecord is the audit entry for one failed attempt that triggered a
// retry. Successful attempts contribute no record; the total attempt count is
// tracked separately on the outcome.
type RetryAttemptRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	Attempt      int       `json:"attempt"`
	ErrorCode    string    `json:"error_code"`
	ErrorMessage string    `json:"error_message"`
	HTTPStatus   int       `json:"http_status,omitempty"`
}

// PaymentOutcome is one immutable ledger row: a capture attempt's final result
// or a webhook event. Rows are never rewritten; duplicate inserts are detected
// by the ledger's unique-key constraint and discarded.
//
// Idempotency keys:
//   - capture rows:  CaptureID
//   - webhook rows:  EventID
//   - failed rows:   none (each failed attempt is its own audit record)
type PaymentOutcome struct {
	OrderID      string               `json:"order_id"`
	CaptureID    string               `json:"capture_id,omitempty"`
	EventID      string               `json:"event_id,omitempty"`
	Status       PaymentStatus        `json:"status"`
	Amount       float64              `json:"amount"`
	Currency     string               `json:"currency"`
	PayerID      string               `json:"payer_id,omitempty"`
	PayerEmail   string               `json:"payer_email,omitempty"`
	UserID       string               `json:"user_id,omitempty"`
	Source       PaymentSource        `json:"source"`
	Attempts     int                  `json:"attempts"`
	RetryHistory []RetryAttemptRecord `json:"retry_history,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`

	// ProviderPayloadRaw keeps the original provider body (JSON) for
	// traceability/audit.
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}

// IdempotencyKey returns the unique storage key for the outcome, or "" when the
// row has none (failed capture attempts).
func (o PaymentOutcome) IdempotencyKey() string {
	switch {
	case o.Source == SourceCapture && o.CaptureID != "":
		return "capture#" + o.CaptureID
	case o.Source == SourceWebhook && o.EventID != "":
		return "event#" + o.EventID
	}
	return ""
}
