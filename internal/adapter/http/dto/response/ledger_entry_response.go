package response

import (
	"time"

	"premiumpay/internal/domain/entities"
)

// LedgerEntryResponse is one audit row of the payment ledger, as returned by
// the per-order listing.
type LedgerEntryResponse struct {
	OrderID      string                        `json:"order_id"`
	CaptureID    string                        `json:"capture_id,omitempty"`
	EventID      string                        `json:"event_id,omitempty"`
	Status       string                        `json:"status"`
	Amount       float64                       `json:"amount"`
	Currency     string                        `json:"currency,omitempty"`
	Source       string                        `json:"source"`
	Attempts     int                           `json:"attempts"`
	RetryHistory []entities.RetryAttemptRecord `json:"retry_history,omitempty"`
	CreatedAt    time.Time                     `json:"created_at"`
}

func FromPaymentOutcome(o entities.PaymentOutcome) LedgerEntryResponse {
	return LedgerEntryResponse{
		OrderID:      o.OrderID,
		CaptureID:    o.CaptureID,
		EventID:      o.EventID,
		Status:       string(o.Status),
		Amount:       o.Amount,
		Currency:     o.Currency,
		Source:       string(o.Source),
		Attempts:     o.Attempts,
		RetryHistory: o.RetryHistory,
		CreatedAt:    o.CreatedAt,
	}
}

func FromPaymentOutcomes(outcomes []entities.PaymentOutcome) []LedgerEntryResponse {
	items := make([]LedgerEntryResponse, 0, len(outcomes))
	for _, o := range outcomes {
		items = append(items, FromPaymentOutcome(o))
	}
	return items
}
