package repository

import (
	"strings"
	"testing"
	"time"

	"premiumpay/internal/domain/entities"
)

func TestToPaymentOutcomeItem_KeyDerivation(t *testing.T) {
	cases := []struct {
		name    string
		outcome entities.PaymentOutcome
		wantPK  string
	}{
		{
			name:    "capture row keyed by capture id",
			outcome: entities.PaymentOutcome{CaptureID: "CAP-123", EventID: "WH-EVT-1", Source: entities.SourceCapture},
			wantPK:  "capture#CAP-123",
		},
		{
			name:    "webhook row keyed by event id even when it names a capture",
			outcome: entities.PaymentOutcome{CaptureID: "CAP-123", EventID: "WH-EVT-1", Source: entities.SourceWebhook},
			wantPK:  "event#WH-EVT-1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := toPaymentOutcomeItem(tc.outcome).PK; got != tc.wantPK {
				t.Fatalf("expected pk %q, got %q", tc.wantPK, got)
			}
		})
	}
}

func TestToPaymentOutcomeItem_FailedRowsGetUniqueKeys(t *testing.T) {
	failed := entities.PaymentOutcome{OrderID: "ORDER-1", Status: entities.PaymentStatusFailed, Source: entities.SourceCapture}

	a := toPaymentOutcomeItem(failed).PK
	b := toPaymentOutcomeItem(failed).PK
	if !strings.HasPrefix(a, "failed#") || !strings.HasPrefix(b, "failed#") {
		t.Fatalf("expected failed# keys, got %q and %q", a, b)
	}
	if a == b {
		t.Fatalf("each failed attempt must be its own audit row, got duplicate key %q", a)
	}
}

func TestPaymentOutcomeItem_RoundTrip(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 123456789, time.UTC)
	in := entities.PaymentOutcome{
		OrderID:    "ORDER-1",
		CaptureID:  "CAP-123",
		Status:     entities.PaymentStatusCompleted,
		Amount:     9.99,
		Currency:   "USD",
		PayerID:    "PAYER-1",
		PayerEmail: "payer@example.com",
		UserID:     "acc-1",
		Source:     entities.SourceCapture,
		Attempts:   3,
		RetryHistory: []entities.RetryAttemptRecord{
			{Timestamp: created.Add(-2 * time.Second), Attempt: 1, ErrorCode: "TIMEOUT_ERROR", ErrorMessage: "The payment service timed out. Please try again.", HTTPStatus: 408},
			{Timestamp: created.Add(-time.Second), Attempt: 2, ErrorCode: "TIMEOUT_ERROR", ErrorMessage: "The payment service timed out. Please try again.", HTTPStatus: 408},
		},
		CreatedAt:          created,
		ProviderPayloadRaw: []byte(`{"id":"CAP-123"}`),
	}

	got := fromPaymentOutcomeItem(toPaymentOutcomeItem(in))

	if got.OrderID != in.OrderID || got.CaptureID != in.CaptureID || got.Status != in.Status {
		t.Fatalf("identity fields lost: %+v", got)
	}
	if got.Amount != in.Amount || got.Currency != in.Currency || got.Attempts != in.Attempts {
		t.Fatalf("payment fields lost: %+v", got)
	}
	if !got.CreatedAt.Equal(in.CreatedAt) {
		t.Fatalf("created_at lost precision: %s vs %s", got.CreatedAt, in.CreatedAt)
	}
	if len(got.RetryHistory) != 2 || got.RetryHistory[1].Attempt != 2 || got.RetryHistory[1].ErrorCode != "TIMEOUT_ERROR" {
		t.Fatalf("retry history lost: %+v", got.RetryHistory)
	}
	if string(got.ProviderPayloadRaw) != string(in.ProviderPayloadRaw) {
		t.Fatalf("raw payload lost: %s", got.ProviderPayloadRaw)
	}
}
