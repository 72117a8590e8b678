package response

import (
	"errors"
	"testing"

	"premiumpay/internal/domain/entities"
	"premiumpay/internal/payment"
	"premiumpay/internal/usecase"
)

func TestFromCaptureResult(t *testing.T) {
	res := FromCaptureResult(usecase.CaptureResult{
		Status:         entities.PaymentStatusCompleted,
		Idempotent:     true,
		Attempts:       2,
		Plan:           entities.PlanAnnual,
		Amount:         89.99,
		ExpectedAmount: 89.99,
	})

	if !res.OK {
		t.Fatalf("expected ok=true")
	}
	if res.Status != "COMPLETED" || !res.Idempotent || res.Attempts != 2 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Plan != "annual" || res.Amount != 89.99 || res.ExpectedAmount != 89.99 {
		t.Fatalf("unexpected plan/amount fields: %+v", res)
	}
}

func TestFromPaymentError(t *testing.T) {
	perr := payment.Classify(errors.New("Insufficient funds in account"), 1)
	res := FromPaymentError(perr)

	if res.Error != "INSUFFICIENT_FUNDS" || res.CanRetry || res.Attempts != 1 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Message != perr.UserMessage || res.Message == "" {
		t.Fatalf("expected fixed user message, got %q", res.Message)
	}
}
