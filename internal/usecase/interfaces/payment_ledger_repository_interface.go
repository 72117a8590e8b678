package interfaces

import (
	"context"

	"premiumpay/internal/domain/entities"
)

// IPaymentLedgerRepository abstracts the append-only payment ledger.
//
// Record attempts a single insert. When the store reports a unique-key
// violation for the outcome's idempotency key it returns idempotent=true
// without touching the existing row; any other persistence error is a hard
// failure. There is no update path: outcomes are immutable once written.

type IPaymentLedgerRepository interface {
	Record(ctx context.Context, o entities.PaymentOutcome) (idempotent bool, err error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentOutcome, error)
}
