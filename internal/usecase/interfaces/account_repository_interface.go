package interfaces

import (
	"context"
	"time"

	"premiumpay/internal/domain/entities"
)

// IAccountRepository abstracts the external account store.
//
// Reads return a zero-value Account when nothing matches. SetPremiumUntil
// writes the premium flag and the new expiration in one atomic update and
// returns entities.ErrAccountNotFound when the account no longer exists.

type IAccountRepository interface {
	GetByID(ctx context.Context, id string) (entities.Account, error)
	GetByEmail(ctx context.Context, email string) (entities.Account, error)
	SetPremiumUntil(ctx context.Context, id string, expiresAt time.Time) error
}
