package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"premiumpay/internal/domain/entities"
	"premiumpay/internal/usecase/interfaces"
)

// IPremiumUpgradeUseCase extends an account's paid-tier entitlement after a
// confirmed, non-duplicate payment.

type IPremiumUpgradeUseCase interface {
	Upgrade(ctx context.Context, accountID, email string, plan entities.PremiumPlan) error
}

// PremiumUpgradeUseCase is the entitlement state machine: two durable states
// per account (standard, premium-until-T) and one transition (extend).
type PremiumUpgradeUseCase struct {
	accounts interfaces.IAccountRepository
	now      func() time.Time
}

var _ IPremiumUpgradeUseCase = (*PremiumUpgradeUseCase)(nil)

func NewPremiumUpgradeUseCase(accounts interfaces.IAccountRepository) *PremiumUpgradeUseCase {
	return &PremiumUpgradeUseCase{accounts: accounts, now: time.Now}
}

// Upgrade computes the new expiration as max(now, current expiration) plus the
// plan's day count, so renewing before expiry extends the running period and
// renewing after expiry starts fresh from now. A missing account is logged and
// skipped: an absent account must never fail the payment flow.
func (u *PremiumUpgradeUseCase) Upgrade(ctx context.Context, accountID, email string, plan entities.PremiumPlan) error {
	acc, err := u.lookup(ctx, accountID, email)
	if err != nil {
		return err
	}
	if acc.ID == "" {
		log.Printf("[premium][usecase] account not found account_id=%q email=%q; skipping upgrade", accountID, email)
		return nil
	}

	base := u.now().UTC()
	if acc.PremiumExpiresAt != nil && acc.PremiumExpiresAt.After(base) {
		base = acc.PremiumExpiresAt.UTC()
	}
	expiresAt := base.AddDate(0, 0, plan.Days())

	if err := u.accounts.SetPremiumUntil(ctx, acc.ID, expiresAt); err != nil {
		if errors.Is(err, entities.ErrAccountNotFound) {
			log.Printf("[premium][usecase] account vanished before update account_id=%s; skipping upgrade", acc.ID)
			return nil
		}
		log.Printf("[premium][usecase] premium update failed account_id=%s err=%v", acc.ID, err)
		return err
	}

	log.Printf("[premium][usecase] premium extended account_id=%s plan=%s expires_at=%s", acc.ID, plan, expiresAt.Format(time.RFC3339))
	return nil
}

func (u *PremiumUpgradeUseCase) lookup(ctx context.Context, accountID, email string) (entities.Account, error) {
	if accountID != "" {
		acc, err := u.accounts.GetByID(ctx, accountID)
		if err != nil {
			return entities.Account{}, err
		}
		if acc.ID != "" {
			return acc, nil
		}
	}
	if email != "" {
		return u.accounts.GetByEmail(ctx, email)
	}
	return entities.Account{}, nil
}
