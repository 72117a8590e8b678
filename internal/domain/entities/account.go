package entities

import (
	"errors"
	"time"
)

var ErrAccountNotFound = errors.New("account not found")

// PremiumPlan is the paid tier a confirmed payment buys.

type PremiumPlan string

const (
	PlanMonthly PremiumPlan = "monthly"
	PlanAnnual  PremiumPlan = "annual"
)

// Days returns the fixed extension each plan grants.
func (p PremiumPlan) Days() int {
	if p == PlanAnnual {
		return 365
	}
	return 30
}

func (p PremiumPlan) Valid() bool {
	return p == PlanMonthly || p == PlanAnnual
}

// Account is the subset of the user entity this subsystem touches. The account
// itself is owned by the external user service; only the premium tier flag and
// expiration are mutated here, together in one atomic update.
type Account struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	Premium          bool       `json:"premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at,omitempty"`
}
