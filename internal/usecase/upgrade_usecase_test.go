package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"premiumpay/internal/domain/entities"
	mock_interfaces "premiumpay/internal/usecase/interfaces/mocks"
)

func fixedUpgradeUseCase(ctrl *gomock.Controller, now time.Time) (*PremiumUpgradeUseCase, *mock_interfaces.MockIAccountRepository) {
	accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
	uc := NewPremiumUpgradeUseCase(accounts)
	uc.now = func() time.Time { return now }
	return uc, accounts
}

func TestUpgrade_FirstUpgradeStartsFromNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc, accounts := fixedUpgradeUseCase(ctrl, now)

	accounts.EXPECT().GetByID(gomock.Any(), "acc-1").
		Return(entities.Account{ID: "acc-1", Email: "user@example.com"}, nil)
	accounts.EXPECT().SetPremiumUntil(gomock.Any(), "acc-1", now.AddDate(0, 0, 30)).Return(nil)

	if err := uc.Upgrade(context.Background(), "acc-1", "", entities.PlanMonthly); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpgrade_RenewalBeforeExpiryExtendsRunningPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc, accounts := fixedUpgradeUseCase(ctrl, now)

	current := now.AddDate(0, 0, 10)
	accounts.EXPECT().GetByID(gomock.Any(), "acc-1").
		Return(entities.Account{ID: "acc-1", Premium: true, PremiumExpiresAt: &current}, nil)
	accounts.EXPECT().SetPremiumUntil(gomock.Any(), "acc-1", current.AddDate(0, 0, 30)).Return(nil)

	if err := uc.Upgrade(context.Background(), "acc-1", "", entities.PlanMonthly); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpgrade_LapsedExpiryStartsFreshFromNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc, accounts := fixedUpgradeUseCase(ctrl, now)

	lapsed := now.AddDate(0, 0, -5)
	accounts.EXPECT().GetByID(gomock.Any(), "acc-1").
		Return(entities.Account{ID: "acc-1", PremiumExpiresAt: &lapsed}, nil)
	accounts.EXPECT().SetPremiumUntil(gomock.Any(), "acc-1", now.AddDate(0, 0, 30)).Return(nil)

	if err := uc.Upgrade(context.Background(), "acc-1", "", entities.PlanMonthly); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpgrade_AnnualPlanAdds365Days(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc, accounts := fixedUpgradeUseCase(ctrl, now)

	accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(entities.Account{ID: "acc-1"}, nil)
	accounts.EXPECT().SetPremiumUntil(gomock.Any(), "acc-1", now.AddDate(0, 0, 365)).Return(nil)

	if err := uc.Upgrade(context.Background(), "acc-1", "", entities.PlanAnnual); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpgrade_FallsBackToEmailLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc, accounts := fixedUpgradeUseCase(ctrl, now)

	accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(entities.Account{}, nil)
	accounts.EXPECT().GetByEmail(gomock.Any(), "user@example.com").
		Return(entities.Account{ID: "acc-2", Email: "user@example.com"}, nil)
	accounts.EXPECT().SetPremiumUntil(gomock.Any(), "acc-2", now.AddDate(0, 0, 30)).Return(nil)

	if err := uc.Upgrade(context.Background(), "acc-1", "user@example.com", entities.PlanMonthly); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpgrade_MissingAccountIsSkippedNotFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, accounts := fixedUpgradeUseCase(ctrl, time.Now())

	accounts.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Account{}, nil)
	// No SetPremiumUntil expectation: nothing to update.

	if err := uc.Upgrade(context.Background(), "ghost", "", entities.PlanMonthly); err != nil {
		t.Fatalf("a missing account must not fail the payment flow, got %v", err)
	}
}

func TestUpgrade_AccountVanishedDuringUpdateIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, accounts := fixedUpgradeUseCase(ctrl, time.Now())

	accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(entities.Account{ID: "acc-1"}, nil)
	accounts.EXPECT().SetPremiumUntil(gomock.Any(), "acc-1", gomock.Any()).
		Return(entities.ErrAccountNotFound)

	if err := uc.Upgrade(context.Background(), "acc-1", "", entities.PlanMonthly); err != nil {
		t.Fatalf("vanished account must be skipped, got %v", err)
	}
}

func TestUpgrade_RepositoryErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, accounts := fixedUpgradeUseCase(ctrl, time.Now())

	dbErr := errors.New("dynamo unavailable")
	accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(entities.Account{ID: "acc-1"}, nil)
	accounts.EXPECT().SetPremiumUntil(gomock.Any(), "acc-1", gomock.Any()).Return(dbErr)

	if err := uc.Upgrade(context.Background(), "acc-1", "", entities.PlanMonthly); !errors.Is(err, dbErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
