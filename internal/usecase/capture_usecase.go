package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"premiumpay/internal/domain/entities"
	"premiumpay/internal/payment"
	"premiumpay/internal/usecase/interfaces"
)

var (
	ErrMissingOrderID       = errors.New("missing order_id")
	ErrInvalidPlan          = errors.New("invalid plan")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// CallerIdentity is the authenticated caller, as supplied by the upstream
// gateway. Both fields may be empty for anonymous captures.
type CallerIdentity struct {
	AccountID string
	Email     string
}

// PlanPricing holds the configured plan prices used both for plan inference
// from a captured amount and for the expected_amount field in responses.
type PlanPricing struct {
	Monthly float64
	Annual  float64
}

// Infer applies the amount >= annual price => annual rule.
func (p PlanPricing) Infer(amount float64) entities.PremiumPlan {
	if amount >= p.Annual {
		return entities.PlanAnnual
	}
	return entities.PlanMonthly
}

func (p PlanPricing) PriceOf(plan entities.PremiumPlan) float64 {
	if plan == entities.PlanAnnual {
		return p.Annual
	}
	return p.Monthly
}

// CaptureResult is the success response of a capture call.
type CaptureResult struct {
	Status         entities.PaymentStatus
	Idempotent     bool
	Attempts       int
	Plan           entities.PremiumPlan
	Amount         float64
	ExpectedAmount float64
}

// ICaptureUseCase is the client-facing capture entry point plus the ledger
// audit read.

type ICaptureUseCase interface {
	CaptureAndUpgrade(ctx context.Context, orderID, plan string, caller CallerIdentity) (CaptureResult, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentOutcome, error)
}

// CaptureUseCase orchestrates provider capture with bounded retries, records
// the outcome exactly once, and triggers the premium upgrade on first-seen
// success.
type CaptureUseCase struct {
	ledger  interfaces.IPaymentLedgerRepository
	gateway interfaces.IPaymentGateway
	upgrade IPremiumUpgradeUseCase
	pricing PlanPricing
	retry   payment.Config
}

var _ ICaptureUseCase = (*CaptureUseCase)(nil)

func NewCaptureUseCase(
	ledger interfaces.IPaymentLedgerRepository,
	gateway interfaces.IPaymentGateway,
	upgrade IPremiumUpgradeUseCase,
	pricing PlanPricing,
	retry payment.Config,
) *CaptureUseCase {
	return &CaptureUseCase{ledger: ledger, gateway: gateway, upgrade: upgrade, pricing: pricing, retry: retry}
}

// CaptureAndUpgrade executes the provider capture for orderID. A *payment.Error
// returned here carries the classified code, the safe user message and the
// attempt count; any other error is an input or persistence problem.
func (u *CaptureUseCase) CaptureAndUpgrade(ctx context.Context, orderID, planArg string, caller CallerIdentity) (CaptureResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return CaptureResult{}, ErrMissingOrderID
	}

	explicitPlan := entities.PremiumPlan(strings.ToLower(strings.TrimSpace(planArg)))
	if explicitPlan != "" && !explicitPlan.Valid() {
		return CaptureResult{}, ErrInvalidPlan
	}

	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured order_id=%s", orderID)
		return CaptureResult{}, ErrGatewayNotConfigured
	}

	log.Printf("[payment][usecase] capture start order_id=%s account_id=%q", orderID, caller.AccountID)

	var history []entities.RetryAttemptRecord
	cfg := u.retry
	cfg.OnRetry = func(perr *payment.Error, attempt int) {
		history = append(history, entities.RetryAttemptRecord{
			Timestamp:    time.Now().UTC(),
			Attempt:      attempt,
			ErrorCode:    string(perr.Code),
			ErrorMessage: perr.UserMessage,
			HTTPStatus:   perr.StatusCode,
		})
		log.Printf("[payment][usecase] retrying capture order_id=%s attempt=%d code=%s", orderID, attempt, perr.Code)
	}

	capture, attempts, perr := payment.Execute(ctx, cfg, func(ctx context.Context) (interfaces.ProviderCapture, error) {
		return u.gateway.CaptureOrder(ctx, orderID)
	})
	if perr != nil {
		log.Printf("[payment][usecase] capture failed order_id=%s attempts=%d code=%s err=%v", orderID, attempts, perr.Code, perr)
		u.recordFailure(ctx, orderID, caller, attempts, history)
		return CaptureResult{Attempts: attempts}, perr
	}

	effectivePlan := explicitPlan
	if effectivePlan == "" {
		effectivePlan = u.pricing.Infer(capture.Amount)
	}

	outcome := entities.PaymentOutcome{
		OrderID:            orderID,
		CaptureID:          capture.CaptureID,
		Status:             entities.PaymentStatus(capture.Status),
		Amount:             capture.Amount,
		Currency:           capture.Currency,
		PayerID:            capture.PayerID,
		PayerEmail:         capture.PayerEmail,
		UserID:             caller.AccountID,
		Source:             entities.SourceCapture,
		Attempts:           attempts,
		RetryHistory:       history,
		CreatedAt:          time.Now().UTC(),
		ProviderPayloadRaw: capture.Raw,
	}

	// A lost record of captured funds is unacceptable; unlike the failure
	// path this persistence error propagates.
	idempotent, err := u.ledger.Record(ctx, outcome)
	if err != nil {
		log.Printf("[payment][usecase] ledger record failed order_id=%s capture_id=%s err=%v", orderID, capture.CaptureID, err)
		return CaptureResult{}, err
	}

	if outcome.Status.IsSuccess() && !idempotent {
		if caller.AccountID == "" && caller.Email == "" {
			log.Printf("[payment][usecase] captured without authenticated account order_id=%s capture_id=%s; no upgrade applied", orderID, capture.CaptureID)
		} else if err := u.upgrade.Upgrade(ctx, caller.AccountID, caller.Email, effectivePlan); err != nil {
			// The ledger row is already in; a retry of this request will see
			// idempotent=true and never reach the upgrade again.
			log.Printf("[payment][usecase] paid but not upgraded order_id=%s capture_id=%s account_id=%q err=%v",
				orderID, capture.CaptureID, caller.AccountID, err)
			return CaptureResult{}, err
		}
	}

	log.Printf("[payment][usecase] capture success order_id=%s capture_id=%s status=%s attempts=%d idempotent=%t plan=%s",
		orderID, capture.CaptureID, outcome.Status, attempts, idempotent, effectivePlan)

	return CaptureResult{
		Status:         outcome.Status,
		Idempotent:     idempotent,
		Attempts:       attempts,
		Plan:           effectivePlan,
		Amount:         capture.Amount,
		ExpectedAmount: u.pricing.PriceOf(effectivePlan),
	}, nil
}

// recordFailure persists the FAILED audit row best-effort: the user-visible
// response must not depend on an audit write.
func (u *CaptureUseCase) recordFailure(ctx context.Context, orderID string, caller CallerIdentity, attempts int, history []entities.RetryAttemptRecord) {
	outcome := entities.PaymentOutcome{
		OrderID:      orderID,
		Status:       entities.PaymentStatusFailed,
		UserID:       caller.AccountID,
		Source:       entities.SourceCapture,
		Attempts:     attempts,
		RetryHistory: history,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := u.ledger.Record(ctx, outcome); err != nil {
		log.Printf("[payment][usecase] failed-outcome record failed order_id=%s err=%v", orderID, err)
	}
}

func (u *CaptureUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentOutcome, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrMissingOrderID
	}
	return u.ledger.ListByOrderID(ctx, orderID)
}
