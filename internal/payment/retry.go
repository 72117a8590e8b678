package payment

import (
	"context"
	"log"
	"time"
)

// Config bounds one capture request's retry budget. MaxRetries is the total
// number of attempts; 1 disables retrying (the single attempt is still
// timeout-guarded).
type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
	Timeout    time.Duration

	// OnRetry runs before each backoff sleep. Best-effort: panics are
	// recovered and logged, never propagated.
	OnRetry func(err *Error, attempt int)
}

// Execute runs op with bounded retries, classifying each failure before
// deciding whether another attempt is allowed. Non-retryable failures return
// immediately, without sleeping. Returns the attempt count alongside the
// result; err is nil exactly when an attempt succeeded.
func Execute[T any](ctx context.Context, cfg Config, op func(context.Context) (T, error)) (data T, attempts int, err *Error) {
	var zero T
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}

	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		out, opErr := runAttempt(ctx, cfg.Timeout, op)
		if opErr == nil {
			return out, attempt, nil
		}

		perr := Classify(opErr, attempt)
		if !perr.Retryable || attempt == cfg.MaxRetries {
			return zero, attempt, perr
		}

		fireOnRetry(cfg.OnRetry, perr, attempt)

		select {
		case <-time.After(Backoff(cfg.BaseDelay, attempt)):
		case <-ctx.Done():
			return zero, attempt, Classify(ctx.Err(), attempt)
		}
	}

	// Unreachable: the loop always returns on the last attempt.
	return zero, cfg.MaxRetries, Classify(context.Canceled, cfg.MaxRetries)
}

// runAttempt races op against the per-attempt timeout. When the timer fires
// first the attempt fails with context.DeadlineExceeded (classified as a
// retryable timeout); the in-flight call is not forcibly aborted beyond the
// context cancellation, a later attempt races a fresh timer.
func runAttempt[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (T, error)) (T, error) {
	type outcome struct {
		data T
		err  error
	}

	attemptCtx := ctx
	cancel := func() {}
	if timeout > 0 {
		attemptCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	ch := make(chan outcome, 1)
	go func() {
		d, e := op(attemptCtx)
		ch <- outcome{data: d, err: e}
	}()

	select {
	case out := <-ch:
		return out.data, out.err
	case <-attemptCtx.Done():
		var zero T
		return zero, attemptCtx.Err()
	}
}

// Backoff returns the sleep before attempt+1: BaseDelay * 3^(attempt-1).
func Backoff(base time.Duration, attempt int) time.Duration {
	d := base
	for i := 1; i < attempt; i++ {
		d *= 3
	}
	return d
}

func fireOnRetry(hook func(*Error, int), perr *Error, attempt int) {
	if hook == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[payment][retry] onRetry hook panicked attempt=%d: %v", attempt, r)
		}
	}()
	hook(perr, attempt)
}
