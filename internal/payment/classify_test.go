package payment

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"syscall"
	"testing"

	"github.com/plutov/paypal/v4"
)

func providerHTTPError(status int) error {
	return &paypal.ErrorResponse{
		Response: &http.Response{
			StatusCode: status,
			Request:    &http.Request{Method: http.MethodPost, URL: &url.URL{Path: "/v2/checkout/orders"}},
		},
		Name:    "PROVIDER_ERROR",
		Message: "provider rejected the call",
	}
}

func TestClassify_Taxonomy(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		wantCode  Code
		wantRetry bool
	}{
		{name: "connection refused", err: fmt.Errorf("dial tcp: %w", syscall.ECONNREFUSED), wantCode: CodeConnectionError, wantRetry: true},
		{name: "connection reset", err: fmt.Errorf("read tcp: %w", syscall.ECONNRESET), wantCode: CodeConnectionError, wantRetry: true},
		{name: "dns failure", err: &net.DNSError{Err: "no such host", Name: "api.paypal.com"}, wantCode: CodeConnectionError, wantRetry: true},
		{name: "network unreachable", err: fmt.Errorf("dial tcp: %w", syscall.ENETUNREACH), wantCode: CodeConnectionError, wantRetry: true},
		{name: "deadline exceeded", err: context.DeadlineExceeded, wantCode: CodeTimeoutError, wantRetry: true},
		{name: "etimedout", err: fmt.Errorf("dial tcp: %w", syscall.ETIMEDOUT), wantCode: CodeTimeoutError, wantRetry: true},
		{name: "timeout in message", err: errors.New("request timeout while waiting for response"), wantCode: CodeTimeoutError, wantRetry: true},
		{name: "provider 500", err: providerHTTPError(500), wantCode: CodePayPalServerError, wantRetry: true},
		{name: "provider 503", err: providerHTTPError(503), wantCode: CodePayPalServerError, wantRetry: true},
		{name: "provider 429", err: providerHTTPError(429), wantCode: CodeNetworkError, wantRetry: true},
		{name: "insufficient funds", err: errors.New("INSUFFICIENT_FUNDS: Insufficient funds in account"), wantCode: CodeInsufficientFunds, wantRetry: false},
		{name: "invalid card", err: errors.New("Invalid card number"), wantCode: CodeInvalidCard, wantRetry: false},
		{name: "expired card", err: errors.New("expired card on file"), wantCode: CodeInvalidCard, wantRetry: false},
		{name: "invalid account", err: errors.New("invalid account state"), wantCode: CodeInvalidAccount, wantRetry: false},
		{name: "declined", err: errors.New("payment declined by issuer"), wantCode: CodePaymentDeclined, wantRetry: false},
		{name: "cancelled", err: errors.New("order was cancelled by payer"), wantCode: CodePaymentDeclined, wantRetry: false},
		{name: "authorization failed", err: errors.New("authorization failure for capture"), wantCode: CodeAuthorizationFailed, wantRetry: false},
		{name: "provider 404", err: providerHTTPError(404), wantCode: CodeInvalidRequest, wantRetry: false},
		{name: "unknown", err: errors.New("something odd happened"), wantCode: CodeUnknownError, wantRetry: false},
		{name: "caller cancelled", err: context.Canceled, wantCode: CodeUnknownError, wantRetry: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.err, 2)
			if got.Code != tc.wantCode {
				t.Fatalf("expected code %s, got %s", tc.wantCode, got.Code)
			}
			if got.Retryable != tc.wantRetry {
				t.Fatalf("expected retryable=%t, got %t", tc.wantRetry, got.Retryable)
			}
			if got.Attempt != 2 {
				t.Fatalf("expected attempt 2, got %d", got.Attempt)
			}
			if !errors.Is(got, tc.err) {
				t.Fatalf("expected classified error to wrap the original")
			}
		})
	}
}

func TestClassify_ClassificationOrder(t *testing.T) {
	// A network-level failure wins over a message that would otherwise match
	// a terminal category.
	err := fmt.Errorf("payment declined: %w", syscall.ECONNREFUSED)
	if got := Classify(err, 1); got.Code != CodeConnectionError {
		t.Fatalf("expected CONNECTION_ERROR, got %s", got.Code)
	}

	// A 5xx with a declined-looking message is still a provider server error.
	perr := providerHTTPError(502)
	wrapped := fmt.Errorf("declined: %w", perr)
	if got := Classify(wrapped, 1); got.Code != CodePayPalServerError {
		t.Fatalf("expected PAYPAL_SERVER_ERROR, got %s", got.Code)
	}
}

func TestClassify_UserMessageNeverLeaksProviderText(t *testing.T) {
	leaky := regexp.MustCompile(`E[A-Z]+`)

	raw := fmt.Errorf("dial tcp 10.0.0.1:443: connect: %w", syscall.ECONNREFUSED)
	got := Classify(raw, 1)

	if got.UserMessage == "" {
		t.Fatalf("expected a user message")
	}
	if got.UserMessage == raw.Error() {
		t.Fatalf("user message must not echo the raw error")
	}
	if leaky.MatchString(got.UserMessage) {
		t.Fatalf("user message leaks an error token: %q", got.UserMessage)
	}

	for code, msg := range userMessages {
		if leaky.MatchString(msg) {
			t.Fatalf("message for %s leaks an error token: %q", code, msg)
		}
	}
}

func TestError_HTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want int
	}{
		{name: "insufficient funds is always 402", err: Classify(errors.New("insufficient funds"), 1), want: http.StatusPaymentRequired},
		{name: "timeout", err: Classify(context.DeadlineExceeded, 1), want: http.StatusRequestTimeout},
		{name: "connection", err: Classify(fmt.Errorf("%w", syscall.ECONNREFUSED), 1), want: http.StatusServiceUnavailable},
		{name: "server error", err: Classify(providerHTTPError(502), 1), want: http.StatusServiceUnavailable},
		{name: "authorization", err: Classify(errors.New("unauthorized"), 1), want: http.StatusUnauthorized},
		{name: "invalid request uses provider status", err: Classify(providerHTTPError(404), 1), want: http.StatusNotFound},
		{name: "unknown without provider status", err: Classify(errors.New("boom"), 1), want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.HTTPStatus(); got != tc.want {
				t.Fatalf("expected %d, got %d (code=%s)", tc.want, got, tc.err.Code)
			}
		})
	}
}
