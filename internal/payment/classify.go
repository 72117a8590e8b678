package payment

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/plutov/paypal/v4"
)

// Code is the closed taxonomy of capture failures.

type Code string

const (
	CodeConnectionError     Code = "CONNECTION_ERROR"
	CodeTimeoutError        Code = "TIMEOUT_ERROR"
	CodePayPalServerError   Code = "PAYPAL_SERVER_ERROR"
	CodeNetworkError        Code = "NETWORK_ERROR"
	CodeInsufficientFunds   Code = "INSUFFICIENT_FUNDS"
	CodeInvalidCard         Code = "INVALID_CARD"
	CodeInvalidAccount      Code = "INVALID_ACCOUNT"
	CodePaymentDeclined     Code = "PAYMENT_DECLINED"
	CodeAuthorizationFailed Code = "AUTHORIZATION_FAILED"
	CodeInvalidRequest      Code = "INVALID_REQUEST"
	CodeUnknownError        Code = "UNKNOWN_ERROR"
)

// userMessages holds the only text that ever reaches a caller. Raw provider
// errors stay on Error.Err for logs.
var userMessages = map[Code]string{
	CodeConnectionError:     "We could not reach the payment provider. Please try again in a moment.",
	CodeTimeoutError:        "The payment provider took too long to respond. Please try again.",
	CodePayPalServerError:   "The payment provider is having trouble right now. Please try again shortly.",
	CodeNetworkError:        "Too many payment requests right now. Please wait a moment and try again.",
	CodeInsufficientFunds:   "The payment was declined due to insufficient funds.",
	CodeInvalidCard:         "The card used for this payment is invalid or expired.",
	CodeInvalidAccount:      "The payment account is invalid or unavailable.",
	CodePaymentDeclined:     "The payment was declined or cancelled.",
	CodeAuthorizationFailed: "The payment could not be authorized.",
	CodeInvalidRequest:      "The payment request was invalid.",
	CodeUnknownError:        "Something went wrong while processing the payment. Please contact support if it persists.",
}

var httpStatuses = map[Code]int{
	CodeConnectionError:     http.StatusServiceUnavailable,
	CodeTimeoutError:        http.StatusRequestTimeout,
	CodePayPalServerError:   http.StatusServiceUnavailable,
	CodeNetworkError:        http.StatusServiceUnavailable,
	CodeInsufficientFunds:   http.StatusPaymentRequired,
	CodeInvalidCard:         http.StatusBadRequest,
	CodeInvalidAccount:      http.StatusBadRequest,
	CodePaymentDeclined:     http.StatusPaymentRequired,
	CodeAuthorizationFailed: http.StatusUnauthorized,
	CodeInvalidRequest:      http.StatusBadRequest,
}

// Error is the classified form of a provider failure. Callers branch on the
// Retryable field, never on the identity of the wrapped error.
type Error struct {
	Code        Code
	StatusCode  int // provider HTTP status, 0 when none
	Retryable   bool
	Attempt     int // 1-based attempt at which the failure occurred
	UserMessage string

	// Err keeps the raw provider error for logging. It must never be
	// surfaced in a response body.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (attempt %d): %v", e.Code, e.Attempt, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the code to the response status. For INVALID_REQUEST and
// UNKNOWN_ERROR the provider's own status, when present, wins; codes with a
// fixed mapping keep it so that e.g. insufficient funds is always 402.
func (e *Error) HTTPStatus() int {
	if s, ok := httpStatuses[e.Code]; ok {
		if (e.Code == CodeInvalidRequest || e.Code == CodeUnknownError) && e.StatusCode != 0 {
			return e.StatusCode
		}
		return s
	}
	if e.StatusCode != 0 {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

// Classify maps a raw provider failure to the closed taxonomy. First match
// wins; anything unrecognized is UNKNOWN_ERROR and never retried.
func Classify(err error, attempt int) *Error {
	status := statusCodeOf(err)
	msg := strings.ToLower(err.Error())

	var code Code
	switch {
	// Caller-side cancellation is not a provider decline; fail closed.
	case errors.Is(err, context.Canceled):
		code = CodeUnknownError
	case isConnectionError(err):
		code = CodeConnectionError
	case isTimeout(err, msg):
		code = CodeTimeoutError
	case status >= 500 && status < 600:
		code = CodePayPalServerError
	case status == http.StatusTooManyRequests:
		code = CodeNetworkError
	case strings.Contains(msg, "insufficient fund"):
		code = CodeInsufficientFunds
	case strings.Contains(msg, "invalid card"), strings.Contains(msg, "expired card"), strings.Contains(msg, "card expired"):
		code = CodeInvalidCard
	case strings.Contains(msg, "invalid account"), strings.Contains(msg, "account closed"):
		code = CodeInvalidAccount
	case strings.Contains(msg, "declined"), strings.Contains(msg, "cancelled"), strings.Contains(msg, "canceled"):
		code = CodePaymentDeclined
	case strings.Contains(msg, "authorization"), strings.Contains(msg, "unauthorized"), strings.Contains(msg, "not authorized"):
		code = CodeAuthorizationFailed
	case status >= 400 && status < 500:
		code = CodeInvalidRequest
	default:
		code = CodeUnknownError
	}

	return &Error{
		Code:        code,
		StatusCode:  status,
		Retryable:   isRetryable(code),
		Attempt:     attempt,
		UserMessage: userMessages[code],
		Err:         err,
	}
}

func isRetryable(code Code) bool {
	switch code {
	case CodeConnectionError, CodeTimeoutError, CodePayPalServerError, CodeNetworkError:
		return true
	}
	return false
}

func isConnectionError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isTimeout(err error, msg string) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, syscall.ETIMEDOUT) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return strings.Contains(msg, "timeout")
}

func statusCodeOf(err error) int {
	var perr *paypal.ErrorResponse
	if errors.As(err, &perr) && perr.Response != nil {
		return perr.Response.StatusCode
	}
	return 0
}
