package response

import (
	"premiumpay/internal/payment"
	"premiumpay/internal/usecase"
)

// CaptureResponse is the success body of a capture call.
type CaptureResponse struct {
	OK             bool    `json:"ok"`
	Status         string  `json:"status"`
	Idempotent     bool    `json:"idempotent"`
	Attempts       int     `json:"attempts"`
	Plan           string  `json:"plan"`
	Amount         float64 `json:"amount"`
	ExpectedAmount float64 `json:"expected_amount"`
}

func FromCaptureResult(r usecase.CaptureResult) CaptureResponse {
	return CaptureResponse{
		OK:             true,
		Status:         string(r.Status),
		Idempotent:     r.Idempotent,
		Attempts:       r.Attempts,
		Plan:           string(r.Plan),
		Amount:         r.Amount,
		ExpectedAmount: r.ExpectedAmount,
	}
}

// CaptureErrorResponse is the failure body of a capture call. Message is always
// the classifier's fixed per-code sentence, never raw provider text.
type CaptureErrorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message"`
	CanRetry bool   `json:"can_retry"`
	Attempts int    `json:"attempts"`
}

func FromPaymentError(perr *payment.Error) CaptureErrorResponse {
	return CaptureErrorResponse{
		Error:    string(perr.Code),
		Message:  perr.UserMessage,
		CanRetry: perr.Retryable,
		Attempts: perr.Attempt,
	}
}
