package request

import "strings"

// CaptureRequest is the client-facing capture payload. Plan is optional; when
// absent the effective plan is inferred from the captured amount.
type CaptureRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Plan    string `json:"plan"`
}

func (r CaptureRequest) ResolveOrderID() string {
	return strings.TrimSpace(r.OrderID)
}

func (r CaptureRequest) ResolvePlan() string {
	return strings.ToLower(strings.TrimSpace(r.Plan))
}
