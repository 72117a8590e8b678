package response

type WebhookResponse struct {
	OK         bool `json:"ok"`
	Idempotent bool `json:"idempotent"`
}
