package schemas

type UpdateSettingsRequest struct {
	Currency            *string `json:"currency,omitempty"`
	NotifyByEmail       *bool   `json:"notifyByEmail,omitempty"`
	NotifyPaymentsDue   *bool   `json:"notifyPaymentsDue,omitempty"`
	APIKey              *string `json:"apiKey,omitempty"`
	WebhookURL          *string `json:"webhookUrl,omitempty"`
	StatementDayOfMonth *int    `json:"statementDayOfMonth,omitempty"`
}
