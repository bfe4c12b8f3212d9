package models

import (
	"time"
)

type UserSettings struct {
	UserID              string    `db:"user_id"`
	Currency            string    `db:"currency"`
	NotifyByEmail       bool      `db:"notify_by_email"`
	NotifyPaymentsDue   bool      `db:"notify_payments_due"`
	APIKey              string    `db:"api_key"`
	WebhookURL          string    `db:"webhook_url"`
	StatementDayOfMonth int       `db:"statement_day_of_month"`
	UpdatedAt           time.Time `db:"updated_at"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}
