package repositories

import (
	"context"
	"errors"
	"time"

	"agency/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository interface {
	// Get returns the stored settings for a user, or defaults when none exist.
	Get(ctx context.Context, userID string) (*models.UserSettings, error)
	Upsert(ctx context.Context, settings *models.UserSettings) error
}

type settingsRepo struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) SettingsRepository {
	return &settingsRepo{db: db}
}

func defaultSettings(userID string) *models.UserSettings {
	return &models.UserSettings{
		UserID:              userID,
		Currency:            "PKR",
		NotifyByEmail:       true,
		NotifyPaymentsDue:   true,
		StatementDayOfMonth: 1,
	}
}

func (r *settingsRepo) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	var s models.UserSettings
	err := r.db.QueryRow(ctx, `
		SELECT user_id, currency, notify_by_email, notify_payments_due, api_key, webhook_url, statement_day_of_month, updated_at
		FROM user_settings
		WHERE user_id = $1`, userID).Scan(
		&s.UserID, &s.Currency, &s.NotifyByEmail, &s.NotifyPaymentsDue, &s.APIKey, &s.WebhookURL, &s.StatementDayOfMonth, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Missing settings are not an error; every user starts from defaults.
			return defaultSettings(userID), nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) Upsert(ctx context.Context, settings *models.UserSettings) error {
	settings.UpdatedAt = time.Now().UTC()
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_settings (user_id, currency, notify_by_email, notify_payments_due, api_key, webhook_url, statement_day_of_month, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			currency = EXCLUDED.currency,
			notify_by_email = EXCLUDED.notify_by_email,
			notify_payments_due = EXCLUDED.notify_payments_due,
			api_key = EXCLUDED.api_key,
			webhook_url = EXCLUDED.webhook_url,
			statement_day_of_month = EXCLUDED.statement_day_of_month,
			updated_at = EXCLUDED.updated_at`,
		settings.UserID, settings.Currency, settings.NotifyByEmail, settings.NotifyPaymentsDue,
		settings.APIKey, settings.WebhookURL, settings.StatementDayOfMonth, settings.UpdatedAt,
	)
	return err
}
