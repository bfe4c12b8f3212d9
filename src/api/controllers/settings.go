package controllers

import (
	"context"

	"agency/src/models"
	"agency/src/repositories"
	"agency/src/schemas"
)

type SettingsControllerI interface {
	GetSettings(ctx context.Context, userID string) (*models.UserSettings, error)
	UpdateSettings(ctx context.Context, userID string, req *schemas.UpdateSettingsRequest) (*models.UserSettings, error)
	GetSecurityLog(ctx context.Context, userID string, limit int) ([]models.SecurityLog, error)
}

type SettingsController struct {
	settings     repositories.SettingsRepository
	securityLogs repositories.SecurityLogRepository
}

func NewSettingsController(settings repositories.SettingsRepository, securityLogs repositories.SecurityLogRepository) *SettingsController {
	return &SettingsController{settings: settings, securityLogs: securityLogs}
}

func (c *SettingsController) GetSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	settings, err := c.settings.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.record(ctx, userID, models.EventSettingsRead, "")
	return settings, nil
}

func (c *SettingsController) UpdateSettings(ctx context.Context, userID string, req *schemas.UpdateSettingsRequest) (*models.UserSettings, error) {
	settings, err := c.settings.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Currency != nil {
		settings.Currency = *req.Currency
	}
	if req.NotifyByEmail != nil {
		settings.NotifyByEmail = *req.NotifyByEmail
	}
	if req.NotifyPaymentsDue != nil {
		settings.NotifyPaymentsDue = *req.NotifyPaymentsDue
	}
	if req.APIKey != nil {
		settings.APIKey = *req.APIKey
	}
	if req.WebhookURL != nil {
		settings.WebhookURL = *req.WebhookURL
	}
	if req.StatementDayOfMonth != nil {
		settings.StatementDayOfMonth = *req.StatementDayOfMonth
	}

	if err := c.settings.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	c.record(ctx, userID, models.EventSettingsWrite, "settings updated")
	return settings, nil
}

func (c *SettingsController) GetSecurityLog(ctx context.Context, userID string, limit int) ([]models.SecurityLog, error) {
	return c.securityLogs.GetByUser(ctx, userID, limit)
}

// record appends an audit entry; audit failures never fail the request.
func (c *SettingsController) record(ctx context.Context, userID string, event models.SecurityEvent, detail string) {
	_ = c.securityLogs.Record(ctx, &models.SecurityLog{
		UserID: userID,
		Event:  event,
		Detail: detail,
	})
}
