package models

import (
	"time"
)

type SecurityEvent string

const (
	EventTokenAccepted SecurityEvent = "token_accepted"
	EventTokenRejected SecurityEvent = "token_rejected"
	EventSettingsRead  SecurityEvent = "settings_read"
	EventSettingsWrite SecurityEvent = "settings_write"
)

type SecurityLog struct {
	ID        int64         `db:"id"`
	UserID    string        `db:"user_id"`
	Event     SecurityEvent `db:"event"`
	Detail    string        `db:"detail"`
	RemoteIP  string        `db:"remote_ip"`
	CreatedAt time.Time     `db:"created_at"`
}

func (SecurityLog) TableName() string {
	return "security_logs"
}
