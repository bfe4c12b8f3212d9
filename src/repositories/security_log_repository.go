package repositories

import (
	"context"
	"time"

	"agency/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SecurityLogRepository is append-only; entries are never updated or deleted.
type SecurityLogRepository interface {
	Record(ctx context.Context, entry *models.SecurityLog) error
	GetByUser(ctx context.Context, userID string, limit int) ([]models.SecurityLog, error)
}

type securityLogRepo struct {
	db *pgxpool.Pool
}

func NewSecurityLogRepository(db *pgxpool.Pool) SecurityLogRepository {
	return &securityLogRepo{db: db}
}

func (r *securityLogRepo) Record(ctx context.Context, entry *models.SecurityLog) error {
	entry.CreatedAt = time.Now().UTC()
	return r.db.QueryRow(ctx, `
		INSERT INTO security_logs (user_id, event, detail, remote_ip, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		entry.UserID, entry.Event, entry.Detail, entry.RemoteIP, entry.CreatedAt,
	).Scan(&entry.ID)
}

func (r *securityLogRepo) GetByUser(ctx context.Context, userID string, limit int) ([]models.SecurityLog, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, event, detail, remote_ip, created_at
		FROM security_logs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.SecurityLog
	for rows.Next() {
		var e models.SecurityLog
		if err := rows.Scan(&e.ID, &e.UserID, &e.Event, &e.Detail, &e.RemoteIP, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
