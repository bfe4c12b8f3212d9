package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agency/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *models.ScheduledPayment) error
	GetByID(ctx context.Context, id string) (*models.ScheduledPayment, error)
	GetDueBefore(ctx context.Context, cutoff time.Time) ([]models.ScheduledPayment, error)
	GetByStatus(ctx context.Context, status models.PaymentStatus) ([]models.ScheduledPayment, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (*models.ScheduledPayment, error)
	MarkOverdue(ctx context.Context, cutoff time.Time) ([]models.ScheduledPayment, error)
}

type paymentRepo struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) PaymentRepository {
	return &paymentRepo{db: db}
}

const paymentColumns = `id, property_id, payee, amount, due_date, status, reference, paid_at, created_at, updated_at`

func (r *paymentRepo) Create(ctx context.Context, p *models.ScheduledPayment) error {
	if p.Payee == "" {
		return fmt.Errorf("%w: payee is required", ErrInvalidRecord)
	}
	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidRecord)
	}
	if p.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is required", ErrInvalidRecord)
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.Status = models.PaymentPending
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.db.Exec(ctx, `
		INSERT INTO scheduled_payments (id, property_id, payee, amount, due_date, status, reference, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.PropertyID, p.Payee, p.Amount, p.DueDate, p.Status, p.Reference, p.PaidAt, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *paymentRepo) GetByID(ctx context.Context, id string) (*models.ScheduledPayment, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+paymentColumns+`
		FROM scheduled_payments
		WHERE id = $1`, id)

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payment %s", ErrNotFound, id)
		}
		return nil, err
	}
	return p, nil
}

func (r *paymentRepo) GetDueBefore(ctx context.Context, cutoff time.Time) ([]models.ScheduledPayment, error) {
	return r.query(ctx, `
		SELECT `+paymentColumns+`
		FROM scheduled_payments
		WHERE status IN ('pending', 'overdue') AND due_date <= $1
		ORDER BY due_date ASC`, cutoff)
}

func (r *paymentRepo) GetByStatus(ctx context.Context, status models.PaymentStatus) ([]models.ScheduledPayment, error) {
	return r.query(ctx, `
		SELECT `+paymentColumns+`
		FROM scheduled_payments
		WHERE status = $1
		ORDER BY due_date ASC`, status)
}

func (r *paymentRepo) MarkPaid(ctx context.Context, id string, paidAt time.Time) (*models.ScheduledPayment, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE scheduled_payments
		SET status = 'paid', paid_at = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+paymentColumns, id, paidAt, time.Now().UTC())

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payment %s", ErrNotFound, id)
		}
		return nil, err
	}
	return p, nil
}

// MarkOverdue flips pending payments whose due date has passed and returns the
// affected rows so reminders can be dispatched.
func (r *paymentRepo) MarkOverdue(ctx context.Context, cutoff time.Time) ([]models.ScheduledPayment, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE scheduled_payments
		SET status = 'overdue', updated_at = $2
		WHERE status = 'pending' AND due_date < $1
		RETURNING `+paymentColumns, cutoff, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *paymentRepo) query(ctx context.Context, sql string, args ...interface{}) ([]models.ScheduledPayment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayments(rows)
}

func collectPayments(rows pgx.Rows) ([]models.ScheduledPayment, error) {
	var payments []models.ScheduledPayment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

func scanPayment(row pgx.Row) (*models.ScheduledPayment, error) {
	var p models.ScheduledPayment
	err := row.Scan(
		&p.ID, &p.PropertyID, &p.Payee, &p.Amount, &p.DueDate, &p.Status,
		&p.Reference, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
