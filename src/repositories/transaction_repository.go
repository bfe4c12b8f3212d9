package repositories

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"agency/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionRepository is the property ledger: an append-mostly collection of
// financial records keyed by property.
type TransactionRepository interface {
	Create(ctx context.Context, t *models.Transaction) error
	CreateMany(ctx context.Context, transactions []*models.Transaction) error
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	GetByProperty(ctx context.Context, propertyID string) ([]models.Transaction, error)
	GetByCategory(ctx context.Context, propertyID string, category models.TransactionCategory) ([]models.Transaction, error)
	GetByType(ctx context.Context, propertyID string, transactionType string) ([]models.Transaction, error)
	GetByDateRange(ctx context.Context, propertyID string, start, end time.Time) ([]models.Transaction, error)
	Update(ctx context.Context, id string, merge func(*models.Transaction)) (*models.Transaction, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteByProperty(ctx context.Context, propertyID string) (int64, error)
}

type transactionRepo struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) TransactionRepository {
	return &transactionRepo{db: db}
}

const transactionColumns = `id, property_id, category, transaction_type, amount, date,
	description, notes, receipt_number, receipt_url, recorded_by, created_at, updated_at`

// ValidateTransaction enforces the ledger's domain invariants: required
// fields, a known type, a category consistent with that type, and a finite
// non-negative amount. The category is derived from the type when empty.
func ValidateTransaction(t *models.Transaction) error {
	if t.PropertyID == "" {
		return fmt.Errorf("%w: property id is required", ErrInvalidRecord)
	}
	if t.Type == "" {
		return fmt.Errorf("%w: transaction type is required", ErrInvalidRecord)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidRecord)
	}
	category, ok := models.CategoryForType(t.Type)
	if !ok {
		return fmt.Errorf("%w: unknown transaction type %q", ErrInvalidRecord, t.Type)
	}
	if t.Category == "" {
		t.Category = category
	} else if t.Category != category {
		return fmt.Errorf("%w: category %q does not match type %q", ErrInvalidRecord, t.Category, t.Type)
	}
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return fmt.Errorf("%w: amount must be finite", ErrInvalidRecord)
	}
	if t.Amount < 0 {
		return fmt.Errorf("%w: amount must be non-negative", ErrInvalidRecord)
	}
	return nil
}

func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction) error {
	if err := ValidateTransaction(t); err != nil {
		return err
	}

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.db.Exec(ctx, `
		INSERT INTO transactions (id, property_id, category, transaction_type, amount, date,
			description, notes, receipt_number, receipt_url, recorded_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		t.ID, t.PropertyID, t.Category, t.Type, t.Amount, t.Date,
		t.Description, t.Notes, t.ReceiptNumber, t.ReceiptURL, t.RecordedBy, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

// CreateMany appends a batch of records in a single database transaction, so a
// multi-line entry is persisted entirely or not at all.
func (r *transactionRepo) CreateMany(ctx context.Context, transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	for _, t := range transactions {
		if err := ValidateTransaction(t); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO transactions (id, property_id, category, transaction_type, amount, date,
			description, notes, receipt_number, receipt_url, recorded_by, created_at, updated_at)
		VALUES `

	args := make([]interface{}, 0, len(transactions)*13)
	valueStrings := make([]string, 0, len(transactions))

	for i, t := range transactions {
		t.ID = uuid.NewString()
		t.CreatedAt = now
		t.UpdatedAt = now

		placeholders := make([]string, 13)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", i*13+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ", ")+")")
		args = append(args,
			t.ID, t.PropertyID, t.Category, t.Type, t.Amount, t.Date,
			t.Description, t.Notes, t.ReceiptNumber, t.ReceiptURL, t.RecordedBy, t.CreatedAt, t.UpdatedAt,
		)
	}

	query += strings.Join(valueStrings, ",")

	if _, err = tx.Exec(ctx, query, args...); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *transactionRepo) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE id = $1`, id)

	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", ErrNotFound, id)
		}
		return nil, err
	}
	return t, nil
}

func (r *transactionRepo) GetByProperty(ctx context.Context, propertyID string) ([]models.Transaction, error) {
	return r.query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE property_id = $1
		ORDER BY date DESC`, propertyID)
}

func (r *transactionRepo) GetByCategory(ctx context.Context, propertyID string, category models.TransactionCategory) ([]models.Transaction, error) {
	return r.query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE property_id = $1 AND category = $2
		ORDER BY date DESC`, propertyID, category)
}

func (r *transactionRepo) GetByType(ctx context.Context, propertyID string, transactionType string) ([]models.Transaction, error) {
	return r.query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE property_id = $1 AND transaction_type = $2
		ORDER BY date DESC`, propertyID, transactionType)
}

func (r *transactionRepo) GetByDateRange(ctx context.Context, propertyID string, start, end time.Time) ([]models.Transaction, error) {
	return r.query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE property_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC`, propertyID, start, end)
}

// Update applies a partial merge to the stored record, re-validates it and
// refreshes the updated timestamp. The read and write share one database
// transaction.
func (r *transactionRepo) Update(ctx context.Context, id string, merge func(*models.Transaction)) (*models.Transaction, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE id = $1
		FOR UPDATE`, id)

	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", ErrNotFound, id)
		}
		return nil, err
	}

	merge(t)
	// A type change re-derives the category.
	if category, ok := models.CategoryForType(t.Type); ok {
		t.Category = category
	}
	if err := ValidateTransaction(t); err != nil {
		return nil, err
	}
	t.UpdatedAt = time.Now().UTC()

	_, err = tx.Exec(ctx, `
		UPDATE transactions
		SET category = $2, transaction_type = $3, amount = $4, date = $5, description = $6,
			notes = $7, receipt_number = $8, receipt_url = $9, updated_at = $10
		WHERE id = $1`,
		t.ID, t.Category, t.Type, t.Amount, t.Date, t.Description,
		t.Notes, t.ReceiptNumber, t.ReceiptURL, t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *transactionRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *transactionRepo) DeleteByProperty(ctx context.Context, propertyID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE property_id = $1`, propertyID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *transactionRepo) query(ctx context.Context, sql string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.ID, &t.PropertyID, &t.Category, &t.Type, &t.Amount, &t.Date,
		&t.Description, &t.Notes, &t.ReceiptNumber, &t.ReceiptURL, &t.RecordedBy,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
