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

type InvestorRepository interface {
	Create(ctx context.Context, inv *models.Investor) error
	GetByID(ctx context.Context, id string) (*models.Investor, error)
	GetAll(ctx context.Context) ([]models.Investor, error)
	AddStake(ctx context.Context, stake *models.InvestorStake) error
	GetStakes(ctx context.Context, investorID string) ([]models.InvestorStake, error)
}

type investorRepo struct {
	db *pgxpool.Pool
}

func NewInvestorRepository(db *pgxpool.Pool) InvestorRepository {
	return &investorRepo{db: db}
}

func (r *investorRepo) Create(ctx context.Context, inv *models.Investor) error {
	if inv.Name == "" {
		return fmt.Errorf("%w: investor name is required", ErrInvalidRecord)
	}

	now := time.Now().UTC()
	inv.ID = uuid.NewString()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	_, err := r.db.Exec(ctx, `
		INSERT INTO investors (id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		inv.ID, inv.Name, inv.Email, inv.Phone, inv.CreatedAt, inv.UpdatedAt,
	)
	return err
}

func (r *investorRepo) GetByID(ctx context.Context, id string) (*models.Investor, error) {
	var inv models.Investor
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, phone, created_at, updated_at
		FROM investors
		WHERE id = $1`, id).Scan(&inv.ID, &inv.Name, &inv.Email, &inv.Phone, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: investor %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &inv, nil
}

func (r *investorRepo) GetAll(ctx context.Context) ([]models.Investor, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, phone, created_at, updated_at
		FROM investors
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var investors []models.Investor
	for rows.Next() {
		var inv models.Investor
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.Email, &inv.Phone, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, err
		}
		investors = append(investors, inv)
	}
	return investors, rows.Err()
}

func (r *investorRepo) AddStake(ctx context.Context, stake *models.InvestorStake) error {
	if stake.InvestorID == "" || stake.PropertyID == "" {
		return fmt.Errorf("%w: investor and property ids are required", ErrInvalidRecord)
	}
	if stake.SharePercentage <= 0 || stake.SharePercentage > 100 {
		return fmt.Errorf("%w: share percentage must be in (0, 100]", ErrInvalidRecord)
	}
	if stake.PurchasePrice < 0 {
		return fmt.Errorf("%w: purchase price must be non-negative", ErrInvalidRecord)
	}

	stake.ID = uuid.NewString()
	stake.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(ctx, `
		INSERT INTO investor_stakes (id, investor_id, property_id, share_percentage, purchase_price, acquisition_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		stake.ID, stake.InvestorID, stake.PropertyID, stake.SharePercentage, stake.PurchasePrice, stake.AcquisitionDate, stake.CreatedAt,
	)
	return err
}

func (r *investorRepo) GetStakes(ctx context.Context, investorID string) ([]models.InvestorStake, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, investor_id, property_id, share_percentage, purchase_price, acquisition_date, created_at
		FROM investor_stakes
		WHERE investor_id = $1
		ORDER BY acquisition_date`, investorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stakes []models.InvestorStake
	for rows.Next() {
		var s models.InvestorStake
		if err := rows.Scan(&s.ID, &s.InvestorID, &s.PropertyID, &s.SharePercentage, &s.PurchasePrice, &s.AcquisitionDate, &s.CreatedAt); err != nil {
			return nil, err
		}
		stakes = append(stakes, s)
	}
	return stakes, rows.Err()
}
