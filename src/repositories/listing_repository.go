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

// ListingFilter narrows the analytics snapshot. Empty fields match everything.
type ListingFilter struct {
	PropertyType string
	City         string
	AreaUnit     string
}

type ListingRepository interface {
	Create(ctx context.Context, l *models.Listing) error
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	GetAll(ctx context.Context, filter ListingFilter) ([]models.Listing, error)
	Update(ctx context.Context, id string, merge func(*models.Listing)) (*models.Listing, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type listingRepo struct {
	db *pgxpool.Pool
}

func NewListingRepository(db *pgxpool.Pool) ListingRepository {
	return &listingRepo{db: db}
}

const listingColumns = `id, title, property_type, city, location, price, area, area_unit,
	bedrooms, bathrooms, status, listed_at, sold_at, created_at, updated_at`

func validateListing(l *models.Listing) error {
	if l.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidRecord)
	}
	if l.PropertyType == "" || l.City == "" {
		return fmt.Errorf("%w: property type and city are required", ErrInvalidRecord)
	}
	if l.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidRecord)
	}
	if l.Area <= 0 {
		return fmt.Errorf("%w: area must be positive", ErrInvalidRecord)
	}
	return nil
}

func (r *listingRepo) Create(ctx context.Context, l *models.Listing) error {
	if err := validateListing(l); err != nil {
		return err
	}

	now := time.Now().UTC()
	l.ID = uuid.NewString()
	l.CreatedAt = now
	l.UpdatedAt = now
	if l.Status == "" {
		l.Status = models.ListingActive
	}
	if l.ListedAt.IsZero() {
		l.ListedAt = now
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO listings (id, title, property_type, city, location, price, area, area_unit,
			bedrooms, bathrooms, status, listed_at, sold_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		l.ID, l.Title, l.PropertyType, l.City, l.Location, l.Price, l.Area, l.AreaUnit,
		l.Bedrooms, l.Bathrooms, l.Status, l.ListedAt, l.SoldAt, l.CreatedAt, l.UpdatedAt,
	)
	return err
}

func (r *listingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE id = $1`, id)

	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: listing %s", ErrNotFound, id)
		}
		return nil, err
	}
	return l, nil
}

func (r *listingRepo) GetAll(ctx context.Context, filter ListingFilter) ([]models.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE ($1 = '' OR property_type = $1)
		AND ($2 = '' OR city = $2)
		AND ($3 = '' OR area_unit = $3)
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, filter.PropertyType, filter.City, filter.AreaUnit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}
	return listings, rows.Err()
}

func (r *listingRepo) Update(ctx context.Context, id string, merge func(*models.Listing)) (*models.Listing, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE id = $1
		FOR UPDATE`, id)

	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: listing %s", ErrNotFound, id)
		}
		return nil, err
	}

	merge(l)
	if err := validateListing(l); err != nil {
		return nil, err
	}
	l.UpdatedAt = time.Now().UTC()

	_, err = tx.Exec(ctx, `
		UPDATE listings
		SET title = $2, property_type = $3, city = $4, location = $5, price = $6, area = $7,
			area_unit = $8, bedrooms = $9, bathrooms = $10, status = $11, listed_at = $12,
			sold_at = $13, updated_at = $14
		WHERE id = $1`,
		l.ID, l.Title, l.PropertyType, l.City, l.Location, l.Price, l.Area,
		l.AreaUnit, l.Bedrooms, l.Bathrooms, l.Status, l.ListedAt,
		l.SoldAt, l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *listingRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanListing(row pgx.Row) (*models.Listing, error) {
	var l models.Listing
	err := row.Scan(
		&l.ID, &l.Title, &l.PropertyType, &l.City, &l.Location, &l.Price, &l.Area, &l.AreaUnit,
		&l.Bedrooms, &l.Bathrooms, &l.Status, &l.ListedAt, &l.SoldAt, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
