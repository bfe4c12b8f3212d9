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

type GRNRepository interface {
	// Create persists the receipt note inside the caller's transaction so it
	// commits together with the purchase-order quantity updates.
	Create(ctx context.Context, tx pgx.Tx, grn *models.GoodsReceiptNote) error
	GetByID(ctx context.Context, id string) (*models.GoodsReceiptNote, error)
	GetByPurchaseOrder(ctx context.Context, purchaseOrderID string) ([]models.GoodsReceiptNote, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type grnRepo struct {
	db *pgxpool.Pool
}

func NewGRNRepository(db *pgxpool.Pool) GRNRepository {
	return &grnRepo{db: db}
}

func (r *grnRepo) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.db.Begin(ctx)
}

func (r *grnRepo) Create(ctx context.Context, tx pgx.Tx, grn *models.GoodsReceiptNote) error {
	if grn.PurchaseOrderID == "" {
		return fmt.Errorf("%w: purchase order id is required", ErrInvalidRecord)
	}
	if len(grn.Lines) == 0 {
		return fmt.Errorf("%w: a receipt note needs at least one line", ErrInvalidRecord)
	}

	now := time.Now().UTC()
	grn.ID = uuid.NewString()
	grn.CreatedAt = now
	if grn.ReceivedAt.IsZero() {
		grn.ReceivedAt = now
	}
	if grn.GRNNumber == "" {
		grn.GRNNumber = fmt.Sprintf("GRN-%s", now.Format("20060102-150405"))
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO goods_receipt_notes (id, grn_number, purchase_order_id, received_by, received_at, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		grn.ID, grn.GRNNumber, grn.PurchaseOrderID, grn.ReceivedBy, grn.ReceivedAt, grn.Notes, grn.CreatedAt,
	)
	if err != nil {
		return err
	}

	for i := range grn.Lines {
		line := &grn.Lines[i]
		line.ID = uuid.NewString()
		line.GRNID = grn.ID
		_, err = tx.Exec(ctx, `
			INSERT INTO grn_lines (id, grn_id, po_line_id, item, received_qty)
			VALUES ($1, $2, $3, $4, $5)`,
			line.ID, line.GRNID, line.POLineID, line.Item, line.ReceivedQty,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *grnRepo) GetByID(ctx context.Context, id string) (*models.GoodsReceiptNote, error) {
	var grn models.GoodsReceiptNote
	err := r.db.QueryRow(ctx, `
		SELECT id, grn_number, purchase_order_id, received_by, received_at, notes, created_at
		FROM goods_receipt_notes
		WHERE id = $1`, id).Scan(
		&grn.ID, &grn.GRNNumber, &grn.PurchaseOrderID, &grn.ReceivedBy, &grn.ReceivedAt, &grn.Notes, &grn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: goods receipt note %s", ErrNotFound, id)
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, grn_id, po_line_id, item, received_qty
		FROM grn_lines
		WHERE grn_id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line models.GRNLine
		if err := rows.Scan(&line.ID, &line.GRNID, &line.POLineID, &line.Item, &line.ReceivedQty); err != nil {
			return nil, err
		}
		grn.Lines = append(grn.Lines, line)
	}
	return &grn, rows.Err()
}

func (r *grnRepo) GetByPurchaseOrder(ctx context.Context, purchaseOrderID string) ([]models.GoodsReceiptNote, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, grn_number, purchase_order_id, received_by, received_at, notes, created_at
		FROM goods_receipt_notes
		WHERE purchase_order_id = $1
		ORDER BY received_at DESC`, purchaseOrderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.GoodsReceiptNote
	for rows.Next() {
		var grn models.GoodsReceiptNote
		if err := rows.Scan(&grn.ID, &grn.GRNNumber, &grn.PurchaseOrderID, &grn.ReceivedBy, &grn.ReceivedAt, &grn.Notes, &grn.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, grn)
	}
	return notes, rows.Err()
}
