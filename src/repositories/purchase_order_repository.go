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

type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *models.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*models.PurchaseOrder, error)
	GetAll(ctx context.Context) ([]models.PurchaseOrder, error)
	SetStatus(ctx context.Context, id string, status models.PurchaseOrderStatus) error
	// UpdateReceivedQuantities advances line received quantities and the order
	// status inside the caller's transaction.
	UpdateReceivedQuantities(ctx context.Context, tx pgx.Tx, id string, receivedByLine map[string]float64, status models.PurchaseOrderStatus) error
}

type purchaseOrderRepo struct {
	db *pgxpool.Pool
}

func NewPurchaseOrderRepository(db *pgxpool.Pool) PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) Create(ctx context.Context, po *models.PurchaseOrder) error {
	if po.Supplier == "" {
		return fmt.Errorf("%w: supplier is required", ErrInvalidRecord)
	}
	if len(po.Lines) == 0 {
		return fmt.Errorf("%w: a purchase order needs at least one line", ErrInvalidRecord)
	}
	for _, line := range po.Lines {
		if line.Item == "" || line.Quantity <= 0 || line.UnitPrice < 0 {
			return fmt.Errorf("%w: order line needs an item, a positive quantity and a non-negative price", ErrInvalidRecord)
		}
	}

	now := time.Now().UTC()
	po.ID = uuid.NewString()
	po.Status = models.POStatusDraft
	po.CreatedAt = now
	po.UpdatedAt = now
	if po.OrderNumber == "" {
		po.OrderNumber = fmt.Sprintf("PO-%s", now.Format("20060102-150405"))
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO purchase_orders (id, order_number, supplier, status, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		po.ID, po.OrderNumber, po.Supplier, po.Status, po.Notes, po.CreatedBy, po.CreatedAt, po.UpdatedAt,
	)
	if err != nil {
		return err
	}

	for i := range po.Lines {
		line := &po.Lines[i]
		line.ID = uuid.NewString()
		line.PurchaseOrderID = po.ID
		_, err = tx.Exec(ctx, `
			INSERT INTO purchase_order_lines (id, purchase_order_id, item, quantity, unit_price, received_qty)
			VALUES ($1, $2, $3, $4, $5, 0)`,
			line.ID, line.PurchaseOrderID, line.Item, line.Quantity, line.UnitPrice,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *purchaseOrderRepo) GetByID(ctx context.Context, id string) (*models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	err := r.db.QueryRow(ctx, `
		SELECT id, order_number, supplier, status, notes, created_by, created_at, updated_at
		FROM purchase_orders
		WHERE id = $1`, id).Scan(
		&po.ID, &po.OrderNumber, &po.Supplier, &po.Status, &po.Notes, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: purchase order %s", ErrNotFound, id)
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, purchase_order_id, item, quantity, unit_price, received_qty
		FROM purchase_order_lines
		WHERE purchase_order_id = $1
		ORDER BY item`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line models.PurchaseOrderLine
		if err := rows.Scan(&line.ID, &line.PurchaseOrderID, &line.Item, &line.Quantity, &line.UnitPrice, &line.ReceivedQty); err != nil {
			return nil, err
		}
		po.Lines = append(po.Lines, line)
	}
	return &po, rows.Err()
}

func (r *purchaseOrderRepo) GetAll(ctx context.Context) ([]models.PurchaseOrder, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_number, supplier, status, notes, created_by, created_at, updated_at
		FROM purchase_orders
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.PurchaseOrder
	for rows.Next() {
		var po models.PurchaseOrder
		if err := rows.Scan(&po.ID, &po.OrderNumber, &po.Supplier, &po.Status, &po.Notes, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, po)
	}
	return orders, rows.Err()
}

func (r *purchaseOrderRepo) SetStatus(ctx context.Context, id string, status models.PurchaseOrderStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE purchase_orders
		SET status = $2, updated_at = $3
		WHERE id = $1`, id, status, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: purchase order %s", ErrNotFound, id)
	}
	return nil
}

func (r *purchaseOrderRepo) UpdateReceivedQuantities(ctx context.Context, tx pgx.Tx, id string, receivedByLine map[string]float64, status models.PurchaseOrderStatus) error {
	for lineID, qty := range receivedByLine {
		tag, err := tx.Exec(ctx, `
			UPDATE purchase_order_lines
			SET received_qty = received_qty + $3
			WHERE id = $1 AND purchase_order_id = $2`, lineID, id, qty)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: order line %s", ErrNotFound, lineID)
		}
	}

	_, err := tx.Exec(ctx, `
		UPDATE purchase_orders
		SET status = $2, updated_at = $3
		WHERE id = $1`, id, status, time.Now().UTC())
	return err
}
