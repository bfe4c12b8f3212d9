package models

import (
	"time"
)

type PurchaseOrderStatus string

const (
	POStatusDraft             PurchaseOrderStatus = "draft"
	POStatusIssued            PurchaseOrderStatus = "issued"
	POStatusPartiallyReceived PurchaseOrderStatus = "partially_received"
	POStatusReceived          PurchaseOrderStatus = "received"
	POStatusCancelled         PurchaseOrderStatus = "cancelled"
)

type PurchaseOrder struct {
	ID          string              `db:"id"`
	OrderNumber string              `db:"order_number"`
	Supplier    string              `db:"supplier"`
	Status      PurchaseOrderStatus `db:"status"`
	Notes       string              `db:"notes"`
	CreatedBy   string              `db:"created_by"`
	CreatedAt   time.Time           `db:"created_at"`
	UpdatedAt   time.Time           `db:"updated_at"`
	Lines       []PurchaseOrderLine `db:"-"`
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

type PurchaseOrderLine struct {
	ID              string  `db:"id"`
	PurchaseOrderID string  `db:"purchase_order_id"`
	Item            string  `db:"item"`
	Quantity        float64 `db:"quantity"`
	UnitPrice       float64 `db:"unit_price"`
	ReceivedQty     float64 `db:"received_qty"`
}

// GoodsReceiptNote records a delivery against an issued purchase order.
type GoodsReceiptNote struct {
	ID              string    `db:"id"`
	GRNNumber       string    `db:"grn_number"`
	PurchaseOrderID string    `db:"purchase_order_id"`
	ReceivedBy      string    `db:"received_by"`
	ReceivedAt      time.Time `db:"received_at"`
	Notes           string    `db:"notes"`
	CreatedAt       time.Time `db:"created_at"`
	Lines           []GRNLine `db:"-"`
}

func (GoodsReceiptNote) TableName() string {
	return "goods_receipt_notes"
}

type GRNLine struct {
	ID          string  `db:"id"`
	GRNID       string  `db:"grn_id"`
	POLineID    string  `db:"po_line_id"`
	Item        string  `db:"item"`
	ReceivedQty float64 `db:"received_qty"`
}
