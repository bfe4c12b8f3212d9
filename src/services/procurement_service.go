package services

import (
	"context"
	"fmt"
	"time"

	"agency/src/models"
	"agency/src/repositories"
	"agency/src/schemas"
	"agency/src/utils"
)

type ProcurementServiceI interface {
	CreateOrder(ctx context.Context, req *schemas.CreatePurchaseOrderRequest) (*models.PurchaseOrder, error)
	GetOrder(ctx context.Context, id string) (*models.PurchaseOrder, error)
	ListOrders(ctx context.Context) ([]models.PurchaseOrder, error)
	IssueOrder(ctx context.Context, id string) (*models.PurchaseOrder, error)
	CancelOrder(ctx context.Context, id string) (*models.PurchaseOrder, error)
	ReceiveGoods(ctx context.Context, req *schemas.ReceiveGoodsRequest) (*models.GoodsReceiptNote, error)
	GetGRN(ctx context.Context, id string) (*models.GoodsReceiptNote, error)
}

// ProcurementService drives the purchase-order lifecycle:
// draft -> issued -> partially_received -> received, or cancelled while no
// goods have been received.
type ProcurementService struct {
	orders repositories.PurchaseOrderRepository
	grns   repositories.GRNRepository
}

func NewProcurementService(orders repositories.PurchaseOrderRepository, grns repositories.GRNRepository) *ProcurementService {
	return &ProcurementService{orders: orders, grns: grns}
}

func (ps *ProcurementService) CreateOrder(ctx context.Context, req *schemas.CreatePurchaseOrderRequest) (*models.PurchaseOrder, error) {
	po := &models.PurchaseOrder{
		Supplier:  req.Supplier,
		Notes:     req.Notes,
		CreatedBy: req.CreatedBy,
	}
	for _, line := range req.Lines {
		po.Lines = append(po.Lines, models.PurchaseOrderLine{
			Item:      line.Item,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	if err := ps.orders.Create(ctx, po); err != nil {
		return nil, err
	}
	return po, nil
}

func (ps *ProcurementService) GetOrder(ctx context.Context, id string) (*models.PurchaseOrder, error) {
	return ps.orders.GetByID(ctx, id)
}

func (ps *ProcurementService) ListOrders(ctx context.Context) ([]models.PurchaseOrder, error) {
	return ps.orders.GetAll(ctx)
}

func (ps *ProcurementService) IssueOrder(ctx context.Context, id string) (*models.PurchaseOrder, error) {
	po, err := ps.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po.Status != models.POStatusDraft {
		return nil, utils.Conflict(fmt.Sprintf("purchase order %s cannot be issued from status %q", id, po.Status))
	}
	if err := ps.orders.SetStatus(ctx, id, models.POStatusIssued); err != nil {
		return nil, err
	}
	po.Status = models.POStatusIssued
	return po, nil
}

func (ps *ProcurementService) CancelOrder(ctx context.Context, id string) (*models.PurchaseOrder, error) {
	po, err := ps.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po.Status != models.POStatusDraft && po.Status != models.POStatusIssued {
		return nil, utils.Conflict(fmt.Sprintf("purchase order %s cannot be cancelled from status %q", id, po.Status))
	}
	if err := ps.orders.SetStatus(ctx, id, models.POStatusCancelled); err != nil {
		return nil, err
	}
	po.Status = models.POStatusCancelled
	return po, nil
}

// ReceiveGoods validates the receipt against the order's outstanding
// quantities, then persists the GRN and the updated order in one transaction.
func (ps *ProcurementService) ReceiveGoods(ctx context.Context, req *schemas.ReceiveGoodsRequest) (*models.GoodsReceiptNote, error) {
	po, err := ps.orders.GetByID(ctx, req.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	if po.Status != models.POStatusIssued && po.Status != models.POStatusPartiallyReceived {
		return nil, utils.Conflict(fmt.Sprintf("purchase order %s is not open for receiving (status %q)", po.ID, po.Status))
	}

	linesByID := make(map[string]*models.PurchaseOrderLine, len(po.Lines))
	for i := range po.Lines {
		linesByID[po.Lines[i].ID] = &po.Lines[i]
	}

	grn := &models.GoodsReceiptNote{
		PurchaseOrderID: po.ID,
		ReceivedBy:      req.ReceivedBy,
		ReceivedAt:      time.Now().UTC(),
		Notes:           req.Notes,
	}
	receivedByLine := make(map[string]float64, len(req.Lines))

	for _, line := range req.Lines {
		poLine, ok := linesByID[line.POLineID]
		if !ok {
			return nil, utils.UnprocessableEntity(fmt.Sprintf("line %s does not belong to order %s", line.POLineID, po.ID))
		}
		if line.ReceivedQty <= 0 {
			return nil, utils.UnprocessableEntity("received quantity must be positive")
		}
		if poLine.ReceivedQty+line.ReceivedQty > poLine.Quantity {
			return nil, utils.UnprocessableEntity(fmt.Sprintf(
				"receiving %.2f of %q exceeds the ordered quantity (%.2f ordered, %.2f already received)",
				line.ReceivedQty, poLine.Item, poLine.Quantity, poLine.ReceivedQty))
		}
		receivedByLine[line.POLineID] += line.ReceivedQty
		poLine.ReceivedQty += line.ReceivedQty
		grn.Lines = append(grn.Lines, models.GRNLine{
			POLineID:    line.POLineID,
			Item:        poLine.Item,
			ReceivedQty: line.ReceivedQty,
		})
	}

	status := models.POStatusReceived
	for _, line := range po.Lines {
		if line.ReceivedQty < line.Quantity {
			status = models.POStatusPartiallyReceived
			break
		}
	}

	tx, err := ps.grns.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := ps.grns.Create(ctx, tx, grn); err != nil {
		return nil, err
	}
	if err := ps.orders.UpdateReceivedQuantities(ctx, tx, po.ID, receivedByLine, status); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return grn, nil
}

func (ps *ProcurementService) GetGRN(ctx context.Context, id string) (*models.GoodsReceiptNote, error) {
	return ps.grns.GetByID(ctx, id)
}
