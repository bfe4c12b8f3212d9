package controllers

import (
	"context"

	"agency/src/models"
	"agency/src/schemas"
	"agency/src/services"
)

type ProcurementControllerI interface {
	CreateOrder(ctx context.Context, req *schemas.CreatePurchaseOrderRequest) (*models.PurchaseOrder, error)
	GetOrder(ctx context.Context, id string) (*models.PurchaseOrder, error)
	ListOrders(ctx context.Context) ([]models.PurchaseOrder, error)
	IssueOrder(ctx context.Context, id string) (*models.PurchaseOrder, error)
	CancelOrder(ctx context.Context, id string) (*models.PurchaseOrder, error)
	ReceiveGoods(ctx context.Context, req *schemas.ReceiveGoodsRequest) (*models.GoodsReceiptNote, error)
	GetGRN(ctx context.Context, id string) (*models.GoodsReceiptNote, error)
}

type ProcurementController struct {
	procurement services.ProcurementServiceI
}

func NewProcurementController(procurement services.ProcurementServiceI) *ProcurementController {
	return &ProcurementController{procurement: procurement}
}

func (c *ProcurementController) CreateOrder(ctx context.Context, req *schemas.CreatePurchaseOrderRequest) (*models.PurchaseOrder, error) {
	return c.procurement.CreateOrder(ctx, req)
}

func (c *ProcurementController) GetOrder(ctx context.Context, id string) (*models.PurchaseOrder, error) {
	return c.procurement.GetOrder(ctx, id)
}

func (c *ProcurementController) ListOrders(ctx context.Context) ([]models.PurchaseOrder, error) {
	return c.procurement.ListOrders(ctx)
}

func (c *ProcurementController) IssueOrder(ctx context.Context, id string) (*models.PurchaseOrder, error) {
	return c.procurement.IssueOrder(ctx, id)
}

func (c *ProcurementController) CancelOrder(ctx context.Context, id string) (*models.PurchaseOrder, error) {
	return c.procurement.CancelOrder(ctx, id)
}

func (c *ProcurementController) ReceiveGoods(ctx context.Context, req *schemas.ReceiveGoodsRequest) (*models.GoodsReceiptNote, error) {
	return c.procurement.ReceiveGoods(ctx, req)
}

func (c *ProcurementController) GetGRN(ctx context.Context, id string) (*models.GoodsReceiptNote, error) {
	return c.procurement.GetGRN(ctx, id)
}
