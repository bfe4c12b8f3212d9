package services_test

import (
	"context"
	"fmt"
	"testing"

	"agency/src/models"
	"agency/src/repositories"
	"agency/src/schemas"
	"agency/src/services"
	"agency/src/utils"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
}

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type fakeOrderRepo struct {
	orders map[string]*models.PurchaseOrder
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*models.PurchaseOrder{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, po *models.PurchaseOrder) error {
	f.seq++
	po.ID = fmt.Sprintf("po-%d", f.seq)
	po.OrderNumber = fmt.Sprintf("PO-%04d", f.seq)
	po.Status = models.POStatusDraft
	for i := range po.Lines {
		po.Lines[i].ID = fmt.Sprintf("%s-line-%d", po.ID, i+1)
		po.Lines[i].PurchaseOrderID = po.ID
	}
	stored := *po
	stored.Lines = append([]models.PurchaseOrderLine(nil), po.Lines...)
	f.orders[po.ID] = &stored
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*models.PurchaseOrder, error) {
	stored, ok := f.orders[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *stored
	copied.Lines = append([]models.PurchaseOrderLine(nil), stored.Lines...)
	return &copied, nil
}

func (f *fakeOrderRepo) GetAll(_ context.Context) ([]models.PurchaseOrder, error) {
	var out []models.PurchaseOrder
	for _, po := range f.orders {
		out = append(out, *po)
	}
	return out, nil
}

func (f *fakeOrderRepo) SetStatus(_ context.Context, id string, status models.PurchaseOrderStatus) error {
	stored, ok := f.orders[id]
	if !ok {
		return repositories.ErrNotFound
	}
	stored.Status = status
	return nil
}

func (f *fakeOrderRepo) UpdateReceivedQuantities(_ context.Context, _ pgx.Tx, id string, receivedByLine map[string]float64, status models.PurchaseOrderStatus) error {
	stored, ok := f.orders[id]
	if !ok {
		return repositories.ErrNotFound
	}
	for i := range stored.Lines {
		stored.Lines[i].ReceivedQty += receivedByLine[stored.Lines[i].ID]
	}
	stored.Status = status
	return nil
}

type fakeGRNRepo struct {
	grns map[string]*models.GoodsReceiptNote
	seq  int
}

func newFakeGRNRepo() *fakeGRNRepo {
	return &fakeGRNRepo{grns: map[string]*models.GoodsReceiptNote{}}
}

func (f *fakeGRNRepo) Create(_ context.Context, _ pgx.Tx, grn *models.GoodsReceiptNote) error {
	f.seq++
	grn.ID = fmt.Sprintf("grn-%d", f.seq)
	grn.GRNNumber = fmt.Sprintf("GRN-%04d", f.seq)
	f.grns[grn.ID] = grn
	return nil
}

func (f *fakeGRNRepo) GetByID(_ context.Context, id string) (*models.GoodsReceiptNote, error) {
	grn, ok := f.grns[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return grn, nil
}

func (f *fakeGRNRepo) GetByPurchaseOrder(_ context.Context, purchaseOrderID string) ([]models.GoodsReceiptNote, error) {
	var out []models.GoodsReceiptNote
	for _, grn := range f.grns {
		if grn.PurchaseOrderID == purchaseOrderID {
			out = append(out, *grn)
		}
	}
	return out, nil
}

func (f *fakeGRNRepo) Begin(context.Context) (pgx.Tx, error) {
	return fakeTx{}, nil
}

func createOrderRequest() *schemas.CreatePurchaseOrderRequest {
	return &schemas.CreatePurchaseOrderRequest{
		Supplier:  "Al-Habib Builders",
		CreatedBy: "ops@agency.pk",
		Lines: []schemas.PurchaseOrderLineInput{
			{Item: "Cement bags", Quantity: 10, UnitPrice: 1_200},
			{Item: "Steel rods", Quantity: 3, UnitPrice: 45_000},
		},
	}
}

// receiveRequest builds a receipt for the order's lines by index.
func receiveRequest(po *models.PurchaseOrder, byIndex map[int]float64) *schemas.ReceiveGoodsRequest {
	req := &schemas.ReceiveGoodsRequest{PurchaseOrderID: po.ID, ReceivedBy: "warehouse"}
	for i, qty := range byIndex {
		req.Lines = append(req.Lines, schemas.GRNLineInput{POLineID: po.Lines[i].ID, ReceivedQty: qty})
	}
	return req
}

func newProcurementFixture(t *testing.T) (*services.ProcurementService, *models.PurchaseOrder) {
	t.Helper()
	orders := newFakeOrderRepo()
	svc := services.NewProcurementService(orders, newFakeGRNRepo())

	po, err := svc.CreateOrder(context.Background(), createOrderRequest())
	require.NoError(t, err)
	return svc, po
}

func TestPurchaseOrderLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, po := newProcurementFixture(t)

	assert.Equal(t, models.POStatusDraft, po.Status)
	require.Len(t, po.Lines, 2)

	t.Run("receiving before issue is rejected", func(t *testing.T) {
		_, err := svc.ReceiveGoods(ctx, receiveRequest(po, map[int]float64{0: 1}))
		requireHTTPStatus(t, err, 409)
	})

	issued, err := svc.IssueOrder(ctx, po.ID)
	require.NoError(t, err)
	assert.Equal(t, models.POStatusIssued, issued.Status)

	t.Run("issuing twice conflicts", func(t *testing.T) {
		_, err := svc.IssueOrder(ctx, po.ID)
		requireHTTPStatus(t, err, 409)
	})

	t.Run("partial receipt", func(t *testing.T) {
		grn, err := svc.ReceiveGoods(ctx, receiveRequest(po, map[int]float64{0: 5}))
		require.NoError(t, err)
		require.Len(t, grn.Lines, 1)
		assert.Equal(t, 5.0, grn.Lines[0].ReceivedQty)

		reloaded, err := svc.GetOrder(ctx, po.ID)
		require.NoError(t, err)
		assert.Equal(t, models.POStatusPartiallyReceived, reloaded.Status)
	})

	t.Run("cancel after receipt conflicts", func(t *testing.T) {
		_, err := svc.CancelOrder(ctx, po.ID)
		requireHTTPStatus(t, err, 409)
	})

	t.Run("over-receipt is rejected", func(t *testing.T) {
		_, err := svc.ReceiveGoods(ctx, receiveRequest(po, map[int]float64{0: 6}))
		requireHTTPStatus(t, err, 422)
	})

	t.Run("completing every line marks the order received", func(t *testing.T) {
		_, err := svc.ReceiveGoods(ctx, receiveRequest(po, map[int]float64{0: 5, 1: 3}))
		require.NoError(t, err)

		reloaded, err := svc.GetOrder(ctx, po.ID)
		require.NoError(t, err)
		assert.Equal(t, models.POStatusReceived, reloaded.Status)
		for _, line := range reloaded.Lines {
			assert.Equal(t, line.Quantity, line.ReceivedQty)
		}
	})
}

func TestReceiveGoodsValidation(t *testing.T) {
	ctx := context.Background()
	svc, po := newProcurementFixture(t)
	_, err := svc.IssueOrder(ctx, po.ID)
	require.NoError(t, err)

	t.Run("unknown line", func(t *testing.T) {
		_, err := svc.ReceiveGoods(ctx, &schemas.ReceiveGoodsRequest{
			PurchaseOrderID: po.ID,
			Lines:           []schemas.GRNLineInput{{POLineID: "not-a-line", ReceivedQty: 1}},
		})
		requireHTTPStatus(t, err, 422)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := svc.ReceiveGoods(ctx, receiveRequest(po, map[int]float64{0: 0}))
		requireHTTPStatus(t, err, 422)
	})
}

func TestCancelDraftOrder(t *testing.T) {
	ctx := context.Background()
	svc, po := newProcurementFixture(t)

	cancelled, err := svc.CancelOrder(ctx, po.ID)
	require.NoError(t, err)
	assert.Equal(t, models.POStatusCancelled, cancelled.Status)

	_, err = svc.IssueOrder(ctx, po.ID)
	requireHTTPStatus(t, err, 409)
}

func requireHTTPStatus(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var httpErr *utils.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, code, httpErr.Code)
}
