package schemas

type CreatePurchaseOrderRequest struct {
	Supplier  string                   `json:"supplier"`
	Notes     string                   `json:"notes,omitempty"`
	CreatedBy string                   `json:"createdBy,omitempty"`
	Lines     []PurchaseOrderLineInput `json:"lines"`
}

type PurchaseOrderLineInput struct {
	Item      string  `json:"item"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type ReceiveGoodsRequest struct {
	PurchaseOrderID string         `json:"purchaseOrderId"`
	ReceivedBy      string         `json:"receivedBy,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	Lines           []GRNLineInput `json:"lines"`
}

type GRNLineInput struct {
	POLineID    string  `json:"poLineId"`
	ReceivedQty float64 `json:"receivedQty"`
}
