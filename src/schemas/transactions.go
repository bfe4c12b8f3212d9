package schemas

import (
	"time"

	"agency/src/models"
)

type CreateTransactionRequest struct {
	PropertyID    string  `json:"propertyId"`
	Category      string  `json:"category,omitempty"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	Description   string  `json:"description,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	ReceiptNumber string  `json:"receiptNumber,omitempty"`
	ReceiptURL    string  `json:"receiptUrl,omitempty"`
	RecordedBy    string  `json:"recordedBy,omitempty"`
}

// ToModel converts the request into a ledger record. Date parsing errors are
// returned so the handler can reject with 422.
func (r *CreateTransactionRequest) ToModel() (*models.Transaction, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}
	return &models.Transaction{
		PropertyID:    r.PropertyID,
		Category:      models.TransactionCategory(r.Category),
		Type:          r.Type,
		Amount:        r.Amount,
		Date:          date,
		Description:   r.Description,
		Notes:         r.Notes,
		ReceiptNumber: r.ReceiptNumber,
		ReceiptURL:    r.ReceiptURL,
		RecordedBy:    r.RecordedBy,
	}, nil
}

type CreateTransactionsBulkRequest struct {
	Transactions []CreateTransactionRequest `json:"transactions"`
}

// UpdateTransactionRequest carries a partial field merge; nil pointers leave
// the stored value untouched.
type UpdateTransactionRequest struct {
	Type          *string  `json:"type,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	Date          *string  `json:"date,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	ReceiptNumber *string  `json:"receiptNumber,omitempty"`
	ReceiptURL    *string  `json:"receiptUrl,omitempty"`
}

type TransactionResponse struct {
	ID            string    `json:"id"`
	PropertyID    string    `json:"propertyId"`
	Category      string    `json:"category"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	ReceiptNumber string    `json:"receiptNumber,omitempty"`
	ReceiptURL    string    `json:"receiptUrl,omitempty"`
	RecordedBy    string    `json:"recordedBy,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewTransactionResponse(t *models.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:            t.ID,
		PropertyID:    t.PropertyID,
		Category:      string(t.Category),
		Type:          t.Type,
		Amount:        t.Amount,
		Date:          t.Date,
		Description:   t.Description,
		Notes:         t.Notes,
		ReceiptNumber: t.ReceiptNumber,
		ReceiptURL:    t.ReceiptURL,
		RecordedBy:    t.RecordedBy,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

type DeleteByPropertyResponse struct {
	Deleted int64 `json:"deleted"`
}
