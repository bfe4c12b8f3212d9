package controllers

import (
	"context"
	"time"

	"agency/src/models"
	"agency/src/repositories"
	"agency/src/schemas"
	"agency/src/utils"
)

// TransactionQuery narrows a property's ledger read. Zero values mean no
// filtering on that axis.
type TransactionQuery struct {
	Category string
	Type     string
	From     *time.Time
	To       *time.Time
}

type LedgerControllerI interface {
	CreateTransaction(ctx context.Context, req *schemas.CreateTransactionRequest) (*schemas.TransactionResponse, error)
	CreateTransactionsBulk(ctx context.Context, req *schemas.CreateTransactionsBulkRequest) ([]*schemas.TransactionResponse, error)
	GetPropertyTransactions(ctx context.Context, propertyID string, query TransactionQuery) ([]*schemas.TransactionResponse, error)
	UpdateTransaction(ctx context.Context, id string, req *schemas.UpdateTransactionRequest) (*schemas.TransactionResponse, error)
	DeleteTransaction(ctx context.Context, id string) error
	DeleteByProperty(ctx context.Context, propertyID string) (int64, error)
}

type LedgerController struct {
	transactions repositories.TransactionRepository
}

func NewLedgerController(transactions repositories.TransactionRepository) *LedgerController {
	return &LedgerController{transactions: transactions}
}

func (c *LedgerController) CreateTransaction(ctx context.Context, req *schemas.CreateTransactionRequest) (*schemas.TransactionResponse, error) {
	transaction, err := req.ToModel()
	if err != nil {
		return nil, utils.UnprocessableEntity("date must be YYYY-MM-DD")
	}
	if err := c.transactions.Create(ctx, transaction); err != nil {
		return nil, err
	}
	return schemas.NewTransactionResponse(transaction), nil
}

func (c *LedgerController) CreateTransactionsBulk(ctx context.Context, req *schemas.CreateTransactionsBulkRequest) ([]*schemas.TransactionResponse, error) {
	transactions := make([]*models.Transaction, 0, len(req.Transactions))
	for i := range req.Transactions {
		transaction, err := req.Transactions[i].ToModel()
		if err != nil {
			return nil, utils.UnprocessableEntity("date must be YYYY-MM-DD")
		}
		transactions = append(transactions, transaction)
	}

	if err := c.transactions.CreateMany(ctx, transactions); err != nil {
		return nil, err
	}

	responses := make([]*schemas.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, schemas.NewTransactionResponse(transaction))
	}
	return responses, nil
}

func (c *LedgerController) GetPropertyTransactions(ctx context.Context, propertyID string, query TransactionQuery) ([]*schemas.TransactionResponse, error) {
	var transactions []models.Transaction
	var err error

	switch {
	case query.From != nil && query.To != nil:
		transactions, err = c.transactions.GetByDateRange(ctx, propertyID, *query.From, *query.To)
	case query.Type != "":
		transactions, err = c.transactions.GetByType(ctx, propertyID, query.Type)
	case query.Category != "":
		transactions, err = c.transactions.GetByCategory(ctx, propertyID, models.TransactionCategory(query.Category))
	default:
		transactions, err = c.transactions.GetByProperty(ctx, propertyID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]*schemas.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, schemas.NewTransactionResponse(&transactions[i]))
	}
	return responses, nil
}

func (c *LedgerController) UpdateTransaction(ctx context.Context, id string, req *schemas.UpdateTransactionRequest) (*schemas.TransactionResponse, error) {
	var parseErr error
	updated, err := c.transactions.Update(ctx, id, func(t *models.Transaction) {
		if req.Type != nil {
			t.Type = *req.Type
		}
		if req.Amount != nil {
			t.Amount = *req.Amount
		}
		if req.Date != nil {
			date, err := time.Parse(utils.ShortDashDateLayout, *req.Date)
			if err != nil {
				parseErr = utils.UnprocessableEntity("date must be YYYY-MM-DD")
				return
			}
			t.Date = date
		}
		if req.Description != nil {
			t.Description = *req.Description
		}
		if req.Notes != nil {
			t.Notes = *req.Notes
		}
		if req.ReceiptNumber != nil {
			t.ReceiptNumber = *req.ReceiptNumber
		}
		if req.ReceiptURL != nil {
			t.ReceiptURL = *req.ReceiptURL
		}
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if err != nil {
		return nil, err
	}
	return schemas.NewTransactionResponse(updated), nil
}

func (c *LedgerController) DeleteTransaction(ctx context.Context, id string) error {
	found, err := c.transactions.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return utils.NotFound("transaction " + id + " not found")
	}
	return nil
}

func (c *LedgerController) DeleteByProperty(ctx context.Context, propertyID string) (int64, error) {
	return c.transactions.DeleteByProperty(ctx, propertyID)
}
