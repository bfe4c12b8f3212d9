package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agency/src/api/controllers"
	"agency/src/api/handlers"
	"agency/src/repositories"
	"agency/src/schemas"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedgerController struct {
	lastQuery controllers.TransactionQuery
	err       error
}

func (f *fakeLedgerController) CreateTransaction(_ context.Context, req *schemas.CreateTransactionRequest) (*schemas.TransactionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &schemas.TransactionResponse{ID: "tx-1", PropertyID: req.PropertyID, Type: req.Type, Amount: req.Amount}, nil
}

func (f *fakeLedgerController) CreateTransactionsBulk(_ context.Context, req *schemas.CreateTransactionsBulkRequest) ([]*schemas.TransactionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*schemas.TransactionResponse, len(req.Transactions))
	for i := range req.Transactions {
		out[i] = &schemas.TransactionResponse{PropertyID: req.Transactions[i].PropertyID}
	}
	return out, nil
}

func (f *fakeLedgerController) GetPropertyTransactions(_ context.Context, propertyID string, query controllers.TransactionQuery) ([]*schemas.TransactionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastQuery = query
	return []*schemas.TransactionResponse{{PropertyID: propertyID}}, nil
}

func (f *fakeLedgerController) UpdateTransaction(_ context.Context, id string, _ *schemas.UpdateTransactionRequest) (*schemas.TransactionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &schemas.TransactionResponse{ID: id}, nil
}

func (f *fakeLedgerController) DeleteTransaction(context.Context, string) error {
	return f.err
}

func (f *fakeLedgerController) DeleteByProperty(context.Context, string) (int64, error) {
	return 3, f.err
}

func newLedgerRouter(fake *fakeLedgerController) *chi.Mux {
	handler := handlers.NewHandler(&controllers.Controllers{Ledger: fake}, logrus.New())
	router := chi.NewRouter()
	router.Post("/transactions", handler.CreateTransaction)
	router.Post("/transactions/bulk", handler.CreateTransactionsBulk)
	router.Get("/transactions/property/{id}", handler.GetPropertyTransactions)
	router.Delete("/transactions/{id}", handler.DeleteTransaction)
	router.Delete("/transactions/property/{id}", handler.DeleteTransactionsByProperty)
	return router
}

func TestCreateTransactionHandler(t *testing.T) {
	router := newLedgerRouter(&fakeLedgerController{})

	body := `{"propertyId":"prop-1","type":"rental_income","amount":100,"date":"2024-02-01"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp schemas.TransactionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "prop-1", resp.PropertyID)
}

func TestCreateTransactionHandlerBadJSON(t *testing.T) {
	router := newLedgerRouter(&fakeLedgerController{})

	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTransactionsBulkRejectsEmptyList(t *testing.T) {
	router := newLedgerRouter(&fakeLedgerController{})

	req := httptest.NewRequest(http.MethodPost, "/transactions/bulk", strings.NewReader(`{"transactions":[]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPropertyTransactionsQueryParsing(t *testing.T) {
	fake := &fakeLedgerController{}
	router := newLedgerRouter(fake)

	t.Run("date range", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/transactions/property/prop-1?from=2024-01-01&to=2024-06-30", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, fake.lastQuery.From)
		require.NotNil(t, fake.lastQuery.To)
		assert.Equal(t, "2024-01-01", fake.lastQuery.From.Format("2006-01-02"))
	})

	t.Run("category filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/transactions/property/prop-1?category=expense", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "expense", fake.lastQuery.Category)
	})

	t.Run("malformed range is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/transactions/property/prop-1?from=01-01-2024&to=2024-06-30", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestHandlerErrorMapping(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		router := newLedgerRouter(&fakeLedgerController{err: repositories.ErrNotFound})
		req := httptest.NewRequest(http.MethodGet, "/transactions/property/prop-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid record maps to 422", func(t *testing.T) {
		router := newLedgerRouter(&fakeLedgerController{err: repositories.ErrInvalidRecord})
		body := `{"propertyId":"prop-1","type":"bad","amount":1,"date":"2024-02-01"}`
		req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestDeleteTransactionsByProperty(t *testing.T) {
	router := newLedgerRouter(&fakeLedgerController{})

	req := httptest.NewRequest(http.MethodDelete, "/transactions/property/prop-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp schemas.DeleteByPropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Deleted)
}
