package handlers

import (
	"context"
	"net/http"
	"time"

	"agency/src/api/controllers"
	"agency/src/schemas"
	"agency/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	var req schemas.CreateTransactionRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	transaction, err := h.Controllers.Ledger.CreateTransaction(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, transaction, http.StatusCreated)
}

func (h *Handler) CreateTransactionsBulk(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	var req schemas.CreateTransactionsBulkRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	if len(req.Transactions) == 0 {
		h.HandleErrors(w, utils.BadRequest("transactions list is empty"))
		return
	}

	transactions, err := h.Controllers.Ledger.CreateTransactionsBulk(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, transactions, http.StatusCreated)
}

func (h *Handler) GetPropertyTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		h.HandleErrors(w, utils.BadRequest("missing property id"))
		return
	}

	query := controllers.TransactionQuery{
		Category: r.URL.Query().Get("category"),
		Type:     r.URL.Query().Get("type"),
	}

	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr != "" && toStr != "" {
		from, err := time.Parse(utils.ShortDashDateLayout, fromStr)
		if err != nil {
			h.HandleErrors(w, utils.UnprocessableEntity("from must be YYYY-MM-DD"))
			return
		}
		to, err := time.Parse(utils.ShortDashDateLayout, toStr)
		if err != nil {
			h.HandleErrors(w, utils.UnprocessableEntity("to must be YYYY-MM-DD"))
			return
		}
		query.From = &from
		query.To = &to
	}

	transactions, err := h.Controllers.Ledger.GetPropertyTransactions(ctx, propertyID, query)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, transactions, http.StatusOK)
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	id := chi.URLParam(r, "id")
	var req schemas.UpdateTransactionRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	transaction, err := h.Controllers.Ledger.UpdateTransaction(ctx, id, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, transaction, http.StatusOK)
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	id := chi.URLParam(r, "id")
	if err := h.Controllers.Ledger.DeleteTransaction(ctx, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteTransactionsByProperty(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	propertyID := chi.URLParam(r, "id")
	deleted, err := h.Controllers.Ledger.DeleteByProperty(ctx, propertyID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, schemas.DeleteByPropertyResponse{Deleted: deleted}, http.StatusOK)
}
