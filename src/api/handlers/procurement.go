package handlers

import (
	"context"
	"net/http"
	"time"

	"agency/src/schemas"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	var req schemas.CreatePurchaseOrderRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	order, err := h.Controllers.Procurement.CreateOrder(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, order, http.StatusCreated)
}

func (h *Handler) GetPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	order, err := h.Controllers.Procurement.GetOrder(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, order, http.StatusOK)
}

func (h *Handler) ListPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	orders, err := h.Controllers.Procurement.ListOrders(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, orders, http.StatusOK)
}

func (h *Handler) IssuePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	order, err := h.Controllers.Procurement.IssueOrder(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, order, http.StatusOK)
}

func (h *Handler) CancelPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	order, err := h.Controllers.Procurement.CancelOrder(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, order, http.StatusOK)
}

func (h *Handler) ReceiveGoods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	var req schemas.ReceiveGoodsRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	grn, err := h.Controllers.Procurement.ReceiveGoods(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, grn, http.StatusCreated)
}

func (h *Handler) GetGRN(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	grn, err := h.Controllers.Procurement.GetGRN(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, grn, http.StatusOK)
}
