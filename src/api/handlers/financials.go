package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"agency/src/services"
	"agency/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) financialsInput(r *http.Request) (services.FinancialsInput, error) {
	input := services.FinancialsInput{
		PropertyID: chi.URLParam(r, "id"),
	}
	if input.PropertyID == "" {
		return input, utils.BadRequest("missing property id")
	}

	if priceStr := r.URL.Query().Get("purchasePrice"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			return input, utils.UnprocessableEntity("purchasePrice must be a non-negative number")
		}
		input.PurchasePrice = price
	}

	if dateStr := r.URL.Query().Get("acquisitionDate"); dateStr != "" {
		date, err := time.Parse(utils.ShortDashDateLayout, dateStr)
		if err != nil {
			return input, utils.UnprocessableEntity("acquisitionDate must be YYYY-MM-DD")
		}
		input.AcquisitionDate = date
	}

	if valueStr := r.URL.Query().Get("currentValue"); valueStr != "" {
		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return input, utils.UnprocessableEntity("currentValue must be a number")
		}
		input.CurrentValue = &value
	}

	return input, nil
}

func (h *Handler) GetPropertyFinancials(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	input, err := h.financialsInput(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	snapshot, err := h.Controllers.Financials.GetPropertyFinancials(ctx, input)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, snapshot, http.StatusOK)
}

func (h *Handler) GetProfitBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	input, err := h.financialsInput(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	breakdown, err := h.Controllers.Financials.GetProfitBreakdown(ctx, input)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, breakdown, http.StatusOK)
}
