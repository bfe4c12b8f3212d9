package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

const defaultTrendMonths = 6

func trendMonths(r *http.Request) int {
	monthsStr := r.URL.Query().Get("months")
	if monthsStr == "" {
		return defaultTrendMonths
	}
	months, err := strconv.Atoi(monthsStr)
	if err != nil || months <= 0 {
		return defaultTrendMonths
	}
	return months
}

func (h *Handler) GetPricePerUnit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	stats, err := h.Controllers.Market.PricePerUnit(ctx,
		r.URL.Query().Get("type"),
		r.URL.Query().Get("city"),
		r.URL.Query().Get("areaUnit"),
	)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, stats, http.StatusOK)
}

func (h *Handler) GetPriceTrends(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	trends, err := h.Controllers.Market.PriceTrends(ctx, trendMonths(r),
		r.URL.Query().Get("type"),
		r.URL.Query().Get("city"),
	)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, trends, http.StatusOK)
}

func (h *Handler) GetMarketVelocity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	velocity, err := h.Controllers.Market.Velocity(ctx,
		r.URL.Query().Get("type"),
		r.URL.Query().Get("city"),
	)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, velocity, http.StatusOK)
}

func (h *Handler) GetPriceDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	distribution, err := h.Controllers.Market.PriceDistribution(ctx,
		r.URL.Query().Get("type"),
		r.URL.Query().Get("city"),
	)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, distribution, http.StatusOK)
}

func (h *Handler) GetTrendDirection(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	direction, err := h.Controllers.Market.TrendDirection(ctx, trendMonths(r),
		r.URL.Query().Get("type"),
		r.URL.Query().Get("city"),
	)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, direction, http.StatusOK)
}
