package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"agency/src/schemas"
	"agency/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) SchedulePayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	var req schemas.CreatePaymentRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	payment, err := h.Controllers.Payments.SchedulePayment(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, payment, http.StatusCreated)
}

// GetDuePayments lists payments due within the next N days (default 7).
func (h *Handler) GetDuePayments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	days := 7
	if raw := r.URL.Query().Get("withinDays"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.HandleErrors(w, utils.BadRequest("withinDays must be a positive integer"))
			return
		}
		days = parsed
	}

	payments, err := h.Controllers.Payments.GetDuePayments(ctx, time.Duration(days)*24*time.Hour)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, payments, http.StatusOK)
}

func (h *Handler) MarkPaymentPaid(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	payment, err := h.Controllers.Payments.MarkPaid(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, payment, http.StatusOK)
}
