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

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	settings, err := h.Controllers.Settings.GetSettings(ctx, chi.URLParam(r, "userID"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, settings, http.StatusOK)
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	var req schemas.UpdateSettingsRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	settings, err := h.Controllers.Settings.UpdateSettings(ctx, chi.URLParam(r, "userID"), &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, settings, http.StatusOK)
}

func (h *Handler) GetSecurityLog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.HandleErrors(w, utils.BadRequest("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	entries, err := h.Controllers.Settings.GetSecurityLog(ctx, chi.URLParam(r, "userID"), limit)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, entries, http.StatusOK)
}
