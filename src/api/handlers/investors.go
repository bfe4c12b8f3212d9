package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"agency/src/schemas"
	"agency/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateInvestor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	var req schemas.CreateInvestorRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	investor, err := h.Controllers.Investors.CreateInvestor(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, investor, http.StatusCreated)
}

func (h *Handler) GetInvestors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	investors, err := h.Controllers.Investors.GetInvestors(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, investors, http.StatusOK)
}

func (h *Handler) AddInvestorStake(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	var req schemas.CreateStakeRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	stake, err := h.Controllers.Investors.AddStake(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, stake, http.StatusCreated)
}

func (h *Handler) GetInvestorStatement(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	statement, err := h.Controllers.Investors.GetStatement(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, statement, http.StatusOK)
}

// ExportInvestorStatement streams the statement as csv (default) or xlsx,
// selected by the format query parameter.
func (h *Handler) ExportInvestorStatement(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	investorID := chi.URLParam(r, "id")
	switch format := r.URL.Query().Get("format"); format {
	case "", "csv":
		data, err := h.Controllers.Investors.ExportStatementCSV(ctx, investorID)
		if err != nil {
			h.HandleErrors(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=statement_%s.csv", investorID))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	case "xlsx":
		file, err := h.Controllers.Investors.ExportStatementXLSX(ctx, investorID)
		if err != nil {
			h.HandleErrors(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=statement_%s.xlsx", investorID))
		w.WriteHeader(http.StatusOK)
		if err := file.Write(w); err != nil {
			h.Logger.WithError(err).Error("failed to stream xlsx statement")
		}
	default:
		h.HandleErrors(w, utils.BadRequest("format must be csv or xlsx"))
	}
}
