package handlers

import (
	"context"
	"net/http"
	"time"

	"agency/src/repositories"
	"agency/src/schemas"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateListing(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	var req schemas.CreateListingRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	listing, err := h.Controllers.Listings.CreateListing(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, listing, http.StatusCreated)
}

func (h *Handler) GetListing(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	listing, err := h.Controllers.Listings.GetListing(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, listing, http.StatusOK)
}

func (h *Handler) GetListings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	filter := repositories.ListingFilter{
		PropertyType: r.URL.Query().Get("type"),
		City:         r.URL.Query().Get("city"),
		AreaUnit:     r.URL.Query().Get("areaUnit"),
	}
	listings, err := h.Controllers.Listings.GetListings(ctx, filter)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, listings, http.StatusOK)
}

func (h *Handler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	var req schemas.UpdateListingRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	listing, err := h.Controllers.Listings.UpdateListing(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, listing, http.StatusOK)
}

func (h *Handler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout*time.Second)
	defer cancel()

	if err := h.Controllers.Listings.DeleteListing(ctx, chi.URLParam(r, "id")); err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
