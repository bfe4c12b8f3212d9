package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"agency/src/api/controllers"
	"agency/src/repositories"
	"agency/src/utils"

	"github.com/sirupsen/logrus"
)

const requestTimeout = 10 // seconds

type Handler struct {
	Controllers *controllers.Controllers
	Logger      *logrus.Logger
}

func NewHandler(ctrls *controllers.Controllers, logger *logrus.Logger) *Handler {
	return &Handler{Controllers: ctrls, Logger: logger}
}

func Healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
	case errors.As(err, &httpErr):
		h.respond(w, nil, map[string]string{"error": httpErr.Message}, httpErr.Code)
	case errors.Is(err, repositories.ErrNotFound):
		h.respond(w, nil, map[string]string{"error": err.Error()}, http.StatusNotFound)
	case errors.Is(err, repositories.ErrInvalidRecord):
		h.respond(w, nil, map[string]string{"error": err.Error()}, http.StatusUnprocessableEntity)
	case err != nil:
		h.Logger.WithError(err).Error("unhandled request error")
		h.respond(w, nil, map[string]string{"error": err.Error()}, http.StatusInternalServerError)
	default:
		h.respond(w, nil, map[string]string{"error": "Unhandled error"}, http.StatusInternalServerError)
	}
}

func (h *Handler) decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return utils.BadRequest("invalid JSON body")
	}
	return nil
}
