// Package httpapi holds the JSON plumbing shared by the entity handlers:
// response writers, request decoding, pagination, and the mapping from
// domain errors to HTTP statuses.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/fekuna/menu-service/internal/model"
	"github.com/fekuna/menu-service/pkg/logger"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing left to do for the client.
		_ = err
	}
}

// WriteError renders the error body shape the API promises: {"detail": "..."}.
func WriteError(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, map[string]string{"detail": detail})
}

// WriteDomainError maps usecase errors onto HTTP statuses. Not-found
// sentinels keep their message as the 404 detail; anything unexpected is
// logged and hidden behind a generic 500.
func WriteDomainError(w http.ResponseWriter, log logger.ZapLogger, err error) {
	switch {
	case errors.Is(err, model.ErrMenuNotFound),
		errors.Is(err, model.ErrSubMenuNotFound),
		errors.Is(err, model.ErrDishNotFound):
		WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInvalidPrice):
		WriteError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error("request failed", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// Pagination reads skip/limit query parameters with the API defaults
// (skip=0, limit=10). Malformed or negative values fall back to defaults.
func Pagination(r *http.Request) (int, int) {
	skip := defaultSkip
	limit := defaultLimit

	if raw := r.URL.Query().Get("skip"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			skip = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	return skip, limit
}
