package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"anacarlita-backend/internal/logger"
	"anacarlita-backend/internal/repository"
	"anacarlita-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps service and repository errors onto HTTP statuses in one
// place so handlers stay thin.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidDateRange):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrDatesUnavailable),
		errors.Is(err, service.ErrItemNotBookable),
		errors.Is(err, service.ErrBookingNotCancellable):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// parseDate reads a calendar date from a request. Plain dates are the
// common case; full timestamps are accepted so calendar clients can pass
// instants through unchanged.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
