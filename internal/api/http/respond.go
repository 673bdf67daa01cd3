package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"parnika-backend/internal/domain"
	"parnika-backend/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors onto HTTP statuses. Provider write
// failures keep their message: the admin console shows it instead of
// pretending the write succeeded.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateInvoice),
		errors.Is(err, service.ErrRequestHasInvoice):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrInvalidProduct),
		errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrInvalidStatusTransition):
		status = http.StatusBadRequest
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
