package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"fintrack/internal/domain/category"
	"fintrack/internal/domain/exchange"
	"fintrack/internal/domain/stock"
	"fintrack/internal/domain/transaction"
	"fintrack/internal/shared/validate"
)

// Envelope shared by every endpoint: success responses carry data,
// failures carry a message.
type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(successEnvelope{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorEnvelope{Success: false, Message: message})
}

// respondDomainError maps domain errors to HTTP statuses. Upstream
// messages are surfaced verbatim; unclassified errors are logged and
// hidden behind a generic 500.
func respondDomainError(w http.ResponseWriter, err error) {
	var validationErr *validate.Error
	var upstreamErr *exchange.UpstreamError

	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, transaction.ErrNotFound), errors.Is(err, category.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, stock.ErrRateLimited):
		respondError(w, http.StatusTooManyRequests, "API call frequency limit reached. Please try again later.")
	case errors.Is(err, stock.ErrUnavailable), errors.Is(err, exchange.ErrUnavailable):
		log.Printf("Upstream provider unavailable: %v", err)
		respondError(w, http.StatusBadGateway, "upstream provider unavailable")
	case errors.Is(err, stock.ErrInvalidSymbol):
		respondError(w, http.StatusBadRequest, "Invalid stock symbol or API error")
	case errors.Is(err, stock.ErrNoData):
		respondError(w, http.StatusBadRequest, "Stock data not available")
	case errors.As(err, &upstreamErr):
		respondError(w, http.StatusBadRequest, upstreamErr.Error())
	default:
		log.Printf("Unhandled error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody decodes a JSON request body into a map for schema
// validation.
func decodeBody(r *http.Request) (map[string]any, error) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}
