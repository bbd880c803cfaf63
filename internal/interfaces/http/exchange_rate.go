package http

import (
	"net/http"
	"strconv"

	"fintrack/internal/domain/exchange"
)

type ExchangeRateHandler struct {
	service *exchange.Service
}

func NewExchangeRateHandler(service *exchange.Service) *ExchangeRateHandler {
	return &ExchangeRateHandler{service: service}
}

// HandleLatest returns all rates relative to a base currency. The base
// defaults to USD when the query parameter is absent.
func (h *ExchangeRateHandler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	snapshot, err := h.service.LatestRates(r.Context(), r.URL.Query().Get("base"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// HandleConvert converts an amount between two currencies.
func (h *ExchangeRateHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	query := r.URL.Query()
	amount, err := strconv.ParseFloat(query.Get("amount"), 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "amount: must be a positive number")
		return
	}

	conversion, err := h.service.Convert(r.Context(), query.Get("from"), query.Get("to"), amount)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, conversion)
}

// HandlePair returns the conversion rate between two currencies.
func (h *ExchangeRateHandler) HandlePair(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	query := r.URL.Query()
	rate, err := h.service.PairRate(r.Context(), query.Get("from"), query.Get("to"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rate)
}

// HandleCodes returns the provider's supported currency catalogue.
func (h *ExchangeRateHandler) HandleCodes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	codes, err := h.service.SupportedCodes(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, codes)
}
