package http

import (
	"net/http"

	"fintrack/internal/domain/stock"
	"fintrack/internal/shared/validate"
)

type StockHandler struct {
	service *stock.Service
}

func NewStockHandler(service *stock.Service) *StockHandler {
	return &StockHandler{service: service}
}

var multipleQuotesSchema = validate.Schema{Fields: []validate.Field{
	{Name: "symbols", Kind: validate.StringList, Required: true, MaxItems: stock.MaxBatchSize},
}}

// HandleQuote returns a real-time quote for a single symbol.
func (h *StockHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	quote, err := h.service.Quote(r.Context(), r.URL.Query().Get("symbol"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, quote)
}

// HandleSearch looks up symbols matching the given keywords.
func (h *StockHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	results, err := h.service.Search(r.Context(), r.URL.Query().Get("keywords"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, results)
}

// HandleQuotes fetches quotes for a batch of symbols supplied in the
// request body.
func (h *StockHandler) HandleQuotes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	body, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cleaned, err := multipleQuotesSchema.Apply(body)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	symbols, _ := validate.StrList(cleaned, "symbols")
	quotes, err := h.service.MultipleQuotes(r.Context(), symbols)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, quotes)
}
