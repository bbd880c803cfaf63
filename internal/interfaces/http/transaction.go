package http

import (
	"log"
	"net/http"

	"fintrack/internal/domain/transaction"
	"fintrack/internal/shared/middleware"
	"fintrack/internal/shared/validate"
)

type TransactionHandler struct {
	service *transaction.Service
}

func NewTransactionHandler(service *transaction.Service) *TransactionHandler {
	return &TransactionHandler{service: service}
}

var createTransactionSchema = validate.Schema{Fields: []validate.Field{
	{Name: "type", Kind: validate.String, Required: true, Enum: []string{transaction.TypeIncome, transaction.TypeExpense}},
	{Name: "amount", Kind: validate.Number, Required: true, Min: validate.Float(0.01), Max: validate.Float(transaction.MaxAmount)},
	{Name: "description", Kind: validate.String, Trim: true, MaxLen: transaction.MaxDescriptionLen},
	{Name: "date", Kind: validate.Date},
	{Name: "categoryId", Kind: validate.Number},
}}

// HandleTransactions routes collection requests based on method.
func (h *TransactionHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// HandleTransactionByID routes requests for a specific transaction.
func (h *TransactionHandler) HandleTransactionByID(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPut:
		h.handleUpdate(w, r)
	case http.MethodDelete:
		h.handleDelete(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *TransactionHandler) handleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactions, err := h.service.List(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing transactions for user %d: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	body, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cleaned, err := createTransactionSchema.Apply(body)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	params := transaction.CreateParams{}
	params.Type, _ = validate.Str(cleaned, "type")
	params.Amount, _ = validate.Num(cleaned, "amount")
	if desc, ok := validate.Str(cleaned, "description"); ok && desc != "" {
		params.Description = &desc
	}
	if date, ok := validate.Time(cleaned, "date"); ok {
		params.Date = date
	}
	if id, ok := validate.Num(cleaned, "categoryId"); ok && id > 0 {
		categoryID := int64(id)
		params.CategoryID = &categoryID
	}

	t, err := h.service.Create(r.Context(), userID, params)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, t)
}

func (h *TransactionHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactionID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	t, err := h.service.Get(r.Context(), userID, transactionID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, t)
}

// handleUpdate merges the supplied fields. Fields that fail to decode
// into the expected shape are dropped, matching the service's
// ignore-invalid merge policy.
func (h *TransactionHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactionID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	body, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var params transaction.UpdateParams
	if v, ok := body["type"].(string); ok {
		params.Type = &v
	}
	if v, ok := body["amount"].(float64); ok {
		params.Amount = &v
	}
	if raw, present := body["description"]; present {
		// Explicit null or empty string clears the description.
		v, _ := raw.(string)
		params.Description = &v
	}
	if v, ok := body["date"].(string); ok {
		if date, err := validate.ParseDate(v); err == nil {
			params.Date = &date
		}
	}
	if raw, present := body["categoryId"]; present {
		// Explicit null or 0 clears the category reference.
		var categoryID int64
		if v, ok := raw.(float64); ok {
			categoryID = int64(v)
		}
		params.CategoryID = &categoryID
	}

	t, err := h.service.Update(r.Context(), userID, transactionID, params)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, t)
}

func (h *TransactionHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactionID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	if err := h.service.Delete(r.Context(), userID, transactionID); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted"})
}
