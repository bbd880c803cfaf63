package http

import (
	"log"
	"net/http"
	"strconv"

	"fintrack/internal/domain/category"
	"fintrack/internal/shared/middleware"
	"fintrack/internal/shared/validate"
)

type CategoryHandler struct {
	service *category.Service
}

func NewCategoryHandler(service *category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

var createCategorySchema = validate.Schema{Fields: []validate.Field{
	{Name: "name", Kind: validate.String, Required: true, Trim: true, MinLen: 2},
	{Name: "type", Kind: validate.String, Required: true, Enum: []string{category.TypeIncome, category.TypeExpense}},
}}

var updateCategorySchema = validate.Schema{Fields: []validate.Field{
	{Name: "name", Kind: validate.String, Trim: true, MinLen: 2},
	{Name: "type", Kind: validate.String, Enum: []string{category.TypeIncome, category.TypeExpense}},
}}

// HandleCategories routes collection requests based on method.
func (h *CategoryHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// HandleCategoryByID routes requests for a specific category.
func (h *CategoryHandler) HandleCategoryByID(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		h.handleUpdate(w, r)
	case http.MethodDelete:
		h.handleDelete(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *CategoryHandler) handleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categories, err := h.service.List(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing categories for user %d: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
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

	cleaned, err := createCategorySchema.Apply(body)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	name, _ := validate.Str(cleaned, "name")
	typ, _ := validate.Str(cleaned, "type")

	c, err := h.service.Create(r.Context(), userID, category.CreateParams{Name: name, Type: typ})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, c)
}

func (h *CategoryHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categoryID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	body, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cleaned, err := updateCategorySchema.Apply(body)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	var params category.UpdateParams
	if name, ok := validate.Str(cleaned, "name"); ok {
		params.Name = &name
	}
	if typ, ok := validate.Str(cleaned, "type"); ok {
		params.Type = &typ
	}

	c, err := h.service.Update(r.Context(), userID, categoryID, params)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categoryID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := h.service.Delete(r.Context(), userID, categoryID); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Category deleted"})
}

// pathID extracts the numeric {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
