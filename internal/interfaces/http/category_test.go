package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/domain/category"
)

type mockCategoryRepo struct {
	CreateFunc       func(ctx context.Context, userID int64, params category.CreateParams) (*category.Category, error)
	GetByIDFunc      func(ctx context.Context, id int64) (*category.Category, error)
	ListByUserIDFunc func(ctx context.Context, userID int64) ([]*category.Category, error)
	UpdateFunc       func(ctx context.Context, id int64, params category.UpdateParams) (*category.Category, error)
	DeleteFunc       func(ctx context.Context, id int64) error
	UpsertByNameFunc func(ctx context.Context, userID int64, params category.CreateParams) (*category.Category, error)
}

func (m *mockCategoryRepo) Create(ctx context.Context, userID int64, params category.CreateParams) (*category.Category, error) {
	return m.CreateFunc(ctx, userID, params)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id int64) (*category.Category, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockCategoryRepo) ListByUserID(ctx context.Context, userID int64) ([]*category.Category, error) {
	return m.ListByUserIDFunc(ctx, userID)
}

func (m *mockCategoryRepo) Update(ctx context.Context, id int64, params category.UpdateParams) (*category.Category, error) {
	return m.UpdateFunc(ctx, id, params)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockCategoryRepo) UpsertByName(ctx context.Context, userID int64, params category.CreateParams) (*category.Category, error) {
	return m.UpsertByNameFunc(ctx, userID, params)
}

func TestHandleListCategories(t *testing.T) {
	repo := &mockCategoryRepo{
		ListByUserIDFunc: func(ctx context.Context, userID int64) ([]*category.Category, error) {
			return []*category.Category{
				{ID: 1, UserID: userID, Name: "Salary", Type: category.TypeIncome},
				{ID: 2, UserID: userID, Name: "Rent", Type: category.TypeExpense},
			}, nil
		},
	}
	handler := NewCategoryHandler(category.NewService(repo))

	rec := httptest.NewRecorder()
	handler.HandleCategories(rec, authedRequest(http.MethodGet, "/api/categories", "", 7))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var categories []*category.Category
	decodeData(t, rec, &categories)
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
}

func TestHandleCreateCategory(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid",
			body:       `{"name": "Groceries", "type": "expense"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       `{"type": "expense"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "name too short",
			body:       `{"name": "a", "type": "expense"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid type",
			body:       `{"name": "Groceries", "type": "transfer"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCategoryRepo{
				CreateFunc: func(ctx context.Context, userID int64, params category.CreateParams) (*category.Category, error) {
					return &category.Category{ID: 10, UserID: userID, Name: params.Name, Type: params.Type}, nil
				},
			}
			handler := NewCategoryHandler(category.NewService(repo))

			rec := httptest.NewRecorder()
			handler.HandleCategories(rec, authedRequest(http.MethodPost, "/api/categories", tt.body, 7))

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d (body %s)", tt.wantStatus, rec.Code, rec.Body.String())
			}
			env := decodeEnvelope(t, rec)
			if tt.wantStatus == http.StatusCreated {
				if !env.Success {
					t.Error("expected success envelope")
				}
			} else {
				if env.Success {
					t.Error("expected failure envelope")
				}
				if env.Message == "" {
					t.Error("expected a message in the failure envelope")
				}
			}
		})
	}
}

func TestHandleUpdateCategoryNotFound(t *testing.T) {
	repo := &mockCategoryRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*category.Category, error) {
			// Owned by another user: indistinguishable from missing
			return &category.Category{ID: id, UserID: 99}, nil
		},
	}
	handler := NewCategoryHandler(category.NewService(repo))

	req := authedRequest(http.MethodPut, "/api/categories/5", `{"name": "Renamed"}`, 7)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	handler.HandleCategoryByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Success {
		t.Error("expected failure envelope")
	}
}

func TestHandleDeleteCategory(t *testing.T) {
	repo := &mockCategoryRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*category.Category, error) {
			return &category.Category{ID: id, UserID: 7}, nil
		},
		DeleteFunc: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	handler := NewCategoryHandler(category.NewService(repo))

	req := authedRequest(http.MethodDelete, "/api/categories/5", "", 7)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	handler.HandleCategoryByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var data map[string]string
	decodeData(t, rec, &data)
	if data["message"] != "Category deleted" {
		t.Errorf("unexpected message %q", data["message"])
	}
}

func TestHandleCategoryBadID(t *testing.T) {
	handler := NewCategoryHandler(category.NewService(&mockCategoryRepo{}))

	req := authedRequest(http.MethodDelete, "/api/categories/abc", "", 7)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	handler.HandleCategoryByID(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleCategoriesMethodNotAllowed(t *testing.T) {
	handler := NewCategoryHandler(category.NewService(&mockCategoryRepo{}))

	rec := httptest.NewRecorder()
	handler.HandleCategories(rec, authedRequest(http.MethodPatch, "/api/categories", "", 7))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
