package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/internal/domain/transaction"
)

type mockTransactionRepo struct {
	CreateFunc       func(ctx context.Context, userID int64, params transaction.CreateParams) (*transaction.Transaction, error)
	GetByIDFunc      func(ctx context.Context, id int64) (*transaction.Transaction, error)
	ListByUserIDFunc func(ctx context.Context, userID int64) ([]*transaction.Transaction, error)
	UpdateFunc       func(ctx context.Context, id int64, params transaction.UpdateParams) (*transaction.Transaction, error)
	DeleteFunc       func(ctx context.Context, id int64) error
}

func (m *mockTransactionRepo) Create(ctx context.Context, userID int64, params transaction.CreateParams) (*transaction.Transaction, error) {
	return m.CreateFunc(ctx, userID, params)
}

func (m *mockTransactionRepo) GetByID(ctx context.Context, id int64) (*transaction.Transaction, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockTransactionRepo) ListByUserID(ctx context.Context, userID int64) ([]*transaction.Transaction, error) {
	return m.ListByUserIDFunc(ctx, userID)
}

func (m *mockTransactionRepo) Update(ctx context.Context, id int64, params transaction.UpdateParams) (*transaction.Transaction, error) {
	return m.UpdateFunc(ctx, id, params)
}

func (m *mockTransactionRepo) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

func TestHandleCreateTransaction(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid expense",
			body:       `{"type": "expense", "amount": 42.5, "description": "Coffee"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "valid with date and category",
			body:       `{"type": "income", "amount": 5000, "date": "2025-06-01", "categoryId": 3}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing type",
			body:       `{"amount": 42.5}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid type",
			body:       `{"type": "transfer", "amount": 42.5}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero amount",
			body:       `{"type": "expense", "amount": 0}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "amount not a number",
			body:       `{"type": "expense", "amount": "lots"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad date format",
			body:       `{"type": "expense", "amount": 10, "date": "June 1st"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured transaction.CreateParams
			repo := &mockTransactionRepo{
				CreateFunc: func(ctx context.Context, userID int64, params transaction.CreateParams) (*transaction.Transaction, error) {
					captured = params
					return &transaction.Transaction{ID: 1, UserID: userID, Type: params.Type, Amount: params.Amount, Date: params.Date}, nil
				},
			}
			handler := NewTransactionHandler(transaction.NewService(repo))

			rec := httptest.NewRecorder()
			handler.HandleTransactions(rec, authedRequest(http.MethodPost, "/api/transactions", tt.body, 7))

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d (body %s)", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.name == "valid with date and category" {
				if captured.CategoryID == nil || *captured.CategoryID != 3 {
					t.Error("expected category id 3 to be passed through")
				}
				want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
				if !captured.Date.Equal(want) {
					t.Errorf("expected date %v, got %v", want, captured.Date)
				}
			}
		})
	}
}

func TestHandleGetTransaction(t *testing.T) {
	repo := &mockTransactionRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*transaction.Transaction, error) {
			return &transaction.Transaction{ID: id, UserID: 7, Type: transaction.TypeExpense, Amount: 10}, nil
		},
	}
	handler := NewTransactionHandler(transaction.NewService(repo))

	req := authedRequest(http.MethodGet, "/api/transactions/5", "", 7)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	handler.HandleTransactionByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got transaction.Transaction
	decodeData(t, rec, &got)
	if got.ID != 5 {
		t.Errorf("expected transaction 5, got %d", got.ID)
	}
}

func TestHandleGetTransactionNotOwned(t *testing.T) {
	repo := &mockTransactionRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*transaction.Transaction, error) {
			return &transaction.Transaction{ID: id, UserID: 99}, nil
		},
	}
	handler := NewTransactionHandler(transaction.NewService(repo))

	req := authedRequest(http.MethodGet, "/api/transactions/5", "", 7)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	handler.HandleTransactionByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleUpdateTransactionDropsInvalidFields(t *testing.T) {
	var captured transaction.UpdateParams
	repo := &mockTransactionRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*transaction.Transaction, error) {
			return &transaction.Transaction{ID: id, UserID: 7, Type: transaction.TypeExpense, Amount: 10}, nil
		},
		UpdateFunc: func(ctx context.Context, id int64, params transaction.UpdateParams) (*transaction.Transaction, error) {
			captured = params
			return &transaction.Transaction{ID: id, UserID: 7}, nil
		},
	}
	handler := NewTransactionHandler(transaction.NewService(repo))

	body := `{"type": "transfer", "amount": -5, "description": "Updated"}`
	req := authedRequest(http.MethodPut, "/api/transactions/5", body, 7)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	handler.HandleTransactionByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", rec.Code, rec.Body.String())
	}
	if captured.Type != nil {
		t.Error("expected invalid type to be dropped")
	}
	if captured.Amount != nil {
		t.Error("expected invalid amount to be dropped")
	}
	if captured.Description == nil || *captured.Description != "Updated" {
		t.Error("expected valid description to be applied")
	}
}

func TestHandleUpdateTransactionClearsCategory(t *testing.T) {
	var captured transaction.UpdateParams
	repo := &mockTransactionRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*transaction.Transaction, error) {
			return &transaction.Transaction{ID: id, UserID: 7}, nil
		},
		UpdateFunc: func(ctx context.Context, id int64, params transaction.UpdateParams) (*transaction.Transaction, error) {
			captured = params
			return &transaction.Transaction{ID: id, UserID: 7}, nil
		},
	}
	handler := NewTransactionHandler(transaction.NewService(repo))

	req := authedRequest(http.MethodPut, "/api/transactions/5", `{"categoryId": null}`, 7)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	handler.HandleTransactionByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.CategoryID == nil || *captured.CategoryID != 0 {
		t.Error("expected explicit null to clear the category reference")
	}
}

func TestHandleDeleteTransaction(t *testing.T) {
	repo := &mockTransactionRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*transaction.Transaction, error) {
			return &transaction.Transaction{ID: id, UserID: 7}, nil
		},
		DeleteFunc: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	handler := NewTransactionHandler(transaction.NewService(repo))

	req := authedRequest(http.MethodDelete, "/api/transactions/5", "", 7)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	handler.HandleTransactionByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var data map[string]string
	decodeData(t, rec, &data)
	if data["message"] != "Transaction deleted" {
		t.Errorf("unexpected message %q", data["message"])
	}
}

func TestHandleListTransactions(t *testing.T) {
	repo := &mockTransactionRepo{
		ListByUserIDFunc: func(ctx context.Context, userID int64) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				{ID: 2, UserID: userID, Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
				{ID: 1, UserID: userID, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	handler := NewTransactionHandler(transaction.NewService(repo))

	rec := httptest.NewRecorder()
	handler.HandleTransactions(rec, authedRequest(http.MethodGet, "/api/transactions", "", 7))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var transactions []*transaction.Transaction
	decodeData(t, rec, &transactions)
	if len(transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(transactions))
	}
	if transactions[0].ID != 2 {
		t.Error("expected most recent transaction first")
	}
}
