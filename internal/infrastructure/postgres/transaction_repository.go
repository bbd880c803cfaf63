package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"fintrack/internal/domain/transaction"
)

type TransactionRepository struct {
	db *DB
}

// Ensure TransactionRepository implements transaction.Repository
var _ transaction.Repository = (*TransactionRepository)(nil)

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = "id, user_id, category_id, type, amount, description, date, created_at"

func (r *TransactionRepository) Create(ctx context.Context, userID int64, params transaction.CreateParams) (*transaction.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, category_id, type, amount, description, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + transactionColumns

	t, err := scanTransaction(r.db.QueryRowContext(
		ctx, query,
		userID, params.CategoryID, params.Type, params.Amount, params.Description, params.Date,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return t, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*transaction.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	t, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return t, nil
}

func (r *TransactionRepository) ListByUserID(ctx context.Context, userID int64) ([]*transaction.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]*transaction.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) Update(ctx context.Context, id int64, params transaction.UpdateParams) (*transaction.Transaction, error) {
	set := make([]string, 0, 5)
	args := []any{id}
	next := 2

	add := func(col string, val any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, next))
		args = append(args, val)
		next++
	}

	if params.Type != nil {
		add("type", *params.Type)
	}
	if params.Amount != nil {
		add("amount", *params.Amount)
	}
	if params.Description != nil {
		if *params.Description == "" {
			set = append(set, "description = NULL")
		} else {
			add("description", *params.Description)
		}
	}
	if params.Date != nil {
		add("date", *params.Date)
	}
	if params.CategoryID != nil {
		if *params.CategoryID == 0 {
			set = append(set, "category_id = NULL")
		} else {
			add("category_id", *params.CategoryID)
		}
	}

	// Nothing valid to merge; return the row unchanged.
	if len(set) == 0 {
		t, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, transaction.ErrNotFound
		}
		return t, nil
	}

	query := fmt.Sprintf(
		`UPDATE transactions SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(set, ", "), transactionColumns,
	)

	t, err := scanTransaction(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, transaction.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return t, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return transaction.ErrNotFound
	}
	return nil
}

func scanTransaction(row rowScanner) (*transaction.Transaction, error) {
	var t transaction.Transaction
	var categoryID sql.NullInt64
	var description sql.NullString

	err := row.Scan(&t.ID, &t.UserID, &categoryID, &t.Type, &t.Amount, &description, &t.Date, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		t.CategoryID = &categoryID.Int64
	}
	if description.Valid {
		t.Description = &description.String
	}
	return &t, nil
}
