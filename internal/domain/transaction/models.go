package transaction

import (
	"errors"
	"time"

	"fintrack/internal/shared/validate"
)

// Transaction types. The type determines sign semantics at aggregation
// time; amounts are always stored positive.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Validation bounds
const (
	MaxAmount         = 999999999.99
	MaxDescriptionLen = 255
)

// ErrNotFound is returned when a transaction does not exist or is not
// owned by the requesting user. Ownership and existence failures are
// deliberately indistinguishable to the caller.
var ErrNotFound = errors.New("transaction not found")

// Transaction is a single financial event owned by one user. CategoryID
// is nullable: the referenced category may be deleted independently.
type Transaction struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	CategoryID  *int64    `json:"categoryId"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateParams contains parameters for recording a new transaction.
// A zero Date means "now"; the service fills it in.
type CreateParams struct {
	Type        string
	Amount      float64
	Description *string
	Date        time.Time
	CategoryID  *int64
}

// Validate checks the creation constraints. CategoryID is not
// referentially checked here; the schema clears dangling references.
func (p CreateParams) Validate() error {
	if !IsValidType(p.Type) {
		return &validate.Error{Field: "type", Reason: "must be one of: income, expense"}
	}
	if p.Amount <= 0 {
		return &validate.Error{Field: "amount", Reason: "must be a positive number"}
	}
	if p.Amount > MaxAmount {
		return &validate.Error{Field: "amount", Reason: "exceeds the maximum supported amount"}
	}
	if p.Description != nil && len(*p.Description) > MaxDescriptionLen {
		return &validate.Error{Field: "description", Reason: "must be at most 255 characters"}
	}
	return nil
}

// UpdateParams contains the optional fields of a partial transaction
// update. Nil fields are left unchanged. A CategoryID of 0 clears the
// category reference.
type UpdateParams struct {
	Type        *string
	Amount      *float64
	Description *string
	Date        *time.Time
	CategoryID  *int64
}

// IsValidType reports whether t is a known transaction type.
func IsValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}
