package category

import (
	"errors"
	"strings"
	"time"

	"fintrack/internal/shared/validate"
)

// Category types. Type fixes the polarity of every transaction filed
// under the category.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// ErrNotFound is returned when a category does not exist or is not owned
// by the requesting user. The two cases are indistinguishable on purpose
// so that existence never leaks across users.
var ErrNotFound = errors.New("category not found")

// Category is a user-defined grouping for transactions.
type Category struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateParams contains parameters for creating a category.
type CreateParams struct {
	Name string
	Type string
}

// Validate trims the name and checks the creation constraints.
func (p *CreateParams) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if len(p.Name) < 2 {
		return &validate.Error{Field: "name", Reason: "must be at least 2 characters"}
	}
	if !IsValidType(p.Type) {
		return &validate.Error{Field: "type", Reason: "must be one of: income, expense"}
	}
	return nil
}

// UpdateParams contains the optional fields of a partial category update.
// Nil fields are left unchanged.
type UpdateParams struct {
	Name *string
	Type *string
}

// Validate trims the supplied name and checks each supplied field.
func (p *UpdateParams) Validate() error {
	if p.Name != nil {
		trimmed := strings.TrimSpace(*p.Name)
		if len(trimmed) < 2 {
			return &validate.Error{Field: "name", Reason: "must be at least 2 characters"}
		}
		p.Name = &trimmed
	}
	if p.Type != nil && !IsValidType(*p.Type) {
		return &validate.Error{Field: "type", Reason: "must be one of: income, expense"}
	}
	return nil
}

// IsValidType reports whether t is a known category type.
func IsValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}
