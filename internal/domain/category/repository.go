package category

import "context"

// Repository defines the interface for category data access.
// GetByID returns (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, userID int64, params CreateParams) (*Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	ListByUserID(ctx context.Context, userID int64) ([]*Category, error)
	Update(ctx context.Context, id int64, params UpdateParams) (*Category, error)
	// Delete removes the category. Transactions referencing it keep
	// existing with their category reference cleared (FK ON DELETE SET NULL).
	Delete(ctx context.Context, id int64) error
	// UpsertByName creates the category or updates its type when the user
	// already has one with the same name. Used by the seeder.
	UpsertByName(ctx context.Context, userID int64, params CreateParams) (*Category, error)
}
