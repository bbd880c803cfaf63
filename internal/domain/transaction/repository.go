package transaction

import "context"

// Repository defines the interface for transaction data access.
// GetByID returns (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, userID int64, params CreateParams) (*Transaction, error)
	GetByID(ctx context.Context, id int64) (*Transaction, error)
	// ListByUserID returns the user's transactions ordered by occurrence
	// date, most recent first.
	ListByUserID(ctx context.Context, userID int64) ([]*Transaction, error)
	Update(ctx context.Context, id int64, params UpdateParams) (*Transaction, error)
	Delete(ctx context.Context, id int64) error
}
