package user

import "context"

// Repository defines the interface for user data access.
// GetByID and GetByEmail return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// UpsertByEmail creates the user or refreshes name/password for an
	// existing email. Used by the seeder.
	UpsertByEmail(ctx context.Context, params CreateParams) (*User, error)
}
