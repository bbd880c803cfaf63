package transaction

import (
	"context"
	"time"
)

// Service contains the business logic for transaction operations.
// All operations are scoped to the owning user.
type Service struct {
	repo Repository
}

// NewService creates a new transaction service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the user's transactions, most recent occurrence first.
func (s *Service) List(ctx context.Context, userID int64) ([]*Transaction, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// Create validates and stores a new transaction. The occurrence date
// defaults to the current time when omitted; the creation timestamp is
// always server-assigned.
func (s *Service) Create(ctx context.Context, userID int64, params CreateParams) (*Transaction, error) {
	if params.Date.IsZero() {
		params.Date = time.Now()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, userID, params)
}

// Get returns a single transaction. A missing transaction and one owned
// by another user both return ErrNotFound.
func (s *Service) Get(ctx context.Context, userID, transactionID int64) (*Transaction, error) {
	t, err := s.repo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if t == nil || t.UserID != userID {
		return nil, ErrNotFound
	}
	return t, nil
}

// Update merges the supplied fields into the stored transaction.
// Individually invalid field values are dropped rather than rejected:
// a non-positive amount, an unknown type, or an over-long description
// leaves the prior value in place.
func (s *Service) Update(ctx context.Context, userID, transactionID int64, params UpdateParams) (*Transaction, error) {
	if _, err := s.Get(ctx, userID, transactionID); err != nil {
		return nil, err
	}

	if params.Type != nil && !IsValidType(*params.Type) {
		params.Type = nil
	}
	if params.Amount != nil && (*params.Amount <= 0 || *params.Amount > MaxAmount) {
		params.Amount = nil
	}
	if params.Description != nil && len(*params.Description) > MaxDescriptionLen {
		params.Description = nil
	}

	return s.repo.Update(ctx, transactionID, params)
}

// Delete removes a transaction under the same ownership rule as Get.
func (s *Service) Delete(ctx context.Context, userID, transactionID int64) error {
	if _, err := s.Get(ctx, userID, transactionID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, transactionID)
}
