package category

import "context"

// Service contains the business logic for category operations.
// All operations are scoped to the owning user.
type Service struct {
	repo Repository
}

// NewService creates a new category service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all categories owned by the user.
func (s *Service) List(ctx context.Context, userID int64) ([]*Category, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// Create validates and stores a new category for the user.
func (s *Service) Create(ctx context.Context, userID int64, params CreateParams) (*Category, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, userID, params)
}

// Update applies a partial update after verifying ownership. A missing
// category and a category owned by another user both return ErrNotFound.
func (s *Service) Update(ctx context.Context, userID, categoryID int64, params UpdateParams) (*Category, error) {
	if err := s.checkOwnership(ctx, userID, categoryID); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, categoryID, params)
}

// Delete removes a category after verifying ownership.
func (s *Service) Delete(ctx context.Context, userID, categoryID int64) error {
	if err := s.checkOwnership(ctx, userID, categoryID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, categoryID)
}

func (s *Service) checkOwnership(ctx context.Context, userID, categoryID int64) error {
	c, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if c == nil || c.UserID != userID {
		return ErrNotFound
	}
	return nil
}
