package services

import (
	"context"
	"fmt"

	"github.com/ghuser/shareit/pkg/logger"
	"github.com/ghuser/shareit/services/user/domain/models"
	"github.com/ghuser/shareit/services/user/domain/repositories"
)

// UserService implements user CRUD.
type UserService struct {
	repo repositories.UserRepository
	log  logger.Logger
}

// NewUserService returns a UserService wired with the given repository.
func NewUserService(repo repositories.UserRepository, log logger.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Create registers a user. Duplicate emails fail with ErrEmailTaken.
func (s *UserService) Create(ctx context.Context, name, email string) (*models.User, error) {
	u, err := models.NewUser(name, email)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	s.log.InfoContext(ctx, "user created", "user_id", u.ID)
	return u, nil
}

// Update applies a partial patch; blank fields are ignored.
func (s *UserService) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	if !u.Apply(patch) {
		return u, nil
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return u, nil
}

// GetByID returns a user or ErrUserNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Delete removes a user. A missing ID fails with ErrUserNotFound.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	s.log.InfoContext(ctx, "user deleted", "user_id", id)
	return nil
}
