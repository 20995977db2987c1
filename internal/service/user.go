package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/localprint/api/internal/database"
	"github.com/localprint/api/internal/model"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context, limit int) ([]*model.User, error)
}

// UserService handles user registration business logic
type UserService struct {
	repo UserRepository
}

// UserServiceConfig holds configuration for the user service
type UserServiceConfig struct {
	Repo UserRepository
}

// NewUserService creates a new user service
func NewUserService(cfg UserServiceConfig) *UserService {
	return &UserService{
		repo: cfg.Repo,
	}
}

// Create validates and registers a new user
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	user := req.ToUser()
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// List retrieves registered users, capped at limit
func (s *UserService) List(ctx context.Context, limit int) ([]*model.User, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}
	return s.repo.List(ctx, limit)
}
