package service

import (
	"context"
	"fmt"

	"github.com/localprint/api/internal/model"
)

// List limits. The listing API has no pagination; results are simply capped.
const (
	DefaultListLimit = 50
	MaxListLimit     = 50
)

// ProviderRepository defines the interface for provider storage
type ProviderRepository interface {
	Create(ctx context.Context, provider *model.Provider) error
	GetByID(ctx context.Context, id string) (*model.Provider, error)
	List(ctx context.Context, city string, limit int) ([]*model.Provider, error)
	UpdateAggregates(ctx context.Context, id string, rating float64, reviewsCount int) error
}

// ProviderService handles provider listing business logic
type ProviderService struct {
	repo ProviderRepository
}

// ProviderServiceConfig holds configuration for the provider service
type ProviderServiceConfig struct {
	Repo ProviderRepository
}

// NewProviderService creates a new provider service
func NewProviderService(cfg ProviderServiceConfig) *ProviderService {
	return &ProviderService{
		repo: cfg.Repo,
	}
}

// Create validates and persists a new provider listing. The derived rating
// aggregates always start at zero; caller-supplied values are discarded by
// ToProvider.
func (s *ProviderService) Create(ctx context.Context, req *model.CreateProviderRequest) (*model.Provider, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	provider := req.ToProvider()
	if err := s.repo.Create(ctx, provider); err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	return provider, nil
}

// List retrieves provider listings. city, when non-empty, is matched as a
// case-insensitive substring of each provider's city field. Result ordering
// is store-native and unspecified.
func (s *ProviderService) List(ctx context.Context, city string, limit int) ([]*model.Provider, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}
	return s.repo.List(ctx, city, limit)
}
