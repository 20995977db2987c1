package service

import (
	"context"
	"fmt"
	"math"

	"github.com/localprint/api/internal/model"
)

// ReviewRepository defines the interface for review storage
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	ListByProvider(ctx context.Context, providerID string, limit int) ([]*model.Review, error)
	GetAllByProvider(ctx context.Context, providerID string) ([]*model.Review, error)
}

// ReviewService handles review creation and provider rating aggregation
type ReviewService struct {
	reviews   ReviewRepository
	providers ProviderRepository
}

// ReviewServiceConfig holds configuration for the review service
type ReviewServiceConfig struct {
	ReviewRepo   ReviewRepository
	ProviderRepo ProviderRepository
}

// NewReviewService creates a new review service
func NewReviewService(cfg ReviewServiceConfig) *ReviewService {
	return &ReviewService{
		reviews:   cfg.ReviewRepo,
		providers: cfg.ProviderRepo,
	}
}

// Create validates a review, verifies the provider reference, persists the
// review, and recomputes the provider's rating aggregate from the full review
// set.
//
// The recomputation deliberately rereads every review instead of updating a
// running sum: the write costs one extra scan, and in exchange a stale or
// corrupted aggregate on the provider is corrected by the very next review.
// The insert and the aggregate write are separate per-document operations;
// see resolveProvider for why the absence of a transaction is acceptable.
func (s *ReviewService) Create(ctx context.Context, req *model.CreateReviewRequest) (*model.Review, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	provider, err := resolveProvider(ctx, s.providers, req.ProviderID)
	if err != nil {
		return nil, err
	}

	review := req.ToReview()
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.recomputeAggregates(ctx, provider.ID); err != nil {
		return nil, err
	}

	return review, nil
}

// ListByProvider retrieves reviews for a provider, capped at limit. Result
// ordering is store-native and unspecified.
func (s *ReviewService) ListByProvider(ctx context.Context, providerID string, limit int) ([]*model.Review, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}
	return s.reviews.ListByProvider(ctx, providerID, limit)
}

// recomputeAggregates rescans the provider's reviews and writes the derived
// (rating, reviews_count) pair back onto the provider record.
func (s *ReviewService) recomputeAggregates(ctx context.Context, providerID string) error {
	all, err := s.reviews.GetAllByProvider(ctx, providerID)
	if err != nil {
		return fmt.Errorf("failed to load reviews for aggregation: %w", err)
	}

	rating := 0.0
	if len(all) > 0 {
		sum := 0
		for _, rv := range all {
			sum += rv.Rating
		}
		rating = roundRating(float64(sum) / float64(len(all)))
	}

	if err := s.providers.UpdateAggregates(ctx, providerID, rating, len(all)); err != nil {
		return fmt.Errorf("failed to update provider rating: %w", err)
	}
	return nil
}

// roundRating rounds a mean rating to 2 decimal digits, half away from zero
// (so 3.125 becomes 3.13). math.Round is the half-away-from-zero primitive.
func roundRating(mean float64) float64 {
	return math.Round(mean*100) / 100
}
