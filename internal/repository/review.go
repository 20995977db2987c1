package repository

import (
	"context"

	"github.com/localprint/api/internal/database"
	"github.com/localprint/api/internal/model"
)

// ReviewRepository handles review data access
type ReviewRepository struct {
	db database.Database
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db database.Database) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create creates a new review
func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		CREATE review CONTENT {
			provider_id: $provider_id,
			reviewer_name: $reviewer_name,
			rating: $rating,
			comment: $comment,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"provider_id":   review.ProviderID,
		"reviewer_name": review.ReviewerName,
		"rating":        review.Rating,
		"comment":       review.Comment,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	row, err := createdRow(result)
	if err != nil {
		return err
	}

	review.ID = recordIDString(row["id"])
	review.CreatedOn = getTime(row, "created_on")
	return nil
}

// ListByProvider retrieves reviews for a provider, capped at limit.
// Ordering is store-native and unspecified.
func (r *ReviewRepository) ListByProvider(ctx context.Context, providerID string, limit int) ([]*model.Review, error) {
	query := `
		SELECT * FROM review
		WHERE provider_id = $provider_id
		LIMIT $limit
	`
	vars := map[string]interface{}{
		"provider_id": providerID,
		"limit":       limit,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseReviewRows(result), nil
}

// GetAllByProvider retrieves every review for a provider with no cap. This is
// the correctness-sensitive full scan backing the rating recomputation; it
// must never be truncated.
func (r *ReviewRepository) GetAllByProvider(ctx context.Context, providerID string) ([]*model.Review, error) {
	query := `SELECT * FROM review WHERE provider_id = $provider_id`
	vars := map[string]interface{}{"provider_id": providerID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseReviewRows(result), nil
}

func parseReviewRows(result []interface{}) []*model.Review {
	reviews := make([]*model.Review, 0)
	for _, row := range rowsFromResult(result) {
		reviews = append(reviews, &model.Review{
			ID:           recordIDString(row["id"]),
			ProviderID:   getString(row, "provider_id"),
			ReviewerName: getString(row, "reviewer_name"),
			Rating:       getInt(row, "rating"),
			Comment:      getStringPtr(row, "comment"),
			CreatedOn:    getTime(row, "created_on"),
		})
	}
	return reviews
}
