package repository

import (
	"context"
	"errors"

	"github.com/localprint/api/internal/database"
	"github.com/localprint/api/internal/model"
)

// ProviderRepository handles provider data access
type ProviderRepository struct {
	db database.Database
}

// NewProviderRepository creates a new provider repository
func NewProviderRepository(db database.Database) *ProviderRepository {
	return &ProviderRepository{db: db}
}

// Create creates a new provider listing
func (r *ProviderRepository) Create(ctx context.Context, provider *model.Provider) error {
	query := `
		CREATE provider CONTENT {
			display_name: $display_name,
			city: $city,
			description: $description,
			price_per_page: $price_per_page,
			color_supported: $color_supported,
			duplex: $duplex,
			rating: $rating,
			reviews_count: $reviews_count,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"display_name":    provider.DisplayName,
		"city":            provider.City,
		"description":     provider.Description,
		"price_per_page":  provider.PricePerPage,
		"color_supported": provider.ColorSupported,
		"duplex":          provider.Duplex,
		"rating":          provider.Rating,
		"reviews_count":   provider.ReviewsCount,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	row, err := createdRow(result)
	if err != nil {
		return err
	}

	provider.ID = recordIDString(row["id"])
	provider.CreatedOn = getTime(row, "created_on")
	return nil
}

// GetByID retrieves a provider by ID. Returns (nil, nil) when no such
// provider exists.
func (r *ProviderRepository) GetByID(ctx context.Context, id string) (*model.Provider, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	return parseProviderRow(row), nil
}

// List retrieves providers, optionally filtered by a case-insensitive
// substring match on city. Ordering is store-native and unspecified.
func (r *ProviderRepository) List(ctx context.Context, city string, limit int) ([]*model.Provider, error) {
	query := `SELECT * FROM provider LIMIT $limit`
	vars := map[string]interface{}{"limit": limit}

	if city != "" {
		query = `
			SELECT * FROM provider
			WHERE string::contains(string::lowercase(city), string::lowercase($city))
			LIMIT $limit
		`
		vars["city"] = city
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	providers := make([]*model.Provider, 0)
	for _, row := range rowsFromResult(result) {
		providers = append(providers, parseProviderRow(row))
	}
	return providers, nil
}

// UpdateAggregates writes the derived (rating, reviews_count) pair back onto
// a provider record. The write replaces both values unconditionally so a
// stale aggregate is always corrected by the next recomputation.
func (r *ProviderRepository) UpdateAggregates(ctx context.Context, id string, rating float64, reviewsCount int) error {
	query := `
		UPDATE type::record($id) SET
			rating = $rating,
			reviews_count = $reviews_count
	`
	vars := map[string]interface{}{
		"id":            id,
		"rating":        rating,
		"reviews_count": reviewsCount,
	}

	return r.db.Execute(ctx, query, vars)
}

func parseProviderRow(row map[string]interface{}) *model.Provider {
	return &model.Provider{
		ID:             recordIDString(row["id"]),
		DisplayName:    getString(row, "display_name"),
		City:           getString(row, "city"),
		Description:    getStringPtr(row, "description"),
		PricePerPage:   getFloat(row, "price_per_page"),
		ColorSupported: getBool(row, "color_supported"),
		Duplex:         getBool(row, "duplex"),
		Rating:         getFloat(row, "rating"),
		ReviewsCount:   getInt(row, "reviews_count"),
		CreatedOn:      getTime(row, "created_on"),
	}
}
