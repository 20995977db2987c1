package repository

import (
	"context"
	"fmt"

	"github.com/localprint/api/internal/database"
	"github.com/localprint/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			name: $name,
			email: $email,
			city: $city,
			is_active: $is_active,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":      user.Name,
		"email":     user.Email,
		"city":      user.City,
		"is_active": user.IsActive,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}

	row, err := createdRow(result)
	if err != nil {
		return err
	}

	user.ID = recordIDString(row["id"])
	user.CreatedOn = getTime(row, "created_on")
	return nil
}

// List retrieves users, capped at limit. Ordering is store-native and
// unspecified.
func (r *UserRepository) List(ctx context.Context, limit int) ([]*model.User, error) {
	query := `SELECT * FROM user LIMIT $limit`
	vars := map[string]interface{}{"limit": limit}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0)
	for _, row := range rowsFromResult(result) {
		users = append(users, &model.User{
			ID:        recordIDString(row["id"]),
			Name:      getString(row, "name"),
			Email:     getString(row, "email"),
			City:      getString(row, "city"),
			IsActive:  getBool(row, "is_active"),
			CreatedOn: getTime(row, "created_on"),
		})
	}
	return users, nil
}
