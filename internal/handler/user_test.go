package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localprint/api/internal/database"
	"github.com/localprint/api/internal/model"
	"github.com/localprint/api/internal/service"
)

// ============================================================================
// Mock User Repository
// ============================================================================

type mockUserRepo struct {
	createFunc func(ctx context.Context, user *model.User) error
	listFunc   func(ctx context.Context, limit int) ([]*model.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) List(ctx context.Context, limit int) ([]*model.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return nil, nil
}

func newUserHandler(repo *mockUserRepo) *UserHandler {
	svc := service.NewUserService(service.UserServiceConfig{Repo: repo})
	return NewUserHandler(svc)
}

// ============================================================================
// CreateUser Tests
// ============================================================================

func TestUserHandler_CreateUser_Success(t *testing.T) {
	t.Parallel()

	repo := &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			user.ID = "user:new1"
			return nil
		},
	}
	h := newUserHandler(repo)

	rr := postJSON(t, h.CreateUser, "/api/users",
		`{"name":"Sanne de Vries","email":"sanne@example.com","city":"Rotterdam"}`)

	require.Equal(t, http.StatusCreated, rr.Code)

	body := decodeData(t, rr)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "user:new1", data["id"])
}

func TestUserHandler_CreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		},
	}
	h := newUserHandler(repo)

	rr := postJSON(t, h.CreateUser, "/api/users",
		`{"name":"Sanne de Vries","email":"sanne@example.com","city":"Rotterdam"}`)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestUserHandler_CreateUser_ValidationFailure(t *testing.T) {
	t.Parallel()

	h := newUserHandler(&mockUserRepo{})

	rr := postJSON(t, h.CreateUser, "/api/users", `{"name":"Sanne"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

// ============================================================================
// ListUsers Tests
// ============================================================================

func TestUserHandler_ListUsers_Success(t *testing.T) {
	t.Parallel()

	repo := &mockUserRepo{
		listFunc: func(ctx context.Context, limit int) ([]*model.User, error) {
			return []*model.User{
				{ID: "user:a", Name: "A"},
				{ID: "user:b", Name: "B"},
			}, nil
		},
	}
	h := newUserHandler(repo)

	rr := get(t, h.ListUsers, "/api/users")

	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeData(t, rr)
	assert.Equal(t, float64(2), body["count"])
}
