package handler

import (
	"net/http"

	"github.com/localprint/api/internal/model"
	"github.com/localprint/api/internal/service"
)

// UserHandler handles user registration endpoints
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser handles POST /api/users - register a user account
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.userService.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, CreatedResponse{ID: user.ID})
}

// ListUsers handles GET /api/users - list registered users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r)

	users, err := h.userService.List(r.Context(), limit)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, users, len(users))
}
