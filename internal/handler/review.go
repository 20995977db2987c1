package handler

import (
	"net/http"

	"github.com/localprint/api/internal/model"
	"github.com/localprint/api/internal/service"
)

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// CreateReview handles POST /api/reviews - leave feedback for a provider
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReviewRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	review, err := h.reviewService.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, CreatedResponse{ID: review.ID})
}

// ListReviews handles GET /api/reviews - reviews for a provider. The
// provider_id query parameter is mandatory; there is no list-everything view.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	providerID := r.URL.Query().Get("provider_id")
	if providerID == "" {
		WriteError(w, model.NewBadRequestError("provider_id query parameter is required"))
		return
	}

	limit := parseLimit(r)

	reviews, err := h.reviewService.ListByProvider(r.Context(), providerID, limit)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, reviews, len(reviews))
}
