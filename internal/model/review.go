package model

import "time"

// Review represents a star rating left for a provider.
// Collection name: "review".
//
// ProviderID is a weak reference: it must point at an existing provider when
// the review is created, but no structural link is kept in the store.
type Review struct {
	ID           string    `json:"id"`
	ProviderID   string    `json:"provider_id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	CreatedOn    time.Time `json:"created_on"`
}

// Review constraints
const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// CreateReviewRequest represents a request to leave a review for a provider
type CreateReviewRequest struct {
	ProviderID   string  `json:"provider_id"`
	ReviewerName string  `json:"reviewer_name"`
	Rating       *int    `json:"rating"`
	Comment      *string `json:"comment,omitempty"`
}

// Validate checks if the create request is valid
func (r *CreateReviewRequest) Validate() []FieldError {
	var errors []FieldError

	if r.ProviderID == "" {
		errors = append(errors, FieldError{Field: "provider_id", Message: "provider_id is required"})
	}
	if r.ReviewerName == "" {
		errors = append(errors, FieldError{Field: "reviewer_name", Message: "reviewer_name is required"})
	}
	if r.Rating == nil {
		errors = append(errors, FieldError{Field: "rating", Message: "rating is required"})
	} else if *r.Rating < MinReviewRating || *r.Rating > MaxReviewRating {
		errors = append(errors, FieldError{Field: "rating", Message: "rating must be between 1 and 5"})
	}

	return errors
}

// ToReview builds the Review record to persist
func (r *CreateReviewRequest) ToReview() *Review {
	review := &Review{
		ProviderID:   r.ProviderID,
		ReviewerName: r.ReviewerName,
		Comment:      r.Comment,
	}
	if r.Rating != nil {
		review.Rating = *r.Rating
	}
	return review
}
