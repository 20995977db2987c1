package model

import "time"

// Provider represents a neighbor offering their home printer.
// Collection name: "provider".
//
// Rating and ReviewsCount are derived aggregates: they are recomputed from the
// review collection on every review write and are never taken from client
// input.
type Provider struct {
	ID             string    `json:"id"`
	DisplayName    string    `json:"display_name"`
	City           string    `json:"city"`
	Description    *string   `json:"description,omitempty"`
	PricePerPage   float64   `json:"price_per_page"`
	ColorSupported bool      `json:"color_supported"`
	Duplex         bool      `json:"duplex"`
	Rating         float64   `json:"rating"`
	ReviewsCount   int       `json:"reviews_count"`
	CreatedOn      time.Time `json:"created_on"`
}

// Provider constraints
const (
	MaxRating = 5.0
)

// CreateProviderRequest represents a request to create a provider listing.
//
// Rating and ReviewsCount are accepted so that clients echoing a full provider
// document back to us don't get rejected, but their values are discarded: the
// server always starts a listing at 0.0 / 0.
type CreateProviderRequest struct {
	DisplayName    string   `json:"display_name"`
	City           string   `json:"city"`
	Description    *string  `json:"description,omitempty"`
	PricePerPage   *float64 `json:"price_per_page"`
	ColorSupported *bool    `json:"color_supported,omitempty"`
	Duplex         *bool    `json:"duplex,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
	ReviewsCount   *int     `json:"reviews_count,omitempty"`
}

// Validate checks if the create request is valid
func (r *CreateProviderRequest) Validate() []FieldError {
	var errors []FieldError

	if r.DisplayName == "" {
		errors = append(errors, FieldError{Field: "display_name", Message: "display_name is required"})
	}
	if r.City == "" {
		errors = append(errors, FieldError{Field: "city", Message: "city is required"})
	}
	if r.PricePerPage == nil {
		errors = append(errors, FieldError{Field: "price_per_page", Message: "price_per_page is required"})
	} else if *r.PricePerPage < 0 {
		errors = append(errors, FieldError{Field: "price_per_page", Message: "price_per_page must be 0 or greater"})
	}

	return errors
}

// ToProvider builds the Provider record to persist, applying defaults for
// optional fields and forcing the derived aggregates to zero regardless of
// what the caller supplied.
func (r *CreateProviderRequest) ToProvider() *Provider {
	p := &Provider{
		DisplayName:    r.DisplayName,
		City:           r.City,
		Description:    r.Description,
		ColorSupported: true,
		Duplex:         true,
		Rating:         0.0,
		ReviewsCount:   0,
	}
	if r.PricePerPage != nil {
		p.PricePerPage = *r.PricePerPage
	}
	if r.ColorSupported != nil {
		p.ColorSupported = *r.ColorSupported
	}
	if r.Duplex != nil {
		p.Duplex = *r.Duplex
	}
	return p
}
