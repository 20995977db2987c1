package model

import "time"

// PrintColor represents the requested print mode
type PrintColor string

const (
	PrintColorBW    PrintColor = "bw"
	PrintColorColor PrintColor = "color"
)

// PrintRequest represents a lightweight request to contact a provider for a
// print job. Collection name: "printrequest".
type PrintRequest struct {
	ID             string     `json:"id"`
	ProviderID     string     `json:"provider_id"`
	RequesterName  string     `json:"requester_name"`
	RequesterEmail string     `json:"requester_email"`
	Pages          int        `json:"pages"`
	Color          PrintColor `json:"color"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedOn      time.Time  `json:"created_on"`
}

// CreatePrintRequestRequest represents a request to create a print request
type CreatePrintRequestRequest struct {
	ProviderID     string  `json:"provider_id"`
	RequesterName  string  `json:"requester_name"`
	RequesterEmail string  `json:"requester_email"`
	Pages          *int    `json:"pages"`
	Color          string  `json:"color,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// Validate checks if the create request is valid
func (r *CreatePrintRequestRequest) Validate() []FieldError {
	var errors []FieldError

	if r.ProviderID == "" {
		errors = append(errors, FieldError{Field: "provider_id", Message: "provider_id is required"})
	}
	if r.RequesterName == "" {
		errors = append(errors, FieldError{Field: "requester_name", Message: "requester_name is required"})
	}
	if r.RequesterEmail == "" {
		errors = append(errors, FieldError{Field: "requester_email", Message: "requester_email is required"})
	} else if !validEmail(r.RequesterEmail) {
		errors = append(errors, FieldError{Field: "requester_email", Message: "requester_email must be a valid email address"})
	}
	if r.Pages == nil {
		errors = append(errors, FieldError{Field: "pages", Message: "pages is required"})
	} else if *r.Pages < 1 {
		errors = append(errors, FieldError{Field: "pages", Message: "pages must be 1 or greater"})
	}
	if r.Color != "" && r.Color != string(PrintColorBW) && r.Color != string(PrintColorColor) {
		errors = append(errors, FieldError{Field: "color", Message: "color must be 'bw' or 'color'"})
	}

	return errors
}

// ToPrintRequest builds the PrintRequest record to persist, defaulting the
// color mode to black-and-white.
func (r *CreatePrintRequestRequest) ToPrintRequest() *PrintRequest {
	pr := &PrintRequest{
		ProviderID:     r.ProviderID,
		RequesterName:  r.RequesterName,
		RequesterEmail: r.RequesterEmail,
		Color:          PrintColorBW,
		Notes:          r.Notes,
	}
	if r.Pages != nil {
		pr.Pages = *r.Pages
	}
	if r.Color != "" {
		pr.Color = PrintColor(r.Color)
	}
	return pr
}
