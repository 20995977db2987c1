package model

import "time"

// User represents a neighbor registered with the platform.
// Collection name: "user". No relationships are enforced against users.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	IsActive  bool      `json:"is_active"`
	CreatedOn time.Time `json:"created_on"`
}

// CreateUserRequest represents a request to register a user
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	City     string `json:"city"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// Validate checks if the create request is valid
func (r *CreateUserRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	}
	if r.Email == "" {
		errors = append(errors, FieldError{Field: "email", Message: "email is required"})
	} else if !validEmail(r.Email) {
		errors = append(errors, FieldError{Field: "email", Message: "email must be a valid email address"})
	}
	if r.City == "" {
		errors = append(errors, FieldError{Field: "city", Message: "city is required"})
	}

	return errors
}

// ToUser builds the User record to persist, defaulting is_active to true
func (r *CreateUserRequest) ToUser() *User {
	u := &User{
		Name:     r.Name,
		Email:    r.Email,
		City:     r.City,
		IsActive: true,
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
	return u
}
