package model

import (
	"testing"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func boolPtr(b bool) *bool        { return &b }
func strPtr(s string) *string     { return &s }

// ============================================================================
// CreateProviderRequest Tests
// ============================================================================

func TestCreateProviderRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreateProviderRequest{
		DisplayName:  "Campus Copy Corner",
		City:         "Rotterdam",
		PricePerPage: floatPtr(0.08),
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateProviderRequest_Validate_MissingDisplayName(t *testing.T) {
	t.Parallel()

	req := &CreateProviderRequest{
		City:         "Rotterdam",
		PricePerPage: floatPtr(0.08),
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "display_name" {
		t.Errorf("expected display_name error, got %v", errors)
	}
}

func TestCreateProviderRequest_Validate_MissingCity(t *testing.T) {
	t.Parallel()

	req := &CreateProviderRequest{
		DisplayName:  "Campus Copy Corner",
		PricePerPage: floatPtr(0.08),
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "city" {
		t.Errorf("expected city error, got %v", errors)
	}
}

func TestCreateProviderRequest_Validate_MissingPricePerPage(t *testing.T) {
	t.Parallel()

	req := &CreateProviderRequest{
		DisplayName: "Campus Copy Corner",
		City:        "Rotterdam",
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "price_per_page" {
		t.Errorf("expected price_per_page error, got %v", errors)
	}
}

func TestCreateProviderRequest_Validate_NegativePricePerPage(t *testing.T) {
	t.Parallel()

	req := &CreateProviderRequest{
		DisplayName:  "Campus Copy Corner",
		City:         "Rotterdam",
		PricePerPage: floatPtr(-0.01),
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "price_per_page" {
		t.Errorf("expected price_per_page error, got %v", errors)
	}
}

func TestCreateProviderRequest_Validate_ZeroPriceAllowed(t *testing.T) {
	t.Parallel()

	req := &CreateProviderRequest{
		DisplayName:  "Free Prints",
		City:         "Utrecht",
		PricePerPage: floatPtr(0),
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors for zero price, got %v", errors)
	}
}

func TestCreateProviderRequest_Validate_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	req := &CreateProviderRequest{}

	errors := req.Validate()
	if len(errors) != 3 {
		t.Errorf("expected 3 errors for an empty request, got %d: %v", len(errors), errors)
	}

	fields := map[string]bool{}
	for _, e := range errors {
		fields[e.Field] = true
	}
	for _, f := range []string{"display_name", "city", "price_per_page"} {
		if !fields[f] {
			t.Errorf("expected error for field %q, got %v", f, errors)
		}
	}
}

func TestCreateProviderRequest_ToProvider_Defaults(t *testing.T) {
	t.Parallel()

	req := &CreateProviderRequest{
		DisplayName:  "Campus Copy Corner",
		City:         "Rotterdam",
		PricePerPage: floatPtr(0.08),
	}

	p := req.ToProvider()

	if !p.ColorSupported {
		t.Error("expected color_supported to default to true")
	}
	if !p.Duplex {
		t.Error("expected duplex to default to true")
	}
	if p.Rating != 0.0 {
		t.Errorf("expected rating 0.0, got %f", p.Rating)
	}
	if p.ReviewsCount != 0 {
		t.Errorf("expected reviews_count 0, got %d", p.ReviewsCount)
	}
}

func TestCreateProviderRequest_ToProvider_DiscardsDerivedFields(t *testing.T) {
	t.Parallel()

	req := &CreateProviderRequest{
		DisplayName:  "Campus Copy Corner",
		City:         "Rotterdam",
		PricePerPage: floatPtr(0.08),
		Rating:       floatPtr(4.9),
		ReviewsCount: intPtr(120),
	}

	p := req.ToProvider()

	if p.Rating != 0.0 {
		t.Errorf("client-supplied rating must be discarded, got %f", p.Rating)
	}
	if p.ReviewsCount != 0 {
		t.Errorf("client-supplied reviews_count must be discarded, got %d", p.ReviewsCount)
	}
}

func TestCreateProviderRequest_ToProvider_ExplicitFlags(t *testing.T) {
	t.Parallel()

	req := &CreateProviderRequest{
		DisplayName:    "Jan's Home Office",
		City:           "Utrecht",
		PricePerPage:   floatPtr(0.05),
		ColorSupported: boolPtr(false),
		Duplex:         boolPtr(false),
	}

	p := req.ToProvider()

	if p.ColorSupported {
		t.Error("expected color_supported false")
	}
	if p.Duplex {
		t.Error("expected duplex false")
	}
}

// ============================================================================
// CreateReviewRequest Tests
// ============================================================================

func TestCreateReviewRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreateReviewRequest{
		ProviderID:   "provider:abc",
		ReviewerName: "Sanne",
		Rating:       intPtr(4),
		Comment:      strPtr("Quick turnaround"),
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateReviewRequest_Validate_MissingProviderID(t *testing.T) {
	t.Parallel()

	req := &CreateReviewRequest{
		ReviewerName: "Sanne",
		Rating:       intPtr(4),
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "provider_id" {
		t.Errorf("expected provider_id error, got %v", errors)
	}
}

func TestCreateReviewRequest_Validate_MissingRating(t *testing.T) {
	t.Parallel()

	req := &CreateReviewRequest{
		ProviderID:   "provider:abc",
		ReviewerName: "Sanne",
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "rating" {
		t.Errorf("expected rating error, got %v", errors)
	}
}

func TestCreateReviewRequest_Validate_RatingBounds(t *testing.T) {
	t.Parallel()

	for _, rating := range []int{0, 6, -1, 100} {
		req := &CreateReviewRequest{
			ProviderID:   "provider:abc",
			ReviewerName: "Sanne",
			Rating:       intPtr(rating),
		}

		errors := req.Validate()
		if len(errors) != 1 || errors[0].Field != "rating" {
			t.Errorf("rating %d: expected rating error, got %v", rating, errors)
		}
	}

	for rating := MinReviewRating; rating <= MaxReviewRating; rating++ {
		req := &CreateReviewRequest{
			ProviderID:   "provider:abc",
			ReviewerName: "Sanne",
			Rating:       intPtr(rating),
		}

		if errors := req.Validate(); len(errors) > 0 {
			t.Errorf("rating %d: expected no errors, got %v", rating, errors)
		}
	}
}

func TestCreateReviewRequest_Validate_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	req := &CreateReviewRequest{}

	errors := req.Validate()
	if len(errors) != 3 {
		t.Errorf("expected 3 errors for an empty request, got %d: %v", len(errors), errors)
	}
}

// ============================================================================
// CreatePrintRequestRequest Tests
// ============================================================================

func TestCreatePrintRequestRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreatePrintRequestRequest{
		ProviderID:     "provider:abc",
		RequesterName:  "Tom",
		RequesterEmail: "tom@example.com",
		Pages:          intPtr(12),
		Color:          "color",
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreatePrintRequestRequest_Validate_InvalidEmail(t *testing.T) {
	t.Parallel()

	for _, email := range []string{"not-an-email", "@example.com", "tom@example", "tom@example."} {
		req := &CreatePrintRequestRequest{
			ProviderID:     "provider:abc",
			RequesterName:  "Tom",
			RequesterEmail: email,
			Pages:          intPtr(1),
		}

		errors := req.Validate()
		if len(errors) != 1 || errors[0].Field != "requester_email" {
			t.Errorf("email %q: expected requester_email error, got %v", email, errors)
		}
	}
}

func TestCreatePrintRequestRequest_Validate_PagesBounds(t *testing.T) {
	t.Parallel()

	for _, pages := range []int{0, -3} {
		req := &CreatePrintRequestRequest{
			ProviderID:     "provider:abc",
			RequesterName:  "Tom",
			RequesterEmail: "tom@example.com",
			Pages:          intPtr(pages),
		}

		errors := req.Validate()
		if len(errors) != 1 || errors[0].Field != "pages" {
			t.Errorf("pages %d: expected pages error, got %v", pages, errors)
		}
	}
}

func TestCreatePrintRequestRequest_Validate_InvalidColor(t *testing.T) {
	t.Parallel()

	req := &CreatePrintRequestRequest{
		ProviderID:     "provider:abc",
		RequesterName:  "Tom",
		RequesterEmail: "tom@example.com",
		Pages:          intPtr(1),
		Color:          "sepia",
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "color" {
		t.Errorf("expected color error, got %v", errors)
	}
}

func TestCreatePrintRequestRequest_Validate_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	req := &CreatePrintRequestRequest{Color: "sepia"}

	errors := req.Validate()
	if len(errors) != 5 {
		t.Errorf("expected 5 errors, got %d: %v", len(errors), errors)
	}
}

func TestCreatePrintRequestRequest_ToPrintRequest_DefaultsColorToBW(t *testing.T) {
	t.Parallel()

	req := &CreatePrintRequestRequest{
		ProviderID:     "provider:abc",
		RequesterName:  "Tom",
		RequesterEmail: "tom@example.com",
		Pages:          intPtr(3),
	}

	pr := req.ToPrintRequest()
	if pr.Color != PrintColorBW {
		t.Errorf("expected default color %q, got %q", PrintColorBW, pr.Color)
	}
}

func TestCreatePrintRequestRequest_ToPrintRequest_KeepsExplicitColor(t *testing.T) {
	t.Parallel()

	req := &CreatePrintRequestRequest{
		ProviderID:     "provider:abc",
		RequesterName:  "Tom",
		RequesterEmail: "tom@example.com",
		Pages:          intPtr(3),
		Color:          "color",
	}

	pr := req.ToPrintRequest()
	if pr.Color != PrintColorColor {
		t.Errorf("expected color %q, got %q", PrintColorColor, pr.Color)
	}
}

// ============================================================================
// CreateUserRequest Tests
// ============================================================================

func TestCreateUserRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreateUserRequest{
		Name:  "Sanne de Vries",
		Email: "sanne@example.com",
		City:  "Rotterdam",
	}

	errors := req.Validate()
	if len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateUserRequest_Validate_InvalidEmail(t *testing.T) {
	t.Parallel()

	req := &CreateUserRequest{
		Name:  "Sanne de Vries",
		Email: "sanne@invalid",
		City:  "Rotterdam",
	}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "email" {
		t.Errorf("expected email error, got %v", errors)
	}
}

func TestCreateUserRequest_Validate_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	req := &CreateUserRequest{}

	errors := req.Validate()
	if len(errors) != 3 {
		t.Errorf("expected 3 errors for an empty request, got %d: %v", len(errors), errors)
	}
}

func TestCreateUserRequest_ToUser_DefaultsActive(t *testing.T) {
	t.Parallel()

	req := &CreateUserRequest{
		Name:  "Sanne de Vries",
		Email: "sanne@example.com",
		City:  "Rotterdam",
	}

	u := req.ToUser()
	if !u.IsActive {
		t.Error("expected is_active to default to true")
	}
}

func TestCreateUserRequest_ToUser_ExplicitInactive(t *testing.T) {
	t.Parallel()

	req := &CreateUserRequest{
		Name:     "Sanne de Vries",
		Email:    "sanne@example.com",
		City:     "Rotterdam",
		IsActive: boolPtr(false),
	}

	u := req.ToUser()
	if u.IsActive {
		t.Error("expected is_active false")
	}
}

// ============================================================================
// validEmail Tests
// ============================================================================

func TestValidEmail_AcceptsReasonableAddresses(t *testing.T) {
	t.Parallel()

	for _, email := range []string{"a@b.co", "tom@example.com", "first.last@sub.example.org"} {
		if !validEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
}

func TestValidEmail_RejectsMalformedAddresses(t *testing.T) {
	t.Parallel()

	for _, email := range []string{"", "plain", "@example.com", "a@b", "a@b.", "a@.com"} {
		if validEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}
