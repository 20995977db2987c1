package repository

import (
	"context"

	"github.com/localprint/api/internal/database"
	"github.com/localprint/api/internal/model"
)

// PrintRequestRepository handles print request data access
type PrintRequestRepository struct {
	db database.Database
}

// NewPrintRequestRepository creates a new print request repository
func NewPrintRequestRepository(db database.Database) *PrintRequestRepository {
	return &PrintRequestRepository{db: db}
}

// Create creates a new print request. Print requests are create-only; they
// are read out-of-band by the provider contact flow, not through this API.
func (r *PrintRequestRepository) Create(ctx context.Context, request *model.PrintRequest) error {
	query := `
		CREATE printrequest CONTENT {
			provider_id: $provider_id,
			requester_name: $requester_name,
			requester_email: $requester_email,
			pages: $pages,
			color: $color,
			notes: $notes,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"provider_id":     request.ProviderID,
		"requester_name":  request.RequesterName,
		"requester_email": request.RequesterEmail,
		"pages":           request.Pages,
		"color":           string(request.Color),
		"notes":           request.Notes,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	row, err := createdRow(result)
	if err != nil {
		return err
	}

	request.ID = recordIDString(row["id"])
	request.CreatedOn = getTime(row, "created_on")
	return nil
}
