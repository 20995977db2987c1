package service

import (
	"context"
	"fmt"

	"github.com/localprint/api/internal/model"
)

// PrintRequestRepository defines the interface for print request storage
type PrintRequestRepository interface {
	Create(ctx context.Context, request *model.PrintRequest) error
}

// PrintRequestService handles print request business logic
type PrintRequestService struct {
	requests  PrintRequestRepository
	providers providerResolver
}

// PrintRequestServiceConfig holds configuration for the print request service
type PrintRequestServiceConfig struct {
	RequestRepo  PrintRequestRepository
	ProviderRepo providerResolver
}

// NewPrintRequestService creates a new print request service
func NewPrintRequestService(cfg PrintRequestServiceConfig) *PrintRequestService {
	return &PrintRequestService{
		requests:  cfg.RequestRepo,
		providers: cfg.ProviderRepo,
	}
}

// Create validates a print request, verifies the provider reference, and
// persists the record unmodified. No aggregation, no notification; a single
// write.
func (s *PrintRequestService) Create(ctx context.Context, req *model.CreatePrintRequestRequest) (*model.PrintRequest, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	if _, err := resolveProvider(ctx, s.providers, req.ProviderID); err != nil {
		return nil, err
	}

	request := req.ToPrintRequest()
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create print request: %w", err)
	}

	return request, nil
}
