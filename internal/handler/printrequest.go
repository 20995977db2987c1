package handler

import (
	"net/http"

	"github.com/localprint/api/internal/model"
	"github.com/localprint/api/internal/service"
)

// PrintRequestHandler handles print request endpoints
type PrintRequestHandler struct {
	printRequestService *service.PrintRequestService
}

// NewPrintRequestHandler creates a new print request handler
func NewPrintRequestHandler(printRequestService *service.PrintRequestService) *PrintRequestHandler {
	return &PrintRequestHandler{
		printRequestService: printRequestService,
	}
}

// CreatePrintRequest handles POST /api/print-requests - submit a print job
// request to a provider
func (h *PrintRequestHandler) CreatePrintRequest(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePrintRequestRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	request, err := h.printRequestService.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, CreatedResponse{ID: request.ID})
}
