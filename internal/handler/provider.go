package handler

import (
	"net/http"
	"strconv"

	"github.com/localprint/api/internal/model"
	"github.com/localprint/api/internal/service"
)

// ProviderHandler handles provider listing endpoints
type ProviderHandler struct {
	providerService *service.ProviderService
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(providerService *service.ProviderService) *ProviderHandler {
	return &ProviderHandler{
		providerService: providerService,
	}
}

// CreateProvider handles POST /api/providers - publish a printer listing
func (h *ProviderHandler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProviderRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	provider, err := h.providerService.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, CreatedResponse{ID: provider.ID})
}

// ListProviders handles GET /api/providers - browse listings, optionally
// filtered by city
func (h *ProviderHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	limit := parseLimit(r)

	providers, err := h.providerService.List(r.Context(), city, limit)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, providers, len(providers))
}

// parseLimit reads the optional limit query parameter. Out-of-range and
// unparsable values fall through to the service default.
func parseLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}
