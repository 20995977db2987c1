package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/localprint/api/internal/model"
)

// providerResolver is the slice of the provider repository needed to verify a
// provider reference.
type providerResolver interface {
	GetByID(ctx context.Context, id string) (*model.Provider, error)
}

// resolveProvider validates a provider reference and returns the referenced
// record. It is the single implementation of the reference-validation pattern
// shared by reviews and print requests: first the id must be well-formed for
// the store (otherwise ErrInvalidProviderID), then it must resolve to an
// existing provider (otherwise ErrProviderNotFound).
//
// The existence check and any dependent write are not transactional. That is
// acceptable here because providers cannot be deleted; an extension adding
// deletion must revisit this.
func resolveProvider(ctx context.Context, repo providerResolver, id string) (*model.Provider, error) {
	if !wellFormedProviderID(id) {
		return nil, ErrInvalidProviderID
	}

	provider, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up provider: %w", err)
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}
	return provider, nil
}

// wellFormedProviderID reports whether id has the store's record id shape for
// the provider collection: "provider:" followed by a non-empty identifier
// made of letters, digits and underscores.
func wellFormedProviderID(id string) bool {
	ident, ok := strings.CutPrefix(id, "provider:")
	if !ok || ident == "" {
		return false
	}
	for _, c := range ident {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
