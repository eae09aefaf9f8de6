package source

import (
	"context"

	"leadscout-engine/internal/domain"
)

// Lister yields the raw listings a run will resolve.
type Lister interface {
	List(ctx context.Context) ([]domain.RawListing, error)
}
