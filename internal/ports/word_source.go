package ports

import (
	"context"

	"github.com/lexlabs/muse/internal/domain"
)

// WordSource looks up word associations from a remote service.
type WordSource interface {
	// Lookup returns the words associated with the query's term under its
	// relation, in the order the service ranked them. An empty result is
	// not an error.
	Lookup(ctx context.Context, q domain.Query) ([]domain.Word, error)
}
