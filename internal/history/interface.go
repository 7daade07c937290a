package history

import (
	"context"

	"github.com/StarkeWang/test-time-calc/internal/domain"
)

// RunStore keeps a local history of completed runs.
type RunStore interface {
	// Append stores a run summary.
	Append(ctx context.Context, summary *domain.RunSummary) error

	// List returns all stored runs ordered by timestamp.
	List(ctx context.Context) ([]domain.RunSummary, error)

	// Close closes the store.
	Close() error
}
