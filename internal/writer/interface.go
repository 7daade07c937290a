package writer

import (
	"context"

	"github.com/StarkeWang/test-time-calc/internal/domain"
)

// RunWriter persists a finished run to an external sink.
type RunWriter interface {
	// WriteRun writes the run summary and its per-file records.
	WriteRun(ctx context.Context, summary *domain.RunSummary, records []domain.TestRecord) error

	// Close releases the sink connection.
	Close() error
}
