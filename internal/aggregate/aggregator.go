package aggregate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/StarkeWang/test-time-calc/internal/domain"
	"github.com/StarkeWang/test-time-calc/internal/extract"
)

// Aggregator runs the single-pass scan over a folder of data files and
// sums the per-file test durations.
type Aggregator struct {
	reader *extract.FileReader
	suffix string
}

// NewAggregator creates an aggregator filtering on the given filename suffix.
func NewAggregator(reader *extract.FileReader, suffix string) *Aggregator {
	return &Aggregator{reader: reader, suffix: suffix}
}

// Aggregate scans dir (non-recursive) for files with the configured suffix
// and builds the aggregate result. A file contributes only when both
// timestamps resolve; per-file durations are signed and never clamped.
// Unreadable files are skipped with a diagnostic; only an unreadable
// directory is returned as an error, together with an empty result so the
// caller can still produce best-effort output.
func (a *Aggregator) Aggregate(ctx context.Context, dir string) (*domain.AggregateResult, error) {
	tracer := otel.Tracer("testtimecalc")
	ctx, span := tracer.Start(ctx, "aggregate")
	defer span.End()
	span.SetAttributes(attribute.String("folder_path", dir))

	result := &domain.AggregateResult{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return result, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	scanned := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), strings.ToLower(a.suffix)) {
			continue
		}
		scanned++

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("Skipping unreadable file")
			continue
		}

		// Lenient decode: undecodable bytes are substituted, never fatal.
		content := strings.ToValidUTF8(string(data), "�")

		start, end := a.reader.ReadTimes(content, entry.Name())
		if start == nil || end == nil {
			continue
		}

		record := domain.TestRecord{
			Source:   entry.Name(),
			Start:    *start,
			End:      *end,
			Duration: end.Sub(*start),
		}
		result.Records = append(result.Records, record)
		result.TotalDuration += record.Duration
		result.FileCount++

		log.Debug().
			Str("file", record.Source).
			Str("duration", domain.FormatDuration(record.Duration)).
			Msg("File aggregated")
	}

	span.SetAttributes(
		attribute.Int("files_scanned", scanned),
		attribute.Int("files_counted", result.FileCount),
	)

	log.Info().
		Str("folder_path", dir).
		Int("files_scanned", scanned).
		Int("files_counted", result.FileCount).
		Str("total_duration", domain.FormatDuration(result.TotalDuration)).
		Msg("Aggregation complete")

	return result, nil
}
