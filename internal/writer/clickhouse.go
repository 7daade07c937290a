package writer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/StarkeWang/test-time-calc/internal/clickhouse"
	"github.com/StarkeWang/test-time-calc/internal/domain"
)

// ClickHouseWriter writes run summaries and per-file records to ClickHouse
// so repeated chamber runs can be queried for trends.
type ClickHouseWriter struct {
	client *clickhouse.Client
	db     string
}

// NewClickHouseWriter creates the sink and ensures both tables exist.
func NewClickHouseWriter(ctx context.Context, client *clickhouse.Client, db string) (*ClickHouseWriter, error) {
	w := &ClickHouseWriter{client: client, db: db}
	if err := w.ensureTables(ctx); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *ClickHouseWriter) ensureTables(ctx context.Context) error {
	ddl := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.runs (
			run_id String,
			timestamp DateTime,
			folder_path String,
			file_count UInt32,
			total_duration_seconds Int64,
			float_duration_seconds Int64,
			float_ok UInt8
		) ENGINE = MergeTree() ORDER BY timestamp`, w.db),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.test_records (
			run_id String,
			source String,
			start_time DateTime,
			end_time DateTime,
			duration_seconds Int64
		) ENGINE = MergeTree() ORDER BY (run_id, start_time)`, w.db),
	}

	for _, q := range ddl {
		if err := w.client.Exec(ctx, q); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// WriteRun inserts the run summary and all per-file records.
func (w *ClickHouseWriter) WriteRun(ctx context.Context, summary *domain.RunSummary, records []domain.TestRecord) error {
	floatOK := uint8(0)
	if summary.FloatOK {
		floatOK = 1
	}

	batch, err := w.client.Conn().PrepareBatch(ctx, fmt.Sprintf("INSERT INTO %s.runs", w.db))
	if err != nil {
		return fmt.Errorf("failed to prepare runs batch: %w", err)
	}
	if err := batch.Append(
		summary.RunID,
		summary.Timestamp,
		summary.FolderPath,
		uint32(summary.FileCount),
		summary.TotalDuration,
		summary.FloatDuration,
		floatOK,
	); err != nil {
		return fmt.Errorf("failed to append run summary: %w", err)
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send runs batch: %w", err)
	}

	if len(records) > 0 {
		batch, err = w.client.Conn().PrepareBatch(ctx, fmt.Sprintf("INSERT INTO %s.test_records", w.db))
		if err != nil {
			return fmt.Errorf("failed to prepare records batch: %w", err)
		}
		for _, r := range records {
			if err := batch.Append(
				summary.RunID,
				r.Source,
				r.Start,
				r.End,
				int64(r.Duration.Seconds()),
			); err != nil {
				return fmt.Errorf("failed to append record %s: %w", r.Source, err)
			}
		}
		if err := batch.Send(); err != nil {
			return fmt.Errorf("failed to send records batch: %w", err)
		}
	}

	log.Info().
		Str("run_id", summary.RunID).
		Int("records", len(records)).
		Msg("Run written to ClickHouse")

	return nil
}

// Close closes the underlying connection.
func (w *ClickHouseWriter) Close() error {
	return w.client.Close()
}
