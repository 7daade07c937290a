package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/StarkeWang/test-time-calc/internal/aggregate"
	"github.com/StarkeWang/test-time-calc/internal/clickhouse"
	"github.com/StarkeWang/test-time-calc/internal/config"
	"github.com/StarkeWang/test-time-calc/internal/domain"
	"github.com/StarkeWang/test-time-calc/internal/extract"
	"github.com/StarkeWang/test-time-calc/internal/history"
	"github.com/StarkeWang/test-time-calc/internal/report"
	"github.com/StarkeWang/test-time-calc/internal/shift"
	"github.com/StarkeWang/test-time-calc/internal/writer"
)

// RunService orchestrates one calculator run: aggregate the folder, compute
// the float, emit the console summary and report files, and feed the
// optional sinks. Every failure past construction is logged and the run
// continues to produce best-effort output.
type RunService struct {
	cfg        *config.Config
	aggregator *aggregate.Aggregator
}

// NewRunService builds the service. Construction fails only on broken
// extraction rules, which indicate a configuration defect.
func NewRunService(cfg *config.Config) (*RunService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		return nil, err
	}

	reader, err := extract.NewFileReader(rules)
	if err != nil {
		return nil, err
	}

	return &RunService{
		cfg:        cfg,
		aggregator: aggregate.NewAggregator(reader, cfg.FileSuffix),
	}, nil
}

// Run executes the full pass and returns the run summary.
func (s *RunService) Run(ctx context.Context) (*domain.RunSummary, error) {
	result, err := s.aggregator.Aggregate(ctx, s.cfg.FolderPath)
	if err != nil {
		log.Error().Err(err).Msg("Aggregation failed, continuing with empty result")
	}

	float := shift.Float(result.TotalDuration, s.cfg.CompletionTime, s.cfg.StartTime)

	// Console summary goes to stdout; diagnostics stay on stderr.
	fmt.Print(report.Summary(result, float))

	if err := report.WriteSummary(s.cfg.OutputPath, result, float); err != nil {
		log.Error().Err(err).Str("path", s.cfg.OutputPath).Msg("Failed to write summary report")
	} else {
		log.Info().Str("path", s.cfg.OutputPath).Msg("Summary report written")
	}

	if s.cfg.ExportPath != "" {
		if err := report.ExportCSV(s.cfg.ExportPath, result, float); err != nil {
			log.Error().Err(err).Str("path", s.cfg.ExportPath).Msg("Failed to write CSV export")
		} else {
			log.Info().Str("path", s.cfg.ExportPath).Msg("CSV export written")
		}
	}

	summary := &domain.RunSummary{
		RunID:         uuid.New().String(),
		Timestamp:     time.Now(),
		FolderPath:    s.cfg.FolderPath,
		FileCount:     result.FileCount,
		TotalDuration: int64(result.TotalDuration.Seconds()),
		FloatDuration: int64(float.Float.Seconds()),
		FloatOK:       float.OK,
	}

	s.appendHistory(ctx, summary)
	s.writeClickHouse(ctx, summary, result.Records)

	return summary, nil
}

func (s *RunService) appendHistory(ctx context.Context, summary *domain.RunSummary) {
	if s.cfg.HistoryPath == "" {
		return
	}

	var store history.RunStore
	store, err := history.NewBoltDBStore(s.cfg.HistoryPath)
	if err != nil {
		log.Error().Err(err).Str("path", s.cfg.HistoryPath).Msg("Failed to open history store")
		return
	}
	defer store.Close()

	if err := store.Append(ctx, summary); err != nil {
		log.Error().Err(err).Msg("Failed to append run to history")
	}
}

func (s *RunService) writeClickHouse(ctx context.Context, summary *domain.RunSummary, records []domain.TestRecord) {
	if !s.cfg.ClickHouseEnabled {
		return
	}

	client, err := clickhouse.NewClient(s.cfg.ClickHouseHost, s.cfg.ClickHousePort, s.cfg.ClickHouseDB)
	if err != nil {
		log.Error().Err(err).Msg("ClickHouse unavailable, skipping sink")
		return
	}

	var sink writer.RunWriter
	sink, err = writer.NewClickHouseWriter(ctx, client, s.cfg.ClickHouseDB)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize ClickHouse sink")
		client.Close()
		return
	}
	defer sink.Close()

	if err := sink.WriteRun(ctx, summary, records); err != nil {
		log.Error().Err(err).Msg("Failed to write run to ClickHouse")
	}
}

// ListHistory prints stored runs from the history database to stdout.
func ListHistory(historyPath string) error {
	if historyPath == "" {
		return fmt.Errorf("no history database configured (set HISTORY_PATH or --history-db)")
	}
	if _, err := os.Stat(historyPath); err != nil {
		return fmt.Errorf("history database not found: %w", err)
	}

	store, err := history.NewBoltDBStore(historyPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(context.Background())
	if err != nil {
		return err
	}

	for _, r := range runs {
		floatStr := "-"
		if r.FloatOK {
			floatStr = domain.FormatDuration(time.Duration(r.FloatDuration) * time.Second)
		}
		fmt.Printf("%s  %s  files=%d  total=%s  float=%s\n",
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.FolderPath,
			r.FileCount,
			domain.FormatDuration(time.Duration(r.TotalDuration)*time.Second),
			floatStr,
		)
	}

	return nil
}
