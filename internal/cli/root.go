package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/StarkeWang/test-time-calc/internal/config"
	"github.com/StarkeWang/test-time-calc/internal/observability"
	"github.com/StarkeWang/test-time-calc/internal/service"
)

const version = "1.0.0"

var (
	flagCompletion string
	flagStart      string
	flagOutput     string
	flagExport     string
	flagSuffix     string
	flagRules      string
	flagHistoryDB  string
	flagLogLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "testtimecalc [folder]",
	Short: "Sum test durations recorded inside chamber data files",
	Long: `testtimecalc scans a folder of delimited data files for embedded
"Test Start Time" / "Test End Time" fields, sums the per-file test
durations, and optionally reconciles the total against a work-shift
window to report float (slack) time.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagCompletion, "completion-time", "", "Shift completion time (HH:MM:SS or HHMM)")
	rootCmd.Flags().StringVar(&flagStart, "start-time", "", "Shift start time (HH:MM:SS or HHMM)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Path of the plain-text summary report")
	rootCmd.Flags().StringVar(&flagExport, "export", "", "Path of the CSV export (empty disables)")
	rootCmd.Flags().StringVar(&flagSuffix, "suffix", "", "Filename suffix to scan for (default .csv)")
	rootCmd.Flags().StringVar(&flagRules, "rules", "", "YAML file with extraction rules")
	rootCmd.PersistentFlags().StringVar(&flagHistoryDB, "history-db", "", "BoltDB file recording past runs")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(historyCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override the environment.
	if len(args) > 0 {
		cfg.FolderPath = args[0]
	}
	applyFlagOverrides(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	observability.InitLogger(cfg.LogLevel, cfg.LogFile)

	log.Info().
		Str("version", version).
		Str("folder_path", cfg.FolderPath).
		Msg("Starting test time calculator")

	shutdown, err := observability.InitTracer(observability.TracerConfig{
		ServiceName:    "testtimecalc",
		ServiceVersion: version,
		Endpoint:       cfg.TracingEndpoint,
		Protocol:       cfg.TracingProtocol,
		Enabled:        cfg.TracingEnabled,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer shutdown(context.Background())
	}

	svc, err := service.NewRunService(cfg)
	if err != nil {
		return err
	}

	summary, err := svc.Run(cmd.Context())
	if err != nil {
		return err
	}

	log.Info().
		Str("run_id", summary.RunID).
		Int("file_count", summary.FileCount).
		Msg("Run complete")

	return nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("completion-time") {
		cfg.CompletionTime = flagCompletion
	}
	if cmd.Flags().Changed("start-time") {
		cfg.StartTime = flagStart
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputPath = flagOutput
	}
	if cmd.Flags().Changed("export") {
		cfg.ExportPath = flagExport
	}
	if cmd.Flags().Changed("suffix") {
		cfg.FileSuffix = flagSuffix
	}
	if cmd.Flags().Changed("rules") {
		cfg.RulesPath = flagRules
	}
	if cmd.Flags().Changed("history-db") {
		cfg.HistoryPath = flagHistoryDB
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
}
