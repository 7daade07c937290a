package cli

import (
	"github.com/spf13/cobra"

	"github.com/StarkeWang/test-time-calc/internal/config"
	"github.com/StarkeWang/test-time-calc/internal/service"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past runs recorded in the history database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("history-db") {
			cfg.HistoryPath = flagHistoryDB
		}
		return service.ListHistory(cfg.HistoryPath)
	},
}
