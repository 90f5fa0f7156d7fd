package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/hubsync/internal/core"
	"github.com/JonMunkholm/hubsync/internal/hubspot"
	"github.com/JonMunkholm/hubsync/internal/logging"
	"github.com/JonMunkholm/hubsync/internal/progress"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Parse the exports and sync every record into HubSpot",
	Long: `Sync loads all six export workbooks from the source directory, parses
and enriches them, then syncs customers, contacts, orders, products and
line items into HubSpot in that order. The error report is written to
the output directory after every run, even a clean one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(ctx context.Context) error {
	if cfg.HubSpot.AccessToken == "" {
		return &core.AppError{
			Kind:    core.KindEnvironment,
			Message: "HUBSPOT_ACCESS_TOKEN is not set; sync needs CRM credentials",
		}
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dir := sourceDir()
	data, err := core.LoadDatasets(dir)
	if err != nil {
		return fmt.Errorf("load exports from %q: %w", dir, err)
	}
	slog.Info("exports loaded", "dir", dir, "records", data.Total())

	client := hubspot.New(cfg.HubSpot.BaseURL, cfg.HubSpot.AccessToken, cfg.HubSpot.Timeout)
	runner := core.NewRunner(client, progress.New(os.Stdout), logging.WithFields("source_dir", dir))

	summary, err := runner.Run(ctx, data)
	if err != nil {
		return err
	}

	if err := writeReport(summary.Errors); err != nil {
		return err
	}

	slog.Info("sync finished",
		"run_id", summary.RunID,
		"total", summary.Total,
		"synced", summary.Synced,
		"skipped", summary.Skipped,
		"failed", summary.Failed(),
	)
	return nil
}

// writeReport writes the consolidated error report to the output
// directory, creating it if needed.
func writeReport(errs []error) error {
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(cfg.Output.Dir, "Errors.xlsx")
	if err := core.WriteReport(path, errs); err != nil {
		return fmt.Errorf("write error report: %w", err)
	}
	slog.Info("error report written", "path", path, "errors", len(errs))
	return nil
}
