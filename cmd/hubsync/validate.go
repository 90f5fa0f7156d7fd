package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/hubsync/internal/core"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse the exports and report bad rows without touching the CRM",
	Long: `Validate loads all six export workbooks, runs every row through the
parser and writes the resulting data errors to the error report. No CRM
credentials are needed and no records are synced, so this is safe to
run against fresh exports before a real migration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate() error {
	dir := sourceDir()
	data, err := core.LoadDatasets(dir)
	if err != nil {
		return fmt.Errorf("load exports from %q: %w", dir, err)
	}

	errs := data.DataErrors()
	if err := writeReport(errs); err != nil {
		return err
	}

	slog.Info("validation finished",
		"dir", dir,
		"records", data.Total(),
		"bad_rows", len(errs),
	)
	return nil
}
