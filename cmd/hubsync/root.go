package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// version is set at build time using ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "hubsync",
	Short: "Migrate Impress spreadsheet exports into HubSpot",
	Long: `hubsync reads the Impress spreadsheet exports (customers, contacts,
orders, products, line items and POs), validates and enriches them, then
syncs each record into HubSpot in dependency order. Records that already
exist are updated in place, so a run can be repeated safely.

Every failure, bad row or rejected API call, lands in a consolidated
error report workbook; one bad record never stops the batch.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// sample switches the source to the reduced rehearsal workbooks.
var sample bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the hubsync version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hubsync %s (%s)\n", version, runtime.Version())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&sample, "sample", false,
		"read the reduced sample workbooks instead of the full exports")
	rootCmd.AddCommand(versionCmd)
}

// sourceDir picks the export directory for this invocation.
func sourceDir() string {
	if sample {
		return cfg.Source.SampleDir
	}
	return cfg.Source.Dir
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
