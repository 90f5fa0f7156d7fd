package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/hubsync/internal/core"
)

var cleanupProductsCmd = &cobra.Command{
	Use:   "cleanup-products",
	Short: "Flatten the paginated products export into a parseable sheet",
	Long: `Impress prints the products export as repeated report pages inside a
single sheet, which the parser cannot read. Cleanup-products rewrites
the workbook as one flat header-plus-rows sheet, seeds the fixed
service-charge products, and leaves a backup copy next to the original.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCleanupProducts()
	},
}

func init() {
	rootCmd.AddCommand(cleanupProductsCmd)
}

func runCleanupProducts() error {
	path := filepath.Join(sourceDir(), "products.xlsx")
	if err := core.RebuildProductsSheet(path); err != nil {
		return err
	}
	slog.Info("products workbook rebuilt", "path", path)
	return nil
}
