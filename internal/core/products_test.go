package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/JonMunkholm/hubsync/internal/spreadsheet"
)

// writePaginatedProducts lays products out the way Impress prints them:
// data starting at row 5 of each 63-row page, SKU in column A and name
// in column B.
func writePaginatedProducts(t *testing.T, path string, pages [][][2]string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "products"); err != nil {
		t.Fatal(err)
	}

	for page, rows := range pages {
		for i, row := range rows {
			rowNum := page*productStride + productStartRow + i
			sku, _ := excelize.CoordinatesToCellName(1, rowNum)
			name, _ := excelize.CoordinatesToCellName(2, rowNum)
			if err := f.SetCellStr("products", sku, row[0]); err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellStr("products", name, row[1]); err != nil {
				t.Fatal(err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func TestRebuildProductsSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.xlsx")

	writePaginatedProducts(t, path, [][][2]string{
		{{"TS-100", "Team Tee"}, {"TS-200", "Long Sleeve"}},
		{{"HD-300", "Hoodie"}},
	})

	if err := RebuildProductsSheet(path); err != nil {
		t.Fatalf("RebuildProductsSheet() error = %v", err)
	}

	// The original is backed up before the rewrite.
	backup := strings.TrimSuffix(path, ".xlsx") + " (auto-backup).xlsx"
	if _, err := os.Stat(backup); err != nil {
		t.Errorf("backup missing: %v", err)
	}

	rows, err := spreadsheet.ReadSheet(path, "products")
	if err != nil {
		t.Fatalf("ReadSheet() error = %v", err)
	}

	wantRows := len(serviceChargeProducts) + 3
	if len(rows) != wantRows {
		t.Fatalf("len(rows) = %d, want %d", len(rows), wantRows)
	}

	// Service-charge products come first.
	if rows[0]["SKU"] != "<MIN-DS" {
		t.Errorf("rows[0] SKU = %q, want %q", rows[0]["SKU"], "<MIN-DS")
	}
	if rows[0]["Product Type"] != "Service" {
		t.Errorf("rows[0] Product Type = %q, want %q", rows[0]["Product Type"], "Service")
	}

	// Scraped products follow in page order, with the SKU column holding
	// column A and the name column holding column B as printed.
	scraped := rows[len(serviceChargeProducts):]
	if scraped[0]["SKU"] != "TS-100" || scraped[0]["Name"] != "Team Tee" {
		t.Errorf("scraped[0] = %v, want TS-100 / Team Tee", scraped[0])
	}
	if scraped[2]["SKU"] != "HD-300" {
		t.Errorf("scraped[2] SKU = %q, want %q (second page read)", scraped[2]["SKU"], "HD-300")
	}
	for i, row := range scraped {
		if row["Unit Price"] != "0" {
			t.Errorf("scraped[%d] Unit Price = %q, want %q", i, row["Unit Price"], "0")
		}
	}
}

func TestRebuildProductsSheet_MissingWorkbook(t *testing.T) {
	if err := RebuildProductsSheet(filepath.Join(t.TempDir(), "products.xlsx")); err == nil {
		t.Error("RebuildProductsSheet() succeeded for missing workbook, want error")
	}
}
