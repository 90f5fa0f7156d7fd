package core

// products.go rebuilds the products export before a run. Impress emits
// products as repeated printed pages inside one sheet; this flattens
// them into the plain two-column layout the parser expects and seeds
// the fixed service-charge products that exist only in HubSpot.

import (
	"fmt"
	"strings"

	"github.com/JonMunkholm/hubsync/internal/spreadsheet"
)

// Layout of the paginated Impress products output, determined by
// observing the printed pages: each page occupies a 63-row stride, data
// starts on row 5 of the page, and a full page holds 59 products.
const (
	productsSheet   = "products"
	productPageRows = 59
	productStride   = 63
	productStartRow = 5
	productMaxPages = 500
)

type productRow struct {
	name        string
	sku         string
	productType string
	unitPrice   string
}

// serviceChargeProducts are minimum-charge service items that have no
// Impress SKU of their own and must always be present.
var serviceChargeProducts = []productRow{
	{name: "Less than Minimum Charge - Dye Sub", sku: "<MIN-DS", productType: "Service", unitPrice: "0"},
	{name: "Less than Minimum Charge - Embroidery", sku: "<MIN-EMB", productType: "Service", unitPrice: "0"},
	{name: "Less than Minimum Charge - PIP", sku: "<MIN-PIP", productType: "Service", unitPrice: "0"},
	{name: "Less than Minimum Charge - Screen Print", sku: "<MIN-SP", productType: "Service", unitPrice: "0"},
}

// RebuildProductsSheet rewrites the products workbook at path as a flat
// sheet, backing the original up next to it first.
func RebuildProductsSheet(path string) error {
	backup := strings.TrimSuffix(path, ".xlsx") + " (auto-backup).xlsx"
	if err := spreadsheet.Duplicate(path, backup); err != nil {
		return fmt.Errorf("back up products workbook: %w", err)
	}

	w, err := spreadsheet.Open(path)
	if err != nil {
		return err
	}
	defer w.Close()

	products := make([]productRow, len(serviceChargeProducts))
	copy(products, serviceChargeProducts)

	for page := 0; page < productMaxPages; page++ {
		start := page*productStride + productStartRow

		first, err := w.RawCell(productsSheet, 1, start)
		if err != nil {
			return err
		}
		if first == "" {
			break
		}

		for row := start; row < start+productPageRows; row++ {
			sku, err := w.RawCell(productsSheet, 1, row)
			if err != nil {
				return err
			}
			if sku == "" {
				break
			}
			name, err := w.RawCell(productsSheet, 2, row)
			if err != nil {
				return err
			}
			products = append(products, productRow{name: name, sku: sku, unitPrice: "0"})
		}
	}

	headers := []string{"Name", "SKU", "Product Type", "Unit Price"}
	rows := make([]map[string]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, map[string]string{
			"Name":         p.name,
			"SKU":          p.sku,
			"Product Type": p.productType,
			"Unit Price":   p.unitPrice,
		})
	}
	return spreadsheet.WriteSheet(path, productsSheet, headers, rows)
}
