package core

// run.go is the orchestrator: it loads and parses every export, runs
// enrichment once the sibling datasets are complete, then syncs the
// five record types in fixed dependency order. A failed record never
// stops the batch; every failure lands in the consolidated report.

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/JonMunkholm/hubsync/internal/hubspot"
	"github.com/JonMunkholm/hubsync/internal/progress"
	"github.com/JonMunkholm/hubsync/internal/schema"
	"github.com/JonMunkholm/hubsync/internal/spreadsheet"
)

// Datasets holds every parsed export for one run. Each slice keeps the
// source row order, with DataError entries in place of rows that failed
// to parse.
type Datasets struct {
	Customers []schema.RowResult[schema.Customer]
	Contacts  []schema.RowResult[schema.Contact]
	Orders    []schema.RowResult[schema.Order]
	Products  []schema.RowResult[schema.Product]
	LineItems []schema.RowResult[schema.LineItem]
	POs       []schema.RowResult[schema.PO]
}

// sheetNames maps record types to the workbook/sheet name of their
// export. Each export lives at <dir>/<name>.xlsx in a sheet of the
// same name.
var sheetNames = map[schema.DataType]string{
	schema.TypeCustomer: "customers",
	schema.TypeContact:  "contacts",
	schema.TypeOrder:    "orders",
	schema.TypeProduct:  "products",
	schema.TypeLineItem: "line items",
	schema.TypePO:       "po",
}

func loadSheet(dir string, t schema.DataType) ([]schema.Row, error) {
	name := sheetNames[t]
	rows, err := spreadsheet.ReadSheet(filepath.Join(dir, name+".xlsx"), name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", t, err)
	}
	return rows, nil
}

// LoadDatasets reads and parses all six exports from dir. A missing or
// unreadable workbook is fatal; individual bad rows are not.
func LoadDatasets(dir string) (*Datasets, error) {
	d := &Datasets{}

	rows, err := loadSheet(dir, schema.TypeCustomer)
	if err != nil {
		return nil, err
	}
	d.Customers = schema.ParseCustomers(rows)

	if rows, err = loadSheet(dir, schema.TypeContact); err != nil {
		return nil, err
	}
	d.Contacts = schema.ParseContacts(rows)

	if rows, err = loadSheet(dir, schema.TypeOrder); err != nil {
		return nil, err
	}
	d.Orders = schema.ParseOrders(rows)

	if rows, err = loadSheet(dir, schema.TypeProduct); err != nil {
		return nil, err
	}
	d.Products = schema.ParseProducts(rows)

	if rows, err = loadSheet(dir, schema.TypeLineItem); err != nil {
		return nil, err
	}
	d.LineItems = schema.ParseLineItems(rows)

	if rows, err = loadSheet(dir, schema.TypePO); err != nil {
		return nil, err
	}
	d.POs = schema.ParsePOs(rows)

	return d, nil
}

// DataErrors gathers the parse failures of the five synced record
// types. PO rows are join-only; their failures surface indirectly as
// missing PO numbers.
func (d *Datasets) DataErrors() []error {
	var errs []error
	for _, r := range d.Customers {
		if !r.Ok() {
			errs = append(errs, r.Err)
		}
	}
	for _, r := range d.Contacts {
		if !r.Ok() {
			errs = append(errs, r.Err)
		}
	}
	for _, r := range d.Orders {
		if !r.Ok() {
			errs = append(errs, r.Err)
		}
	}
	for _, r := range d.Products {
		if !r.Ok() {
			errs = append(errs, r.Err)
		}
	}
	for _, r := range d.LineItems {
		if !r.Ok() {
			errs = append(errs, r.Err)
		}
	}
	return errs
}

// Total counts every record (parsed or not) across the five synced
// types; it is the denominator for progress reporting.
func (d *Datasets) Total() int {
	return len(d.Customers) + len(d.Contacts) + len(d.Orders) + len(d.Products) + len(d.LineItems)
}

// Summary is the outcome of one migration run.
type Summary struct {
	RunID   string
	Total   int
	Synced  int
	Skipped int
	Errors  []error
}

// Failed counts the collected failures, parse-time and sync-time alike.
func (s *Summary) Failed() int { return len(s.Errors) }

// Runner drives a full migration run against one CRM client.
type Runner struct {
	client *hubspot.Client
	prog   *progress.Printer
	log    *slog.Logger
}

// NewRunner builds a runner. prog may be nil to disable progress
// output.
func NewRunner(client *hubspot.Client, prog *progress.Printer, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{client: client, prog: prog, log: log}
}

// Run enriches and syncs every record type in dependency order:
// customers, contacts, orders, products, line items. Orders need the
// company and contact cross-references; line items need both the deal
// and product cross-references plus the preexisting-deal skip set, so
// the order is fixed. Returns an error only for run-fatal conditions;
// per-record failures are collected in the Summary.
func (r *Runner) Run(ctx context.Context, data *Datasets) (*Summary, error) {
	runID := uuid.NewString()
	log := r.log.With("run_id", runID)

	errs := data.DataErrors()
	if len(errs) > 0 {
		log.Warn("some rows failed to parse", "count", len(errs))
	}

	r.prog.Status("Fetching owners")
	owners, err := r.client.ListOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	log.Info("owners fetched", "count", len(owners))

	// Enrichment runs only after every sibling dataset is fully
	// parsed; orders join against owners and POs, line items against
	// products.
	for i, res := range data.Orders {
		if res.Ok() {
			data.Orders[i].Record = EnrichOrder(res.Record, owners, data.POs)
		}
	}
	for i, res := range data.LineItems {
		if res.Ok() {
			data.LineItems[i].Record = EnrichLineItem(res.Record, data.Products)
		}
	}

	engine := NewEngine(r.client, NewTracker(), log)
	total := data.Total()
	summary := &Summary{RunID: runID, Total: total, Errors: errs}
	idx := 0

	record := func(err error) {
		if err != nil {
			summary.Errors = append(summary.Errors, wrapUnknown(err))
			return
		}
		summary.Synced++
	}

	for _, res := range data.Customers {
		idx++
		if !res.Ok() {
			continue
		}
		r.prog.Update("Syncing companies", idx, total)
		_, err := engine.SyncCustomer(ctx, res.Record)
		record(err)
	}

	for _, res := range data.Contacts {
		idx++
		if !res.Ok() {
			continue
		}
		r.prog.Update("Syncing contacts", idx, total)
		_, err := engine.SyncContact(ctx, res.Record)
		record(err)
	}

	for _, res := range data.Orders {
		idx++
		if !res.Ok() {
			continue
		}
		r.prog.Update("Syncing deals", idx, total)
		_, err := engine.SyncOrder(ctx, res.Record)
		record(err)
	}

	for _, res := range data.Products {
		idx++
		if !res.Ok() {
			continue
		}
		r.prog.Update("Syncing products", idx, total)
		_, err := engine.SyncProduct(ctx, res.Record)
		record(err)
	}

	for _, res := range data.LineItems {
		idx++
		if !res.Ok() {
			continue
		}
		r.prog.Update("Syncing line items", idx, total)
		skipped, err := engine.SyncLineItem(ctx, res.Record)
		if skipped {
			summary.Skipped++
			continue
		}
		record(err)
	}

	r.prog.Finish()
	log.Info("run complete",
		"total", total,
		"synced", summary.Synced,
		"skipped", summary.Skipped,
		"failed", summary.Failed(),
	)
	return summary, nil
}
