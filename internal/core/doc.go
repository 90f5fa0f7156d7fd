// Package core provides the business logic for the HubSpot migration.
//
// This package holds all domain logic independent of the CLI or the CRM
// transport: enrichment of parsed records, the per-record sync state
// machine, cross-reference tracking, the run orchestrator and the error
// report.
//
// # Sync order
//
// Records are synced in fixed dependency order: customers become
// companies first, then contacts, orders (deals), products, and finally
// line items. Later stages look up the CRM IDs of earlier ones in the
// [Tracker]; a record whose dependency is missing fails with a Data
// Integrity error instead of being created dangling.
//
// # Idempotency
//
// Every record type is create-first: the engine attempts a create and
// falls back to search-and-update when the CRM reports the record
// already exists. Deals are the exception — deal names are not unique
// in HubSpot, so [Engine.SyncOrder] searches first and updates in
// place. Line items cannot be deduplicated at all, so they are skipped
// entirely when their parent deal existed before the run.
//
// # Error handling
//
// Parse failures are [schema.DataError] values carrying row context;
// sync failures are [AppError] values categorized by [ErrorKind]. A
// failed record never stops the batch: the orchestrator collects every
// failure and [WriteReport] flattens them into the operator-facing
// report workbook.
package core
