// Package schema defines the typed records parsed from the Impress
// spreadsheet exports and the per-row error type produced when a row
// cannot be parsed. Records are immutable once parsed; enrichment in
// the core package works on copies.
package schema

import (
	"fmt"
	"time"
)

// DataType tags which Impress export a record (or a DataError) came from.
type DataType string

const (
	TypeCustomer DataType = "Customer"
	TypeContact  DataType = "Contact"
	TypeOrder    DataType = "Order"
	TypeProduct  DataType = "Product"
	TypeLineItem DataType = "Line Item"
	TypePO       DataType = "PO"
)

// Customer is one row of the customers export. The customer number is the
// natural key used to reconcile against HubSpot companies.
type Customer struct {
	CustomerNumber int
	AgentCode      string
	CustomerName   string
	StreetAddress  string
	AddressLine2   string
	City           string
	State          string
	ZipCode        string
	Country        string
	Phone          string
}

// Contact is one row of the contacts export, scoped to a customer number.
// Email may be blank; the sync engine substitutes a deterministic
// placeholder in that case.
type Contact struct {
	CustomerNumber int
	AddressCode    string
	Name           string
	AddressLine2   string
	City           string
	State          string
	ZipCode        string
	Country        string
	Phone          string
	Fax            string
	Email          string
}

// Order is one row of the orders export. The sales order number is the
// natural key used to reconcile against HubSpot deals. The enrichment
// fields (Pipeline, DealStage, OwnerID, PONumber, InvoiceDate) are blank
// until core.EnrichOrder fills them.
type Order struct {
	CustomerNumber            int
	SalesOrderType            string
	SalesOrderNumber          string
	EnteredDate               *time.Time
	RequestDate               *time.Time
	CancelDate                *time.Time
	CustomerPONumber          string
	AgentName                 string
	Purchaser                 string
	BuyerEmail                string
	ShippingCost              *float64
	TaxTotal                  *float64
	OrderTotal                *float64
	OrderCost                 *float64
	CommissionAmount          *float64
	InvoiceDate               *time.Time
	InternalComments          string
	Comments                  string
	ShipVia                   string
	GarmentDesign             string
	GarmentDesignDescription  string
	GarmentDesignInstructions string
	Shorted                   bool

	// Derived during enrichment.
	Pipeline  string
	DealStage string
	OwnerID   string
	PONumber  string
}

// Product is one row of the products export. The Impress export stores
// the SKU and the display name in swapped columns relative to how the
// rest of the business uses them; the swap is preserved as observed so
// that reconciliation stays consistent with records already in HubSpot.
// The SKU field is the natural key either way.
type Product struct {
	Name        string
	SKU         string
	ProductType string
	UnitPrice   *float64
}

// LineItem is one row of the line items export. Line items have no
// natural key of their own; they reference a sales order number and a
// SKU. SKU is derived during enrichment (Item# preferred over SKU#).
type LineItem struct {
	SalesOrderNumber string
	EnteredDate      *time.Time
	Size             string
	SizeQtyOrdered   *float64
	SizeCost         *float64
	UnitPrice        *float64
	SKUNumber        string // the SKU# column as exported
	ItemNumber       string // the Item# column as exported
	SKU              string // resolved during enrichment
	Name             string // resolved during enrichment via product lookup
}

// PO is one row of the purchase orders export. It exists only to join a
// PO number onto orders by sales order number.
type PO struct {
	SalesOrderNumber string
	PONumber         string
}

// DataError records a single row that failed to parse. It is non-fatal:
// it travels alongside successfully parsed records in the same sequence
// and every later stage checks and skips it.
type DataError struct {
	Type          DataType
	RowIdentifier string // best-effort, from a type-specific column
	RowNumber     int    // approximate: blank rows are skipped upstream
	Message       string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s row %q: %s", e.Type, e.RowIdentifier, e.Message)
}

// RowResult is the two-variant outcome of parsing one row: either a
// typed record or a DataError, never both.
type RowResult[T any] struct {
	Record T
	Err    *DataError
}

// Ok reports whether the row parsed successfully.
func (r RowResult[T]) Ok() bool { return r.Err == nil }
