package schema

// parse.go converts raw spreadsheet rows into typed records. Each row is
// handled independently: a row that fails validation becomes a DataError
// in the output sequence and never stops the sheet. The output sequence
// always has the same length as the input.

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"
)

// Row is one untyped spreadsheet row keyed by column header. Blank cells
// are absent from the map.
type Row map[string]string

// rowReader reads typed values out of a Row, accumulating the names of
// columns that fail so the row's DataError can report every offending
// field at once.
type rowReader struct {
	row Row
	bad []string
}

func (r *rowReader) fail(field string) {
	for _, b := range r.bad {
		if b == field {
			return
		}
	}
	r.bad = append(r.bad, field)
}

// str returns an optional string column, trimmed. Missing cells yield "".
func (r *rowReader) str(field string) string {
	return strings.TrimSpace(r.row[field])
}

// requireStr returns a required string column, failing the row if blank.
func (r *rowReader) requireStr(field string) string {
	v := r.str(field)
	if v == "" {
		r.fail(field)
	}
	return v
}

// requireInt returns a required integer column.
func (r *rowReader) requireInt(field string) int {
	v := r.str(field)
	if v == "" {
		r.fail(field)
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(field)
		return 0
	}
	return n
}

// float returns an optional numeric column, nil when blank.
func (r *rowReader) float(field string) *float64 {
	v := r.str(field)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(field)
		return nil
	}
	return &f
}

// date returns an optional serial-date column, nil when blank.
func (r *rowReader) date(field string) *time.Time {
	v := r.str(field)
	if v == "" {
		return nil
	}
	serial, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(field)
		return nil
	}
	t := SerialDate(serial)
	return &t
}

// email returns an optional email column, failing the row if the value
// is present but not a plain address.
func (r *rowReader) email(field string) string {
	v := r.str(field)
	if v == "" {
		return ""
	}
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		r.fail(field)
		return ""
	}
	return v
}

// boolean returns an optional boolean column; blank and unparseable
// values are false (Impress leaves flag columns empty when unset).
func (r *rowReader) boolean(field string) bool {
	v := r.str(field)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}

// parseRows maps every raw row to a RowResult, preserving order and
// length. rowID extracts the best-effort row identifier used in error
// reports; it runs before parsing so even unparseable rows get one.
func parseRows[T any](t DataType, rows []Row, rowID func(Row) string, parse func(*rowReader) T) []RowResult[T] {
	out := make([]RowResult[T], 0, len(rows))
	for i, row := range rows {
		rr := &rowReader{row: row}
		rec := parse(rr)
		if len(rr.bad) > 0 {
			out = append(out, RowResult[T]{Err: &DataError{
				Type:          t,
				RowIdentifier: rowID(row),
				RowNumber:     i,
				Message:       "encountered issues with the following fields: " + strings.Join(rr.bad, ", "),
			}})
			continue
		}
		out = append(out, RowResult[T]{Record: rec})
	}
	return out
}

// ParseCustomers parses the customers sheet.
func ParseCustomers(rows []Row) []RowResult[Customer] {
	return parseRows(TypeCustomer, rows,
		func(row Row) string { return row["Customer Number"] },
		func(r *rowReader) Customer {
			return Customer{
				CustomerNumber: r.requireInt("Customer Number"),
				AgentCode:      r.str("Agent #1"),
				CustomerName:   r.requireStr("Customer Name"),
				StreetAddress:  r.str("Street Address"),
				AddressLine2:   r.str("Address Line 2"),
				City:           r.str("City"),
				State:          r.str("State"),
				ZipCode:        r.str("Zip Code"),
				Country:        r.str("Country"),
				Phone:          r.str("Phone#"),
			}
		})
}

// ParseContacts parses the contacts sheet.
func ParseContacts(rows []Row) []RowResult[Contact] {
	return parseRows(TypeContact, rows,
		func(row Row) string {
			return fmt.Sprintf("Contact for customer number %s", row["Customer Number"])
		},
		func(r *rowReader) Contact {
			return Contact{
				CustomerNumber: r.requireInt("Customer Number"),
				AddressCode:    r.str("Address Code"),
				Name:           r.requireStr("Name"),
				AddressLine2:   r.str("Address Line 2"),
				City:           r.str("City"),
				State:          r.str("State"),
				ZipCode:        r.str("Zip Code"),
				Country:        r.str("Country"),
				Phone:          r.str("Phone#"),
				Fax:            r.str("Fax#"),
				Email:          r.email("Email"),
			}
		})
}

// ParseOrders parses the orders sheet. Enrichment fields stay blank here.
func ParseOrders(rows []Row) []RowResult[Order] {
	return parseRows(TypeOrder, rows,
		func(row Row) string { return row["Sales Order#"] },
		func(r *rowReader) Order {
			return Order{
				CustomerNumber:            r.requireInt("Customer Number"),
				SalesOrderType:            r.str("Sales Order Type"),
				SalesOrderNumber:          r.requireStr("Sales Order#"),
				EnteredDate:               r.date("Entered Date"),
				RequestDate:               r.date("Request Date"),
				CancelDate:                r.date("Cancel Date"),
				CustomerPONumber:          r.str("Customer PO#"),
				AgentName:                 r.str("Agent Name#1"),
				Purchaser:                 r.str("Purchaser"),
				BuyerEmail:                r.email("Buyer Email"),
				ShippingCost:              r.float("Shipping $Cost"),
				TaxTotal:                  r.float("Tax $Total"),
				OrderTotal:                r.float("Order $Total"),
				OrderCost:                 r.float("Order $Cost"),
				CommissionAmount:          r.float("Commission Amount"),
				InvoiceDate:               r.date("Invoice Date"),
				InternalComments:          r.str("Internal Comments"),
				Comments:                  r.str("Comments"),
				ShipVia:                   r.str("Ship Via"),
				GarmentDesign:             r.str("Garment Design"),
				GarmentDesignDescription:  r.str("Garment Design Description"),
				GarmentDesignInstructions: r.str("Garment Design Instructions"),
				Shorted:                   r.boolean("Shorted"),
			}
		})
}

// ParseProducts parses the products sheet.
func ParseProducts(rows []Row) []RowResult[Product] {
	return parseRows(TypeProduct, rows,
		func(row Row) string { return row["Name"] },
		func(r *rowReader) Product {
			return Product{
				Name:        r.requireStr("Name"),
				SKU:         r.str("SKU"),
				ProductType: r.str("Product Type"),
				UnitPrice:   r.float("Unit Price"),
			}
		})
}

// ParseLineItems parses the line items sheet. SKU and Name are resolved
// later by enrichment.
func ParseLineItems(rows []Row) []RowResult[LineItem] {
	return parseRows(TypeLineItem, rows,
		func(row Row) string {
			return fmt.Sprintf("Line item for order %s and SKU %s", row["Sales Order#"], row["SKU#"])
		},
		func(r *rowReader) LineItem {
			return LineItem{
				SalesOrderNumber: r.requireStr("Sales Order#"),
				EnteredDate:      r.date("Entered Date"),
				Size:             r.str("Size"),
				SizeQtyOrdered:   r.float("Size Qty Ordered"),
				SizeCost:         r.float("Size Cost"),
				UnitPrice:        r.float("Unit Price"),
				SKUNumber:        r.str("SKU#"),
				ItemNumber:       r.str("Item#"),
				Name:             r.str("Name"),
			}
		})
}

// ParsePOs parses the purchase orders sheet.
func ParsePOs(rows []Row) []RowResult[PO] {
	return parseRows(TypePO, rows,
		func(row Row) string {
			return fmt.Sprintf("PO for order %s", row["Sales Order#"])
		},
		func(r *rowReader) PO {
			return PO{
				SalesOrderNumber: r.requireStr("Sales Order#"),
				PONumber:         r.str("PO#"),
			}
		})
}
