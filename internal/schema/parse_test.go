package schema

import (
	"strings"
	"testing"
)

func TestParseCustomers(t *testing.T) {
	rows := []Row{
		{"Customer Number": "1001", "Customer Name": "Acme Corp", "City": "Portland", "Phone#": "503-555-0100"},
		{"Customer Number": "not-a-number", "Customer Name": "Broken Row"},
		{"Customer Number": "1003"}, // missing required name
	}

	results := ParseCustomers(rows)
	if len(results) != len(rows) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(rows))
	}

	if !results[0].Ok() {
		t.Fatalf("results[0] failed: %v", results[0].Err)
	}
	got := results[0].Record
	if got.CustomerNumber != 1001 {
		t.Errorf("CustomerNumber = %d, want 1001", got.CustomerNumber)
	}
	if got.CustomerName != "Acme Corp" {
		t.Errorf("CustomerName = %q, want %q", got.CustomerName, "Acme Corp")
	}
	if got.Phone != "503-555-0100" {
		t.Errorf("Phone = %q, want %q", got.Phone, "503-555-0100")
	}

	if results[1].Ok() {
		t.Fatal("results[1] parsed, want error for non-numeric customer number")
	}
	err := results[1].Err
	if err.Type != TypeCustomer {
		t.Errorf("Err.Type = %q, want %q", err.Type, TypeCustomer)
	}
	if err.RowIdentifier != "not-a-number" {
		t.Errorf("Err.RowIdentifier = %q, want %q", err.RowIdentifier, "not-a-number")
	}
	if err.RowNumber != 1 {
		t.Errorf("Err.RowNumber = %d, want 1", err.RowNumber)
	}
	if !strings.Contains(err.Message, "Customer Number") {
		t.Errorf("Err.Message = %q, want mention of Customer Number", err.Message)
	}

	if results[2].Ok() {
		t.Fatal("results[2] parsed, want error for missing customer name")
	}
	if !strings.Contains(results[2].Err.Message, "Customer Name") {
		t.Errorf("Err.Message = %q, want mention of Customer Name", results[2].Err.Message)
	}
}

func TestParseCustomers_CollectsEveryBadField(t *testing.T) {
	results := ParseCustomers([]Row{{"Customer Number": "abc"}})

	if results[0].Ok() {
		t.Fatal("row parsed, want error")
	}
	msg := results[0].Err.Message
	if !strings.Contains(msg, "Customer Number") || !strings.Contains(msg, "Customer Name") {
		t.Errorf("Message = %q, want both bad fields listed", msg)
	}
}

func TestParseContacts_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid address", email: "buyer@example.com", wantErr: false},
		{name: "blank is allowed", email: "", wantErr: false},
		{name: "not an address", email: "not-an-email", wantErr: true},
		{name: "display name form rejected", email: "Buyer <buyer@example.com>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []Row{{
				"Customer Number": "42",
				"Name":            "Jordan Smith",
				"Email":           tt.email,
			}}
			results := ParseContacts(rows)

			if tt.wantErr {
				if results[0].Ok() {
					t.Fatalf("email %q parsed, want error", tt.email)
				}
				if !strings.Contains(results[0].Err.Message, "Email") {
					t.Errorf("Message = %q, want mention of Email", results[0].Err.Message)
				}
				return
			}
			if !results[0].Ok() {
				t.Fatalf("email %q failed: %v", tt.email, results[0].Err)
			}
			if results[0].Record.Email != tt.email {
				t.Errorf("Email = %q, want %q", results[0].Record.Email, tt.email)
			}
		})
	}
}

func TestParseContacts_RowIdentifier(t *testing.T) {
	results := ParseContacts([]Row{{"Customer Number": "77"}})

	if results[0].Ok() {
		t.Fatal("row parsed, want error for missing name")
	}
	want := "Contact for customer number 77"
	if results[0].Err.RowIdentifier != want {
		t.Errorf("RowIdentifier = %q, want %q", results[0].Err.RowIdentifier, want)
	}
}

func TestParseOrders(t *testing.T) {
	rows := []Row{{
		"Customer Number":  "1001",
		"Sales Order#":     "SO-5001",
		"Sales Order Type": "dye sub",
		"Entered Date":     "45000",
		"Order $Total":     "1234.56",
		"Buyer Email":      "buyer@example.com",
		"Shorted":          "true",
	}}

	results := ParseOrders(rows)
	if !results[0].Ok() {
		t.Fatalf("order failed: %v", results[0].Err)
	}
	got := results[0].Record

	if got.SalesOrderNumber != "SO-5001" {
		t.Errorf("SalesOrderNumber = %q, want %q", got.SalesOrderNumber, "SO-5001")
	}
	if got.EnteredDate == nil {
		t.Fatal("EnteredDate = nil, want parsed date")
	}
	if want := SerialDate(45000); !got.EnteredDate.Equal(want) {
		t.Errorf("EnteredDate = %v, want %v", got.EnteredDate, want)
	}
	if got.RequestDate != nil {
		t.Errorf("RequestDate = %v, want nil for blank cell", got.RequestDate)
	}
	if got.OrderTotal == nil || *got.OrderTotal != 1234.56 {
		t.Errorf("OrderTotal = %v, want 1234.56", got.OrderTotal)
	}
	if got.ShippingCost != nil {
		t.Errorf("ShippingCost = %v, want nil for blank cell", got.ShippingCost)
	}
	if !got.Shorted {
		t.Error("Shorted = false, want true")
	}
	if got.Pipeline != "" || got.DealStage != "" {
		t.Errorf("enrichment fields set at parse time: pipeline=%q stage=%q", got.Pipeline, got.DealStage)
	}
}

func TestParseOrders_BadValues(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{name: "bad date", field: "Entered Date", value: "yesterday"},
		{name: "bad float", field: "Order $Total", value: "lots"},
		{name: "bad email", field: "Buyer Email", value: "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := Row{"Customer Number": "1", "Sales Order#": "SO-1", tt.field: tt.value}
			results := ParseOrders([]Row{row})

			if results[0].Ok() {
				t.Fatalf("%s=%q parsed, want error", tt.field, tt.value)
			}
			if !strings.Contains(results[0].Err.Message, tt.field) {
				t.Errorf("Message = %q, want mention of %q", results[0].Err.Message, tt.field)
			}
		})
	}
}

func TestParseLineItems(t *testing.T) {
	rows := []Row{
		{"Sales Order#": "SO-1", "SKU#": "TS-100", "Size": "L", "Size Qty Ordered": "12"},
		{"SKU#": "TS-200"}, // missing order number
	}

	results := ParseLineItems(rows)
	if !results[0].Ok() {
		t.Fatalf("line item failed: %v", results[0].Err)
	}
	if results[0].Record.SKU != "" {
		t.Errorf("SKU = %q, want blank before enrichment", results[0].Record.SKU)
	}

	if results[1].Ok() {
		t.Fatal("results[1] parsed, want error for missing order number")
	}
	want := "Line item for order  and SKU TS-200"
	if results[1].Err.RowIdentifier != want {
		t.Errorf("RowIdentifier = %q, want %q", results[1].Err.RowIdentifier, want)
	}
}

func TestDataError_Error(t *testing.T) {
	err := &DataError{
		Type:          TypeOrder,
		RowIdentifier: "SO-5001",
		Message:       "encountered issues with the following fields: Entered Date",
	}
	want := `Order row "SO-5001": encountered issues with the following fields: Entered Date`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestParseRows_TrimsWhitespace(t *testing.T) {
	results := ParseCustomers([]Row{{
		"Customer Number": " 55 ",
		"Customer Name":   "  Padded Name  ",
	}})

	if !results[0].Ok() {
		t.Fatalf("row failed: %v", results[0].Err)
	}
	if results[0].Record.CustomerNumber != 55 {
		t.Errorf("CustomerNumber = %d, want 55", results[0].Record.CustomerNumber)
	}
	if results[0].Record.CustomerName != "Padded Name" {
		t.Errorf("CustomerName = %q, want %q", results[0].Record.CustomerName, "Padded Name")
	}
}
