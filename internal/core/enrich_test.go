package core

import (
	"testing"
	"time"

	"github.com/JonMunkholm/hubsync/internal/hubspot"
	"github.com/JonMunkholm/hubsync/internal/schema"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestEnrichOrder_DealStage(t *testing.T) {
	entered := datePtr(2023, time.June, 1)

	tests := []struct {
		name  string
		order schema.Order
		want  string
	}{
		{
			name:  "invoiced order is closed won",
			order: schema.Order{EnteredDate: entered},
			want:  "closedwon",
		},
		{
			name:  "shorted order is closed lost",
			order: schema.Order{EnteredDate: entered, Shorted: true},
			want:  "closedlost",
		},
		{
			name:  "shorted wins even without an invoice date",
			order: schema.Order{Shorted: true},
			want:  "closedlost",
		},
		{
			name:  "open order is contract sent",
			order: schema.Order{},
			want:  "contractsent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnrichOrder(tt.order, nil, nil)
			if got.DealStage != tt.want {
				t.Errorf("DealStage = %q, want %q", got.DealStage, tt.want)
			}
			if got.Pipeline != "default" {
				t.Errorf("Pipeline = %q, want %q", got.Pipeline, "default")
			}
		})
	}
}

func TestEnrichOrder_InvoiceDateFromEnteredDate(t *testing.T) {
	entered := datePtr(2023, time.June, 1)
	got := EnrichOrder(schema.Order{EnteredDate: entered}, nil, nil)

	if got.InvoiceDate == nil || !got.InvoiceDate.Equal(*entered) {
		t.Errorf("InvoiceDate = %v, want %v", got.InvoiceDate, entered)
	}
}

func TestEnrichOrder_OwnerMatch(t *testing.T) {
	owners := []hubspot.Owner{
		{ID: "10", FirstName: "Alex", LastName: "Rivera"},
		{ID: "11", FirstName: "Sam", LastName: "Chen"},
	}

	tests := []struct {
		name      string
		agentName string
		wantOwner string
	}{
		{name: "exact match", agentName: "Sam Chen", wantOwner: "11"},
		{name: "case insensitive match", agentName: "ALEX RIVERA", wantOwner: "10"},
		{name: "no match leaves owner unset", agentName: "Nobody Here", wantOwner: ""},
		{name: "blank agent never matches", agentName: "", wantOwner: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnrichOrder(schema.Order{AgentName: tt.agentName}, owners, nil)
			if got.OwnerID != tt.wantOwner {
				t.Errorf("OwnerID = %q, want %q", got.OwnerID, tt.wantOwner)
			}
		})
	}
}

func TestEnrichOrder_POJoin(t *testing.T) {
	pos := []schema.RowResult[schema.PO]{
		{Err: &schema.DataError{Type: schema.TypePO}}, // bad rows are skipped
		{Record: schema.PO{SalesOrderNumber: "SO-1", PONumber: "PO-100"}},
		{Record: schema.PO{SalesOrderNumber: "SO-2", PONumber: "PO-200"}},
	}

	got := EnrichOrder(schema.Order{SalesOrderNumber: "SO-2"}, nil, pos)
	if got.PONumber != "PO-200" {
		t.Errorf("PONumber = %q, want %q", got.PONumber, "PO-200")
	}

	got = EnrichOrder(schema.Order{SalesOrderNumber: "SO-9"}, nil, pos)
	if got.PONumber != "" {
		t.Errorf("PONumber = %q, want blank for unmatched order", got.PONumber)
	}
}

func TestEnrichOrder_TitleCasesOrderType(t *testing.T) {
	got := EnrichOrder(schema.Order{SalesOrderType: "dye sub"}, nil, nil)
	if got.SalesOrderType != "Dye Sub" {
		t.Errorf("SalesOrderType = %q, want %q", got.SalesOrderType, "Dye Sub")
	}
}

func TestTitleCase_Idempotent(t *testing.T) {
	once := TitleCase("screen PRINT order")
	twice := TitleCase(once)
	if once != twice {
		t.Errorf("TitleCase not idempotent: %q then %q", once, twice)
	}
}

func TestEnrichLineItem_SKUPreference(t *testing.T) {
	tests := []struct {
		name string
		li   schema.LineItem
		want string
	}{
		{
			name: "item number preferred",
			li:   schema.LineItem{ItemNumber: "IT-1", SKUNumber: "SK-1"},
			want: "IT-1",
		},
		{
			name: "sku number as fallback",
			li:   schema.LineItem{SKUNumber: "SK-1"},
			want: "SK-1",
		},
		{
			name: "both blank",
			li:   schema.LineItem{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnrichLineItem(tt.li, nil)
			if got.SKU != tt.want {
				t.Errorf("SKU = %q, want %q", got.SKU, tt.want)
			}
		})
	}
}

func TestEnrichLineItem_NameLookup(t *testing.T) {
	products := []schema.RowResult[schema.Product]{
		{Err: &schema.DataError{Type: schema.TypeProduct}},
		{Record: schema.Product{SKU: "TS-100", Name: "Team Tee"}},
	}

	got := EnrichLineItem(schema.LineItem{ItemNumber: "TS-100"}, products)
	if got.Name != "Team Tee" {
		t.Errorf("Name = %q, want %q", got.Name, "Team Tee")
	}

	got = EnrichLineItem(schema.LineItem{ItemNumber: "TS-999", Name: ""}, products)
	if got.Name != "" {
		t.Errorf("Name = %q, want blank for unmatched SKU", got.Name)
	}
}
