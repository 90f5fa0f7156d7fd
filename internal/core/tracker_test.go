package core

import "testing"

func TestTracker(t *testing.T) {
	tr := NewTracker()

	if _, ok := tr.Company(1); ok {
		t.Error("Company(1) found in empty tracker")
	}

	tr.AddCompany(1001, "c-1")
	if id, ok := tr.Company(1001); !ok || id != "c-1" {
		t.Errorf("Company(1001) = %q, %v; want %q, true", id, ok, "c-1")
	}

	tr.AddContact("buyer@example.com", "ct-1")
	if id, ok := tr.Contact("buyer@example.com"); !ok || id != "ct-1" {
		t.Errorf("Contact = %q, %v; want %q, true", id, ok, "ct-1")
	}

	tr.AddProduct("TS-100", "p-1")
	if id, ok := tr.Product("TS-100"); !ok || id != "p-1" {
		t.Errorf("Product = %q, %v; want %q, true", id, ok, "p-1")
	}
}

func TestTracker_PreexistingDeals(t *testing.T) {
	tr := NewTracker()

	tr.AddDeal("SO-1", "d-1", false)
	tr.AddDeal("SO-2", "d-2", true)

	if tr.DealPreexisted("SO-1") {
		t.Error("DealPreexisted(SO-1) = true for deal created this run")
	}
	if !tr.DealPreexisted("SO-2") {
		t.Error("DealPreexisted(SO-2) = false for deal found in the CRM")
	}
	if tr.DealPreexisted("SO-9") {
		t.Error("DealPreexisted(SO-9) = true for unknown deal")
	}

	if id, ok := tr.Deal("SO-2"); !ok || id != "d-2" {
		t.Errorf("Deal(SO-2) = %q, %v; want %q, true", id, ok, "d-2")
	}
}
