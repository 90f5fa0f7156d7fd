package core

// Tracker is the append-only cross-reference from natural keys to CRM
// ids, populated as each record type syncs and read by the types that
// depend on it. A missing entry is never retried; dependents report it
// immediately as a data-integrity failure.
//
// The run is single-threaded, so plain maps suffice.
type Tracker struct {
	companies map[int]string    // customer number → company id
	contacts  map[string]string // mapped email → contact id
	deals     map[string]string // sales order number → deal id
	products  map[string]string // SKU → product id

	// Sales order numbers whose deal was found in the CRM rather than
	// created by this run. Line items for these deals are skipped: a
	// line item has no identity of its own, so there is no safe way to
	// reconcile against what the deal already carries.
	preexistingDeals map[string]bool
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		companies:        make(map[int]string),
		contacts:         make(map[string]string),
		deals:            make(map[string]string),
		products:         make(map[string]string),
		preexistingDeals: make(map[string]bool),
	}
}

// AddCompany records a synced company.
func (t *Tracker) AddCompany(customerNumber int, id string) {
	t.companies[customerNumber] = id
}

// Company returns the CRM id for a customer number.
func (t *Tracker) Company(customerNumber int) (string, bool) {
	id, ok := t.companies[customerNumber]
	return id, ok
}

// AddContact records a synced contact under its mapped email (the
// placeholder email for contacts that had none).
func (t *Tracker) AddContact(email, id string) {
	t.contacts[email] = id
}

// Contact returns the CRM id for an email.
func (t *Tracker) Contact(email string) (string, bool) {
	id, ok := t.contacts[email]
	return id, ok
}

// AddDeal records a synced deal. preexisted marks deals that were found
// in the CRM instead of created.
func (t *Tracker) AddDeal(salesOrderNumber, id string, preexisted bool) {
	t.deals[salesOrderNumber] = id
	if preexisted {
		t.preexistingDeals[salesOrderNumber] = true
	}
}

// Deal returns the CRM id for a sales order number.
func (t *Tracker) Deal(salesOrderNumber string) (string, bool) {
	id, ok := t.deals[salesOrderNumber]
	return id, ok
}

// DealPreexisted reports whether the deal for a sales order number was
// already in the CRM before this run.
func (t *Tracker) DealPreexisted(salesOrderNumber string) bool {
	return t.preexistingDeals[salesOrderNumber]
}

// AddProduct records a synced product under its SKU.
func (t *Tracker) AddProduct(sku, id string) {
	t.products[sku] = id
}

// Product returns the CRM id for a SKU.
func (t *Tracker) Product(sku string) (string, bool) {
	id, ok := t.products[sku]
	return id, ok
}
