package core

// sync.go is the per-record reconciliation state machine. Companies,
// contacts and products follow create → (conflict) → search → update:
// the CRM reports a duplicate unique value only after a create attempt,
// so creation is optimistic and the search runs reactively. Deals
// invert this — dealname is not enforced unique, so the engine searches
// proactively before deciding to create or update, and remembers which
// outcome happened so line items can skip deals that preexisted the
// run. Line items have no identity at all: skip or create, never
// update.
//
// Every method is independent per record; the only shared state is the
// append-only Tracker.

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/JonMunkholm/hubsync/internal/hubspot"
	"github.com/JonMunkholm/hubsync/internal/schema"
)

// Engine reconciles records against the CRM, one at a time.
type Engine struct {
	client  *hubspot.Client
	tracker *Tracker
	log     *slog.Logger
}

// NewEngine builds an engine around an explicit client and tracker.
func NewEngine(client *hubspot.Client, tracker *Tracker, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{client: client, tracker: tracker, log: log}
}

// Tracker exposes the engine's cross-reference state.
func (e *Engine) Tracker() *Tracker { return e.tracker }

// SyncCustomer creates or updates the company for a customer and
// returns the company id.
func (e *Engine) SyncCustomer(ctx context.Context, c schema.Customer) (string, error) {
	props := companyProperties(c)
	key := strconv.Itoa(c.CustomerNumber)

	created, err := e.client.Create(ctx, hubspot.ObjectCompanies, props, nil)
	if err != nil {
		return "", err
	}
	if created.OK() {
		e.tracker.AddCompany(c.CustomerNumber, created.ID)
		return created.ID, nil
	}

	if !hubspot.IsDuplicateCustomerNumber(created) {
		return "", apiErrorf("error %d while trying to sync customer number %s", created.StatusCode, key)
	}

	// The create conflict does not reliably carry the existing record's
	// id, and companies cannot be patched by customer number, so find
	// the id first.
	found, err := e.client.Search(ctx, hubspot.ObjectCompanies, hubspot.PropertyCustomerNumber, key)
	if err != nil {
		return "", err
	}
	if !found.OK() {
		return "", apiErrorf("failed to execute search for existing customer number %s", key)
	}
	if found.Total != 1 || len(found.IDs) != 1 {
		return "", apiErrorf("failed to find existing customer number %s", key)
	}

	id := found.IDs[0]
	updated, err := e.client.Update(ctx, hubspot.ObjectCompanies, id, props)
	if err != nil {
		return "", err
	}
	if !updated.OK() {
		return "", apiErrorf("failed to patch existing customer number %s", key)
	}

	e.tracker.AddCompany(c.CustomerNumber, id)
	return id, nil
}

// SyncContact creates or updates the contact and returns the contact
// id. The parent company must already be in the tracker; that check
// runs before any network call.
func (e *Engine) SyncContact(ctx context.Context, c schema.Contact) (string, error) {
	companyID, ok := e.tracker.Company(c.CustomerNumber)
	if !ok {
		return "", integrityErrorf(
			"contact %s references customer number %d, which was not found in the dataset",
			c.Name, c.CustomerNumber)
	}

	props := contactProperties(c)
	email := props["email"]

	created, err := e.client.Create(ctx, hubspot.ObjectContacts, props, []hubspot.Association{
		{ToID: companyID, TypeID: hubspot.AssocContactToCompany},
	})
	if err != nil {
		return "", err
	}
	if created.OK() {
		e.tracker.AddContact(email, created.ID)
		return created.ID, nil
	}

	if !hubspot.IsContactConflict(created) {
		return "", apiErrorf("unknown error creating contact: name was %s, email was %s, phone was %s",
			c.Name, c.Email, c.Phone)
	}

	// Search by the mapped email (the placeholder for blank-email
	// contacts) since that is the value the CRM holds.
	found, err := e.client.Search(ctx, hubspot.ObjectContacts, hubspot.PropertyEmail, email)
	if err != nil {
		return "", err
	}
	if !found.OK() {
		return "", apiErrorf("failed to execute search for existing contact: name was %s, email was %s, phone was %s",
			c.Name, c.Email, c.Phone)
	}
	if found.Total != 1 || len(found.IDs) != 1 {
		return "", apiErrorf("failed to find existing contact: name was %s, email was %s, phone was %s",
			c.Name, c.Email, c.Phone)
	}

	updated, err := e.client.Update(ctx, hubspot.ObjectContacts, found.IDs[0], props)
	if err != nil {
		return "", err
	}
	if !updated.OK() {
		return "", apiErrorf("failed to update existing contact: name was %s, email was %s, phone was %s",
			c.Name, c.Email, c.Phone)
	}

	id := updated.ID
	if id == "" {
		id = found.IDs[0]
	}
	e.tracker.AddContact(email, id)
	return id, nil
}

// SyncOrder creates or updates the deal for an order and returns the
// deal id. Both the associated company and contact must resolve from
// the tracker before any network call. Dealname carries no uniqueness
// guarantee in the CRM, so an extra search runs up front to avoid
// posting duplicate deals; whether the deal preexisted is recorded for
// the line-item skip set.
func (e *Engine) SyncOrder(ctx context.Context, o schema.Order) (string, error) {
	companyID, companyOK := e.tracker.Company(o.CustomerNumber)
	contactID, contactOK := e.tracker.Contact(o.BuyerEmail)
	if !companyOK {
		return "", integrityErrorf("order %s references a company that was not found in the dataset", o.SalesOrderNumber)
	}
	if !contactOK {
		return "", integrityErrorf("order %s references a contact that was not found in the dataset", o.SalesOrderNumber)
	}

	found, err := e.client.Search(ctx, hubspot.ObjectDeals, hubspot.PropertyDealName, o.SalesOrderNumber)
	if err != nil {
		return "", err
	}
	if !found.OK() {
		return "", apiErrorf("failed to execute search for deal with sales order# %s", o.SalesOrderNumber)
	}

	props := dealProperties(o)

	if len(found.IDs) > 0 {
		id := found.IDs[0]
		updated, err := e.client.Update(ctx, hubspot.ObjectDeals, id, props)
		if err != nil {
			return "", err
		}
		if !updated.OK() {
			return "", apiErrorf("failed to update existing deal with sales order# %s", o.SalesOrderNumber)
		}
		e.tracker.AddDeal(o.SalesOrderNumber, id, true)
		return id, nil
	}

	created, err := e.client.Create(ctx, hubspot.ObjectDeals, props, []hubspot.Association{
		{ToID: companyID, TypeID: hubspot.AssocDealToCompany},
		{ToID: contactID, TypeID: hubspot.AssocDealToContact},
	})
	if err != nil {
		return "", err
	}
	if !created.OK() {
		return "", apiErrorf("failed to create deal with sales order# %s", o.SalesOrderNumber)
	}

	e.tracker.AddDeal(o.SalesOrderNumber, created.ID, false)
	return created.ID, nil
}

// SyncProduct creates or updates the product for a record and returns
// the product id. Same shape as SyncCustomer with the SKU as the
// unique key.
func (e *Engine) SyncProduct(ctx context.Context, p schema.Product) (string, error) {
	props := productProperties(p)

	created, err := e.client.Create(ctx, hubspot.ObjectProducts, props, nil)
	if err != nil {
		return "", err
	}
	if created.OK() {
		e.tracker.AddProduct(p.SKU, created.ID)
		return created.ID, nil
	}

	if !hubspot.IsDuplicateSKU(created) {
		return "", apiErrorf("error %d while trying to sync product %s", created.StatusCode, p.Name)
	}

	found, err := e.client.Search(ctx, hubspot.ObjectProducts, hubspot.PropertySKU, p.SKU)
	if err != nil {
		return "", err
	}
	if !found.OK() {
		return "", apiErrorf("failed to execute search for existing product %s", p.Name)
	}
	if found.Total != 1 || len(found.IDs) != 1 {
		return "", apiErrorf("failed to find existing product %s", p.Name)
	}

	id := found.IDs[0]
	updated, err := e.client.Update(ctx, hubspot.ObjectProducts, id, props)
	if err != nil {
		return "", err
	}
	if !updated.OK() {
		return "", apiErrorf("failed to patch existing product %s", p.Name)
	}

	e.tracker.AddProduct(p.SKU, id)
	return id, nil
}

// SyncLineItem creates the line item for its deal, or skips it
// entirely when the deal preexisted this run (skipped reports which).
// There is no update path: line items cannot be identified against
// what the CRM already holds.
func (e *Engine) SyncLineItem(ctx context.Context, li schema.LineItem) (skipped bool, err error) {
	if e.tracker.DealPreexisted(li.SalesOrderNumber) {
		e.log.Debug("skipping line item for preexisting deal", "sales_order", li.SalesOrderNumber)
		return true, nil
	}

	dealID, ok := e.tracker.Deal(li.SalesOrderNumber)
	if !ok {
		return false, integrityErrorf("line item for deal %s references a deal that was not found in the dataset", li.SalesOrderNumber)
	}
	productID, ok := e.tracker.Product(li.SKU)
	if !ok {
		return false, integrityErrorf("line item for deal %s referenced product %s, which was not found in the dataset",
			li.SalesOrderNumber, li.SKU)
	}

	props := lineItemProperties(li)
	props["hs_product_id"] = productID

	created, err := e.client.Create(ctx, hubspot.ObjectLineItems, props, []hubspot.Association{
		{ToID: dealID, TypeID: hubspot.AssocLineItemToDeal},
	})
	if err != nil {
		return false, err
	}
	if !created.OK() {
		return false, apiErrorf("failed to create line item for deal %s", li.SalesOrderNumber)
	}
	return false, nil
}
