package core

// mapping.go translates typed records into the exact property names the
// HubSpot API expects. Blank fields are omitted so the CRM keeps any
// value it already holds for them.

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/JonMunkholm/hubsync/internal/hubspot"
	"github.com/JonMunkholm/hubsync/internal/schema"
)

func setIfPresent(props hubspot.Properties, key, value string) {
	if value != "" {
		props[key] = value
	}
}

func setIfFloat(props hubspot.Properties, key string, value *float64) {
	if value != nil {
		props[key] = strconv.FormatFloat(*value, 'f', -1, 64)
	}
}

func setIfDate(props hubspot.Properties, key string, value *time.Time) {
	if value != nil {
		props[key] = value.UTC().Format("2006-01-02")
	}
}

func companyProperties(c schema.Customer) hubspot.Properties {
	props := hubspot.Properties{
		"customer_number": strconv.Itoa(c.CustomerNumber),
		"name":            c.CustomerName,
	}
	setIfPresent(props, "address", c.StreetAddress)
	setIfPresent(props, "address2", c.AddressLine2)
	setIfPresent(props, "agent_code", c.AgentCode)
	setIfPresent(props, "city", c.City)
	setIfPresent(props, "country", c.Country)
	setIfPresent(props, "phone", c.Phone)
	setIfPresent(props, "state", c.State)
	setIfPresent(props, "zip", c.ZipCode)
	return props
}

// ContactEmail returns the email used as the contact's CRM identity:
// the source email when present, otherwise a deterministic placeholder.
//
// Many historical contacts have no email, but HubSpot treats email as
// the unique identifier, so two blank-email contacts would collide as
// duplicates. Hashing the data a contact DOES have yields a stable,
// content-derived placeholder; the digest is truncated because HubSpot
// caps the domain name length. Known limitation: editing any other
// field of such a contact changes the hash, so a re-sync creates a new
// contact instead of updating the old one.
func ContactEmail(c schema.Contact) string {
	if c.Email != "" {
		return c.Email
	}
	return fmt.Sprintf("UNKNOWN-EMAIL@placeholder%s.com", hashRecord(c)[:44])
}

// hashRecord returns the hex SHA-256 of the record's JSON encoding.
func hashRecord(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		// Records are plain structs; Marshal cannot fail on them.
		panic(err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func contactProperties(c schema.Contact) hubspot.Properties {
	props := hubspot.Properties{
		"email":     ContactEmail(c),
		"firstname": c.Name,
	}
	setIfPresent(props, "address", c.AddressLine2)
	setIfPresent(props, "address_code", c.AddressCode)
	setIfPresent(props, "city", c.City)
	setIfPresent(props, "country", c.Country)
	setIfPresent(props, "phone", c.Phone)
	setIfPresent(props, "state", c.State)
	setIfPresent(props, "zip", c.ZipCode)
	setIfPresent(props, "fax", c.Fax)
	return props
}

func dealProperties(o schema.Order) hubspot.Properties {
	props := hubspot.Properties{
		"dealname": o.SalesOrderNumber,
	}
	setIfPresent(props, "pipeline", o.Pipeline)
	setIfPresent(props, "dealstage", o.DealStage)
	setIfPresent(props, "hubspot_owner_id", o.OwnerID)
	setIfPresent(props, "po_number", o.PONumber)
	setIfPresent(props, "sales_order_type", o.SalesOrderType)
	setIfFloat(props, "amount", o.OrderTotal)
	setIfDate(props, "closedate", o.InvoiceDate)
	return props
}

// productProperties maps a product as observed in the Impress export.
// The export stores SKU and display name in swapped columns; the swap
// is deliberately carried through so records line up with what earlier
// runs already wrote to the CRM.
func productProperties(p schema.Product) hubspot.Properties {
	props := hubspot.Properties{
		"name": p.Name,
	}
	setIfPresent(props, "hs_sku", p.SKU)
	setIfPresent(props, "hs_product_type", p.ProductType)
	setIfFloat(props, "price", p.UnitPrice)
	return props
}

func lineItemProperties(li schema.LineItem) hubspot.Properties {
	props := hubspot.Properties{}
	setIfPresent(props, "name", li.Name)
	setIfPresent(props, "hs_sku", li.SKU)
	setIfFloat(props, "quantity", li.SizeQtyOrdered)
	setIfFloat(props, "price", li.UnitPrice)
	return props
}
