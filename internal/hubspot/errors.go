package hubspot

// errors.go isolates the fragile parts of conflict detection. HubSpot
// rejects a create against an existing unique property value with a
// plain 400 whose body text is the only signal, so "already exists" has
// to be inferred from the message wording. Each resource type gets one
// named predicate; if HubSpot rewords the message, this file is the
// only place to fix.

import (
	"net/http"
	"strings"
)

// Unique-key property names per object type.
const (
	PropertyCustomerNumber = "customer_number"
	PropertyEmail          = "email"
	PropertyDealName       = "dealname"
	PropertySKU            = "hs_sku"
)

// isDuplicateValueMessage matches HubSpot's duplicate-unique-property
// rejection text for the given property.
func isDuplicateValueMessage(message, property string) bool {
	return strings.Contains(message, "propertyName="+property) &&
		strings.Contains(message, "already has that value")
}

// IsDuplicateCustomerNumber reports whether a failed company create was
// rejected because the customer number is already taken.
func IsDuplicateCustomerNumber(resp ObjectResponse) bool {
	return isDuplicateValueMessage(resp.Message, PropertyCustomerNumber)
}

// IsDuplicateSKU reports whether a failed product create was rejected
// because the SKU is already taken.
func IsDuplicateSKU(resp ObjectResponse) bool {
	return isDuplicateValueMessage(resp.Message, PropertySKU)
}

// IsContactConflict reports whether a failed contact create means the
// contact already exists. Unlike companies and products, the contacts
// endpoint signals this structurally with a 409.
func IsContactConflict(resp ObjectResponse) bool {
	return resp.StatusCode == http.StatusConflict
}
