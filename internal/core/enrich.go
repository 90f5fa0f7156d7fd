package core

// enrich.go derives computed fields on parsed records from sibling
// datasets that have already been fully parsed. Enrichment is pure: it
// returns a copy and never fails — a missed lookup just leaves the
// field unset.

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/JonMunkholm/hubsync/internal/hubspot"
	"github.com/JonMunkholm/hubsync/internal/schema"
)

const (
	defaultPipeline   = "default"
	stageClosedWon    = "closedwon"
	stageClosedLost   = "closedlost"
	stageContractSent = "contractsent"
)

var titleCaser = cases.Title(language.English)

// TitleCase uppercases the first letter of each word and lowercases the
// rest. Applying it twice yields the same result.
func TitleCase(s string) string {
	return titleCaser.String(s)
}

// EnrichOrder fills the deal-side fields of an order: invoice date,
// pipeline, deal stage, owner id and PO number. Owners cannot be
// searched by name in HubSpot, so the owner id is resolved locally by a
// case-insensitive exact match on "First Last". The PO number comes
// from an exact sales-order join against the PO dataset.
func EnrichOrder(order schema.Order, owners []hubspot.Owner, pos []schema.RowResult[schema.PO]) schema.Order {
	o := order

	o.InvoiceDate = o.EnteredDate
	o.Pipeline = defaultPipeline

	o.DealStage = stageClosedWon
	if o.Shorted {
		o.DealStage = stageClosedLost
	}
	if !o.Shorted && o.InvoiceDate == nil {
		o.DealStage = stageContractSent
	}

	if o.AgentName != "" {
		for _, owner := range owners {
			if strings.EqualFold(owner.FirstName+" "+owner.LastName, o.AgentName) {
				o.OwnerID = owner.ID
				break
			}
		}
	}

	o.PONumber = ""
	for _, po := range pos {
		if po.Ok() && po.Record.SalesOrderNumber == o.SalesOrderNumber {
			o.PONumber = po.Record.PONumber
			break
		}
	}

	if o.SalesOrderType != "" {
		o.SalesOrderType = TitleCase(o.SalesOrderType)
	}

	return o
}

// EnrichLineItem resolves the line item's SKU (Item# preferred over
// SKU#) and its display name via an exact SKU match against the parsed
// product dataset.
func EnrichLineItem(li schema.LineItem, products []schema.RowResult[schema.Product]) schema.LineItem {
	out := li

	out.SKU = li.ItemNumber
	if out.SKU == "" {
		out.SKU = li.SKUNumber
	}

	if out.SKU != "" {
		for _, p := range products {
			if p.Ok() && p.Record.SKU == out.SKU {
				out.Name = p.Record.Name
				break
			}
		}
	}

	return out
}
