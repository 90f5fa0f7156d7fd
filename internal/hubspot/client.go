// Package hubspot is the CRM HTTP collaborator. It exposes the four
// wire operations the sync engine needs (create, update by id, search
// by exact property filter, list owners) plus the conflict predicates
// that decide whether a failed create means "already exists".
//
// The client carries its base URL, bearer token and http.Client
// explicitly; nothing in this package reads process environment.
package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is the production HubSpot API host.
const DefaultBaseURL = "https://api.hubapi.com"

// CRM object type slugs as they appear in API paths.
const (
	ObjectCompanies = "companies"
	ObjectContacts  = "contacts"
	ObjectDeals     = "deals"
	ObjectProducts  = "products"
	ObjectLineItems = "line_items"
)

// HubSpot-defined association type ids used when creating objects.
const (
	AssocContactToCompany = 279
	AssocDealToCompany    = 341
	AssocDealToContact    = 3
	AssocLineItemToDeal   = 20
)

// Client issues authenticated requests against the HubSpot CRM API.
type Client struct {
	BaseURL     string
	AccessToken string
	HTTPClient  *http.Client
}

// New builds a client for the given base URL and bearer token.
func New(baseURL, accessToken string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:     baseURL,
		AccessToken: accessToken,
		HTTPClient:  &http.Client{Timeout: timeout},
	}
}

// Properties is the property map sent with create and update requests.
type Properties map[string]string

// Association links a new object to an existing one at creation time.
type Association struct {
	ToID   string
	TypeID int
}

type associationTarget struct {
	ID string `json:"id"`
}

type associationType struct {
	AssociationCategory string `json:"associationCategory"`
	AssociationTypeID   int    `json:"associationTypeId"`
}

type associationPayload struct {
	To    associationTarget `json:"to"`
	Types []associationType `json:"types"`
}

type objectPayload struct {
	Properties   Properties           `json:"properties"`
	Associations []associationPayload `json:"associations,omitempty"`
}

func buildAssociations(assocs []Association) []associationPayload {
	if len(assocs) == 0 {
		return nil
	}
	out := make([]associationPayload, 0, len(assocs))
	for _, a := range assocs {
		out = append(out, associationPayload{
			To: associationTarget{ID: a.ToID},
			Types: []associationType{{
				AssociationCategory: "HUBSPOT_DEFINED",
				AssociationTypeID:   a.TypeID,
			}},
		})
	}
	return out
}

// ObjectResponse is the interpreted outcome of a create or update call.
// Non-2xx statuses are not errors at this layer; the sync engine decides
// what a given status means for a given record.
type ObjectResponse struct {
	StatusCode int
	ID         string // object id when the call succeeded
	Message    string // body "message" text when it did not
}

// OK reports whether the call returned a success status.
func (r ObjectResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type objectResult struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Create issues a create request for the given object type, optionally
// attaching associations.
func (c *Client) Create(ctx context.Context, objectType string, props Properties, assocs []Association) (ObjectResponse, error) {
	payload := objectPayload{
		Properties:   props,
		Associations: buildAssociations(assocs),
	}
	return c.objectCall(ctx, http.MethodPost, fmt.Sprintf("/crm/v3/objects/%s", objectType), payload)
}

// Update patches an existing object by id.
func (c *Client) Update(ctx context.Context, objectType, id string, props Properties) (ObjectResponse, error) {
	payload := objectPayload{Properties: props}
	return c.objectCall(ctx, http.MethodPatch, fmt.Sprintf("/crm/v3/objects/%s/%s", objectType, id), payload)
}

func (c *Client) objectCall(ctx context.Context, method, path string, payload objectPayload) (ObjectResponse, error) {
	var result objectResult
	status, err := c.do(ctx, method, path, payload, &result)
	if err != nil {
		return ObjectResponse{}, err
	}
	return ObjectResponse{StatusCode: status, ID: result.ID, Message: result.Message}, nil
}

// SearchResponse is the interpreted outcome of a search call.
type SearchResponse struct {
	StatusCode int
	Total      int
	IDs        []string
}

// OK reports whether the search returned a success status.
func (r SearchResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type searchFilter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type searchRequest struct {
	Filters []searchFilter `json:"filters"`
}

type searchResult struct {
	Total   int `json:"total"`
	Results []struct {
		ID string `json:"id"`
	} `json:"results"`
}

// Search queries the given object type for records whose property
// exactly equals value.
func (c *Client) Search(ctx context.Context, objectType, property, value string) (SearchResponse, error) {
	req := searchRequest{Filters: []searchFilter{{
		PropertyName: property,
		Operator:     "EQ",
		Value:        value,
	}}}

	var result searchResult
	status, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/crm/v3/objects/%s/search", objectType), req, &result)
	if err != nil {
		return SearchResponse{}, err
	}

	resp := SearchResponse{StatusCode: status, Total: result.Total}
	for _, r := range result.Results {
		resp.IDs = append(resp.IDs, r.ID)
	}
	return resp, nil
}

// do sends one JSON request and decodes the JSON response into out.
// Only transport-level failures return an error; HTTP statuses are
// passed through for the caller to interpret.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		// Error bodies are decoded too: conflict detection needs the
		// message text from failed creates.
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, nil
		}
	}
	return resp.StatusCode, nil
}
