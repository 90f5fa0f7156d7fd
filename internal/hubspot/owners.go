package hubspot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ownerPageLimit is HubSpot's hard cap on owners per request.
const ownerPageLimit = 500

// Owner is a HubSpot user that deals can be assigned to. Owner ids
// cannot be searched by name server-side, so the full list is fetched
// once and matched locally during order enrichment.
type Owner struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ownersResult struct {
	Results []Owner `json:"results"`
}

// ListOwners fetches the account's owners. A non-OK response yields an
// empty list rather than an error: orders then sync without an owner
// assignment instead of failing the run.
func (c *Client) ListOwners(ctx context.Context) ([]Owner, error) {
	url := fmt.Sprintf("%s/crm/v3/owners/?limit=%d", c.BaseURL, ownerPageLimit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build owners request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var result ownersResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode owners response: %w", err)
	}
	return result.Results, nil
}
