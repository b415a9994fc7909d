package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client fetches the current user from the gateway's user-info endpoint.
type Client struct {
	base string
	http *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the identity once. The JSON body carries username,
// is_admin, and groups; the gap-auth response header, when set by the proxy,
// supplies the preferred human-readable identity.
func (c *Client) Fetch(ctx context.Context) (Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/user-info", nil)
	if err != nil {
		return Identity{}, fmt.Errorf("building user-info request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("fetching user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Identity{}, fmt.Errorf("user-info: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Username string   `json:"username"`
		IsAdmin  bool     `json:"is_admin"`
		Groups   []string `json:"groups"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Identity{}, fmt.Errorf("user-info: decoding response: %w", err)
	}

	id := Identity{
		Username: payload.Username,
		Email:    resp.Header.Get(HeaderGapAuth),
		IsAdmin:  payload.IsAdmin,
		Groups:   payload.Groups,
	}
	if id.Groups == nil {
		id.Groups = []string{}
	}
	// prefer the proxy-supplied email over a raw username/UUID for display
	if id.Email != "" {
		id.DisplayName = id.Email
	} else {
		id.DisplayName = id.Username
	}
	return id, nil
}
