package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// API is the upstream catalog surface the store and editor depend on. The
// persistence contract is whole-collection replace: every write ships the
// entire dataset, never a delta.
type API interface {
	Fetch(ctx context.Context) ([]Product, error)
	Replace(ctx context.Context, products []Product) error
}

// Client talks to the external catalog persistence API over HTTP/JSON.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: timeout},
		log:  log.With().Str("component", "catalog-client").Logger(),
	}
}

// Fetch retrieves the full product collection. A non-2xx status or a payload
// that is not a JSON array of records is an error; the caller decides what to
// do with the stale local state.
func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/data-products", nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching data products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog api: unexpected status %d", resp.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("catalog api: decoding products: %w", err)
	}
	// a JSON null decodes into a nil slice without an error; treat it like any
	// other non-array payload
	if products == nil {
		return nil, fmt.Errorf("catalog api: expected product array, got null")
	}
	for i := range products {
		products[i].Normalize()
	}
	c.log.Debug().Int("count", len(products)).Msg("fetched data products")
	return products, nil
}

// Replace persists the entire collection via PUT. The response body is
// acknowledged but not validated beyond its status code.
func (c *Client) Replace(ctx context.Context, products []Product) error {
	body, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encoding products: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.base+"/api/data-products", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("updating data products: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("catalog api: unexpected status %d", resp.StatusCode)
	}
	c.log.Debug().Int("count", len(products)).Msg("replaced data products")
	return nil
}
