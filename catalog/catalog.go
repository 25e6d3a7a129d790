// Package catalog loads the storefront catalog, either from the hosted
// listing page or from a local products export.
package catalog

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ndhoang/shopfront/types"
)

const listingPath = "/products"

// Client implements types.CatalogSource against the hosted storefront
// using an HTTP client and an in-memory cache.
type Client struct {
	baseURL string
	client  *http.Client
	cache   map[string]cachedResult
	mu      sync.Mutex
}

type cachedResult struct {
	value     []types.Product
	timestamp time.Time
}

// Compile-time interface check
var _ types.CatalogSource = (*Client)(nil)

// New creates a catalog client for the given storefront base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: make(map[string]cachedResult),
	}
}

// Listing fetches and parses the storefront listing page.
func (c *Client) Listing() ([]types.Product, error) {
	url := c.baseURL + listingPath

	c.mu.Lock()
	if cached, ok := c.cache[url]; ok {
		c.mu.Unlock()
		return cached.value, nil
	}
	c.mu.Unlock()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	products, err := ParseListing(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}

	c.mu.Lock()
	c.cache[url] = cachedResult{value: products, timestamp: time.Now()}
	c.mu.Unlock()
	return products, nil
}

// ClearCache clears the in-memory cache.
func (c *Client) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]cachedResult)
}
