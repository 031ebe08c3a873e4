// Package off is the Open Food Facts product client
package off

import (
	"context"
	"net/url"
	"time"

	"foodproxy/internal/adapters/upstream"
	"foodproxy/internal/core/nutrition"
	perr "foodproxy/internal/platform/errors"
	"foodproxy/internal/platform/metrics"
	str "foodproxy/internal/platform/strings"
)

const (
	// DefaultBaseURL is the public Open Food Facts host
	DefaultBaseURL = "https://world.openfoodfacts.org"

	// DefaultUserAgent identifies the app as Open Food Facts asks clients to
	DefaultUserAgent = "FoodieMacroTracker/1.0 (+https://example.com)"

	// Source is the wire key failures are reported under
	Source = "off"

	// statusFound is the envelope status for a known product
	statusFound = 1
)

// ErrNotFound is returned when the product lookup succeeds but has no product
var ErrNotFound = perr.NotFoundf("Product not found")

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Metrics   *metrics.Registry
}

// Envelope is the v2 product reply
type Envelope struct {
	Code          string             `json:"code,omitempty"`
	Status        int                `json:"status"`
	StatusVerbose string             `json:"status_verbose,omitempty"`
	Product       *nutrition.Product `json:"product,omitempty"`
}

// Client talks to Open Food Facts
type Client struct {
	up *upstream.Client
}

// NewClient creates a Client with defaults for the base and user agent
func NewClient(o Options) *Client {
	if str.Blank(o.BaseURL) {
		o.BaseURL = DefaultBaseURL
	}
	if str.Blank(o.UserAgent) {
		o.UserAgent = DefaultUserAgent
	}
	return &Client{up: upstream.NewClient(upstream.Options{
		Source:    Source,
		BaseURL:   o.BaseURL,
		UserAgent: o.UserAgent,
		Timeout:   o.Timeout,
		Metrics:   o.Metrics,
	})}
}

// BaseURL returns the configured base
func (c *Client) BaseURL() string { return c.up.BaseURL() }

// Product looks a barcode up
// a reply without a product yields ErrNotFound
func (c *Client) Product(ctx context.Context, code string) (nutrition.Product, error) {
	var env Envelope
	if err := c.up.GetJSON(ctx, "/api/v2/product/"+url.PathEscape(code), nil, &env); err != nil {
		return nutrition.Product{}, err
	}
	if env.Status != statusFound || env.Product == nil {
		return nutrition.Product{}, ErrNotFound
	}
	return *env.Product, nil
}
