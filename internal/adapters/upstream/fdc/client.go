// Package fdc is the USDA FoodData Central client
package fdc

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"foodproxy/internal/adapters/upstream"
	"foodproxy/internal/core/nutrition"
	"foodproxy/internal/platform/metrics"
	str "foodproxy/internal/platform/strings"
)

const (
	// DefaultBaseURL is the public FoodData Central v1 API
	DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1"

	// Source is the wire key failures are reported under
	Source = "usda"
)

// SearchDataTypes are the data sets a search spans, in request order
var SearchDataTypes = []string{"Branded", "Survey (FNDDS)", "SR Legacy", "Foundation"}

// Options configures the Client
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Metrics *metrics.Registry
}

// SearchResult is the subset of /foods/search the proxy reads
type SearchResult struct {
	TotalHits   int              `json:"totalHits"`
	CurrentPage int              `json:"currentPage"`
	Foods       []nutrition.Food `json:"foods"`
}

// Client talks to FoodData Central
type Client struct {
	up     *upstream.Client
	apiKey string
}

// NewClient creates a Client; an empty BaseURL means DefaultBaseURL
func NewClient(o Options) *Client {
	if str.Blank(o.BaseURL) {
		o.BaseURL = DefaultBaseURL
	}
	return &Client{
		up: upstream.NewClient(upstream.Options{
			Source:  Source,
			BaseURL: o.BaseURL,
			Timeout: o.Timeout,
			Metrics: o.Metrics,
		}),
		apiKey: o.APIKey,
	}
}

// HasKey reports whether an api key is configured
func (c *Client) HasKey() bool { return !str.Blank(c.apiKey) }

// BaseURL returns the configured base
func (c *Client) BaseURL() string { return c.up.BaseURL() }

// Search runs a keyword search across SearchDataTypes
func (c *Client) Search(ctx context.Context, query string, pageSize, pageNumber int) (SearchResult, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("query", query)
	q.Set("pageSize", strconv.Itoa(pageSize))
	q.Set("pageNumber", strconv.Itoa(pageNumber))
	for _, dt := range SearchDataTypes {
		q.Add("dataType", dt)
	}
	q.Set("requireAllWords", "false")

	var out SearchResult
	if err := c.up.GetJSON(ctx, "/foods/search", q, &out); err != nil {
		return SearchResult{}, err
	}
	return out, nil
}

// Food fetches one record by id
func (c *Client) Food(ctx context.Context, id string) (nutrition.Food, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)

	var out nutrition.Food
	if err := c.up.GetJSON(ctx, "/food/"+url.PathEscape(id), q, &out); err != nil {
		return nutrition.Food{}, err
	}
	return out, nil
}
