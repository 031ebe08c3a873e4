// Package upstream provides the JSON client shared by the food data adapters
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	perr "foodproxy/internal/platform/errors"
	"foodproxy/internal/platform/logger"
	"foodproxy/internal/platform/metrics"
)

const defaultTimeout = 10 * time.Second

var (
	now = time.Now

	// maxBody caps a reply; a full 200 item FDC search page is a few MB
	maxBody int64 = 32 << 20
)

// Options configures a Client
type Options struct {
	// Source is the wire key failures are reported under, e.g. "usda"
	Source    string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Metrics   *metrics.Registry
}

// Client issues single shot GET requests and decodes JSON replies
// there are no retries; a failed call fails the inbound request
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a Client with a fixed per call timeout
func NewClient(o Options) *Client {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("upstream." + o.Source),
	}
}

// Source returns the wire key of the upstream
func (c *Client) Source() string { return c.opts.Source }

// BaseURL returns the configured base without a trailing slash
func (c *Client) BaseURL() string { return c.opts.BaseURL }

// GetJSON fetches path with query q and decodes the body into out
// non 2xx replies become upstream errors carrying the status and the raw body
func (c *Client) GetJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.opts.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "%s new request failed", c.opts.Source)
	}
	req.Header.Set("Accept", "application/json")
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	start := now()
	resp, err := c.http.Do(req)
	lat := now().Sub(start)
	if err != nil {
		c.observe(path, metrics.OutcomeNetwork, 0, lat)
		return perr.WrapUpstream(err, perr.Upstream{Source: c.opts.Source}, c.opts.Source+" request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		c.observe(path, metrics.OutcomeNetwork, resp.StatusCode, lat)
		return perr.WrapUpstream(err, perr.Upstream{Source: c.opts.Source}, c.opts.Source+" read failed")
	}
	if int64(len(body)) > maxBody {
		c.observe(path, metrics.OutcomeTooLarge, resp.StatusCode, lat)
		return perr.WrapUpstream(
			fmt.Errorf("response too large: more than %d bytes", maxBody),
			perr.Upstream{Source: c.opts.Source},
			c.opts.Source+" response too large",
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome := metrics.OutcomeHTTP
		if resp.StatusCode == http.StatusNotFound {
			outcome = metrics.OutcomeNotFound
		}
		c.observe(path, outcome, resp.StatusCode, lat)
		return perr.WrapUpstream(
			fmt.Errorf("request failed with status code %d", resp.StatusCode),
			perr.Upstream{Source: c.opts.Source, Status: resp.StatusCode, Body: body},
			c.opts.Source+" unexpected status",
		)
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.observe(path, metrics.OutcomeDecode, resp.StatusCode, lat)
		return perr.WrapUpstream(err, perr.Upstream{Source: c.opts.Source}, c.opts.Source+" decode failed")
	}
	c.observe(path, metrics.OutcomeOK, resp.StatusCode, lat)
	return nil
}

// observe logs lightweight call metadata; the query is left out so api keys stay out of logs
func (c *Client) observe(path, outcome string, status int, lat time.Duration) {
	c.opts.Metrics.ObserveUpstream(c.opts.Source, outcome, lat)
	c.log.Debug().
		Str("path", path).
		Int("status", status).
		Str("outcome", outcome).
		Dur("latency", lat).
		Msg("upstream http response")
}
