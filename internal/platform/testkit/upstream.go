package testkit

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// Seen is one request received by an Upstream
type Seen struct {
	Method string
	Path   string // escaped path as sent on the wire
	Query  url.Values
	Header http.Header
}

// Upstream is a fake third party API backed by httptest
// routes are matched on the escaped request path; unmatched paths answer 404 with an empty JSON object
type Upstream struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	seen   []Seen
}

// NewUpstream starts a fake upstream that is closed with the test
func NewUpstream(t *testing.T) *Upstream {
	t.Helper()
	u := &Upstream{routes: map[string]http.HandlerFunc{}}
	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Close)
	return u
}

// Handle registers fn for the escaped path
func (u *Upstream) Handle(path string, fn http.HandlerFunc) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.routes[path] = fn
	return u
}

// Reply registers a canned status and body for the escaped path
func (u *Upstream) Reply(path string, status int, body string) *Upstream {
	return u.Handle(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// Requests returns a copy of what the upstream has received so far
func (u *Upstream) Requests() []Seen {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]Seen, len(u.seen))
	copy(out, u.seen)
	return out
}

// Last returns the latest request, failing the test when there was none
func (u *Upstream) Last(t *testing.T) Seen {
	t.Helper()
	reqs := u.Requests()
	if len(reqs) == 0 {
		t.Fatalf("upstream received no requests")
	}
	return reqs[len(reqs)-1]
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.seen = append(u.seen, Seen{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
	})
	fn, ok := u.routes[r.URL.EscapedPath()]
	u.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "{}")
		return
	}
	fn(w, r)
}
