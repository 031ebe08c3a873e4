// Package testkit provides testing helpers shared by the handler and adapter tests
package testkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustPanic fails the test unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	fn()
}

// MustContain fails unless haystack contains needle
// long log output is written to a temp file and referenced instead of dumped
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	path := filepath.Join(t.TempDir(), "output.txt")
	_ = os.WriteFile(path, []byte(haystack), 0o600)
	t.Fatalf("output does not contain %q, full output in %s", needle, path)
}

// Get serves GET path through h and returns the recorded response
func Get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

// JSON decodes a recorded body into a generic object
// numbers come back as float64; the test fails with the raw body when it is not an object
func JSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("status %d, body is not a JSON object: %v\n%s", rec.Code, err, rec.Body.String())
	}
	return out
}
