package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "foodproxy/internal/platform/net/http"
	"foodproxy/internal/platform/net/middleware"

	"github.com/go-chi/chi/v5"
)

func TestDocIsValidOpenAPI(t *testing.T) {
	var d struct {
		OpenAPI string         `json:"openapi"`
		Paths   map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(Doc(), &d); err != nil {
		t.Fatalf("embedded doc: %v", err)
	}
	for _, p := range []string{"/health", "/api/foods/search", "/api/foods/{fdcId}", "/api/barcode/{code}"} {
		if _, ok := d.Paths[p]; !ok {
			t.Fatalf("doc missing %s", p)
		}
	}
}

func TestMount(t *testing.T) {
	mux := chi.NewRouter()
	mux.Use(middleware.Secure())
	Mount(phttp.AdaptChi(mux), true)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, DocPath, nil))
	if rec.Code != http.StatusOK || rec.Body.Len() != len(Doc()) {
		t.Fatalf("doc status %d len %d", rec.Code, rec.Body.Len())
	}
	if rec.Header().Get("Content-Security-Policy") != middleware.DocsCSP {
		t.Fatalf("docs CSP = %q", rec.Header().Get("Content-Security-Policy"))
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, Prefix+"/index.html", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("ui status %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, Prefix, nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect status %d", rec.Code)
	}
}

func TestMountDisabled(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), false)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, DocPath, nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled status %d", rec.Code)
	}
}
