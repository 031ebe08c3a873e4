package modkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodproxy/internal/adapters/upstream/off"
	"foodproxy/internal/modkit/httpkit"
	"foodproxy/internal/platform/config"
	phttp "foodproxy/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type stub struct {
	name    string
	mounted bool
	ports   any
}

func (s *stub) MountRoutes(_ phttp.Router) { s.mounted = true }
func (s *stub) Ports() any                 { return s.ports }
func (s *stub) Name() string               { return s.name }

type prefixedStub struct{ stub }

func (*prefixedStub) Prefix() string { return "/api/foods" }

var _ Module = (*stub)(nil)

func TestBuildAllAndMountAll(t *testing.T) {
	var seen []string
	builders := []Builder{
		func(d Deps, _ ...Option) Module { return &stub{name: "meta"} },
		func(d Deps, _ ...Option) Module {
			seen = append(seen, d.Cfg.MayString("MODKIT_TEST_UNSET", "default"))
			return &prefixedStub{stub{name: "foods", ports: "ok"}}
		},
	}

	mods := BuildAll(Deps{Cfg: config.New()}, builders...)
	if len(mods) != 2 || mods[1].Ports() != "ok" || len(seen) != 1 {
		t.Fatalf("built = %+v seen=%v", mods, seen)
	}

	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	MountAll(phttp.AdaptChi(chi.NewRouter()), &log, mods...)

	if !mods[0].(*stub).mounted || !mods[1].(*prefixedStub).mounted {
		t.Fatal("every module should be mounted")
	}
	out := buf.String()
	if !strings.Contains(out, `"module":"foods","prefix":"/api/foods","ports":true`) ||
		!strings.Contains(out, `"module":"meta","prefix":"/","ports":false`) {
		t.Fatalf("mount log = %s", out)
	}
}

func TestBuildDefaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("defaults = %+v", b)
	}
	var r httpkit.Router
	if b.Subrouter(r) != r {
		t.Fatal("default subrouter should be identity")
	}
	b.Register(r)
}

func TestBuildOptionsCopyMiddleware(t *testing.T) {
	mw := []func(http.Handler) http.Handler{func(h http.Handler) http.Handler { return h }}
	b := Build(
		WithName("foods"),
		WithPrefix("/api/foods"),
		WithMiddlewares(mw...),
		WithPorts(struct{ N int }{7}),
	)
	mw[0] = nil
	if b.Name != "foods" || b.Prefix != "/api/foods" || b.Ports.(struct{ N int }).N != 7 {
		t.Fatalf("built = %+v", b)
	}
	if len(b.Mw) != 1 || b.Mw[0] == nil {
		t.Fatal("Build should copy the middleware slice")
	}
}

func TestBuiltMountOrder(t *testing.T) {
	var trail []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trail = append(trail, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	b := Build(
		WithPrefix("/api/barcode"),
		WithMiddlewares(tag("a"), tag("b")),
		WithSubrouter(func(r phttp.Router) phttp.Router { return r.With(tag("sub")) }),
		WithRegister(func(r phttp.Router) {
			r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "extra") })
		}),
	)

	mux := chi.NewRouter()
	b.Mount(phttp.AdaptChi(mux), func(r httpkit.Router) {
		r.Get("/{code}", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, phttp.URLParam(r, "code"))
		})
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/barcode/123", nil))
	if rec.Body.String() != "123" {
		t.Fatalf("body = %q", rec.Body.String())
	}
	if len(trail) != 3 || trail[0] != "a" || trail[1] != "b" || trail[2] != "sub" {
		t.Fatalf("middleware order = %v", trail)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/barcode/extra", nil))
	if rec.Body.String() != "extra" {
		t.Fatalf("extra route body = %q", rec.Body.String())
	}
}

func TestBuiltMountAtRoot(t *testing.T) {
	mux := chi.NewRouter()
	Build().Mount(phttp.AdaptChi(mux), func(r httpkit.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDepsFromConfig(t *testing.T) {
	t.Setenv("PROXY_FDC_BASE_URL", "http://fdc.test/v1/")
	t.Setenv("PROXY_OFF_BASE_URL", "")
	t.Setenv("USDA_FDC_API_KEY", "abc")
	t.Setenv("PROXY_UPSTREAM_TIMEOUT", "3s")

	d := DepsFromConfig(config.New(), nil)
	if d.FDC.BaseURL() != "http://fdc.test/v1" || !d.FDC.HasKey() {
		t.Fatalf("fdc = %s key=%v", d.FDC.BaseURL(), d.FDC.HasKey())
	}
	if d.OFF.BaseURL() != off.DefaultBaseURL {
		t.Fatalf("off base = %s", d.OFF.BaseURL())
	}
}
