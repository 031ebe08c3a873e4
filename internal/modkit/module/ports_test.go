package module

import (
	"context"
	"testing"

	"foodproxy/internal/modkit/httpkit"
)

type checker interface {
	Ready(context.Context) (string, error)
}

type fdcCheck struct{}

func (fdcCheck) Ready(context.Context) (string, error) { return "usda", nil }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string               { return m.name }
func (m fakeModule) Ports() any                 { return m.ports }
func (m fakeModule) MountRoutes(httpkit.Router) {}

func TestHasPorts(t *testing.T) {
	if HasPorts(nil) || HasPorts(fakeModule{}) {
		t.Fatal("nil module or nil ports should report false")
	}
	if !HasPorts(fakeModule{ports: 1}) {
		t.Fatal("non nil ports should report true")
	}
}

func TestPortsOf(t *testing.T) {
	type Ports struct {
		Checker checker
		Other   int
	}
	type hidden struct {
		checker checker
	}

	cases := []struct {
		name  string
		ports any
		want  bool
	}{
		{"nil", nil, false},
		{"direct", checker(fdcCheck{}), true},
		{"exported field", Ports{Checker: fdcCheck{}}, true},
		{"pointer bundle", &Ports{Checker: fdcCheck{}}, true},
		{"nil pointer bundle", (*Ports)(nil), false},
		{"unexported field", hidden{checker: fdcCheck{}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := PortsOf[checker](fakeModule{name: "foods", ports: c.ports})
			if ok != c.want {
				t.Fatalf("ok = %v, want %v", ok, c.want)
			}
			if ok {
				if name, _ := got.Ready(context.Background()); name != "usda" {
					t.Fatalf("wrong port returned")
				}
			}
		})
	}
}

type prefixedModule struct{ fakeModule }

func (prefixedModule) Prefix() string { return "/api/barcode" }

func TestPrefixOf(t *testing.T) {
	if got := PrefixOf(fakeModule{name: "meta"}); got != "/" {
		t.Fatalf("root module prefix = %q", got)
	}
	if got := PrefixOf(prefixedModule{fakeModule{name: "barcode"}}); got != "/api/barcode" {
		t.Fatalf("prefix = %q", got)
	}
}

func TestCollect(t *testing.T) {
	got := Collect[checker](
		fakeModule{name: "meta"},
		fakeModule{name: "foods", ports: checker(fdcCheck{})},
		fakeModule{name: "barcode", ports: struct{ C checker }{fdcCheck{}}},
	)
	if len(got) != 2 {
		t.Fatalf("collected %d, want 2", len(got))
	}
}
