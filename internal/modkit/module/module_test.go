package module

import (
	"strings"
	"testing"

	phttp "fiscaliza/internal/platform/net/http"
	"fiscaliza/internal/platform/testkit"
)

type fooPort interface{ Foo() int }

type fooImpl struct{ v int }

func (f fooImpl) Foo() int { return f.v }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string             { return m.name }
func (m fakeModule) Ports() any               { return m.ports }
func (m fakeModule) MountRoutes(phttp.Router) {}

func TestPortsOf(t *testing.T) {
	type bundle struct {
		Other int
		Foo   fooPort
	}
	type hidden struct{ foo fooPort }

	tests := []struct {
		name   string
		ports  any
		want   int
		wantOK bool
	}{
		{name: "nil ports", ports: nil},
		{name: "direct value", ports: fooImpl{v: 1}, want: 1, wantOK: true},
		{name: "exported field", ports: bundle{Foo: fooImpl{v: 2}}, want: 2, wantOK: true},
		{name: "pointer to bundle", ports: &bundle{Foo: fooImpl{v: 3}}, want: 3, wantOK: true},
		{name: "unexported field ignored", ports: hidden{foo: fooImpl{v: 4}}},
		{name: "unrelated type", ports: "nope"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[fooPort](fakeModule{name: "m", ports: tc.ports})
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && got.Foo() != tc.want {
				t.Fatalf("Foo = %d, want %d", got.Foo(), tc.want)
			}
		})
	}
}

func TestMustPortsOf_PanicNamesModule(t *testing.T) {
	defer func() {
		r := recover()
		msg, _ := r.(string)
		if !strings.Contains(msg, "cadastros") {
			t.Fatalf("panic = %v", r)
		}
	}()
	MustPortsOf[fooPort](fakeModule{name: "cadastros"})
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Add(fakeModule{name: "b", ports: fooImpl{v: 9}})
	reg.Add(fakeModule{name: "a"})

	if got := reg.Names(); len(got) != 2 || got[0] != "a" {
		t.Fatalf("names = %v", got)
	}
	if p, ok := Lookup[fooPort](reg, "b"); !ok || p.Foo() != 9 {
		t.Fatalf("lookup b = %v, %v", p, ok)
	}
	if _, ok := Lookup[fooPort](reg, "missing"); ok {
		t.Fatalf("lookup of missing module succeeded")
	}
	testkit.MustPanic(t, func() { reg.Add(fakeModule{name: "a"}) })
}
