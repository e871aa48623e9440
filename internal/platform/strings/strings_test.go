package strings

import (
	"testing"

	"fiscaliza/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	if got := IfEmpty(nil, []string{"*"}); len(got) != 1 || got[0] != "*" {
		t.Fatalf("got %v", got)
	}
	if got := IfEmpty([]int{1}, []int{2}); got[0] != 1 {
		t.Fatalf("got %v", got)
	}
}

func TestMustString(t *testing.T) {
	if MustString("x", "name") != "x" {
		t.Fatalf("value changed")
	}
	testkit.MustPanic(t, func() { MustString("  ", "name") })
}

func TestMustPrefix(t *testing.T) {
	tests := map[string]string{
		"cadastros":    "/cadastros",
		"/cadastros/":  "/cadastros",
		" //meta// ":   "/meta",
		"api/v1/estat": "/api/v1/estat",
	}
	for in, want := range tests {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	testkit.MustPanic(t, func() { MustPrefix(" / ") })
}
