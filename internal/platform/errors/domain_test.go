package errors

import (
	stderrs "errors"
	"net/http"
	"testing"

	"fiscaliza/internal/core/daterange"
	"fiscaliza/internal/core/numbering"
)

func TestFromDomain(t *testing.T) {
	_, dateErr := daterange.ParseRange("01/05/2025", "31/02/2025")
	_, numErr := numbering.Next(2025, []string{"12x"})

	tests := []struct {
		name   string
		in     error
		status int
		field  string
	}{
		{"empty reference", numbering.ErrEmptyReference, http.StatusConflict, ""},
		{"year out of range", numbering.ErrYearOutOfRange, http.StatusUnprocessableEntity, ""},
		{"malformed number", numErr, http.StatusConflict, ""},
		{"malformed bound", dateErr, http.StatusUnprocessableEntity, daterange.FieldEnd},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := FromDomain(tc.in)
			if HTTPStatus(out) != tc.status {
				t.Fatalf("status = %d, want %d", HTTPStatus(out), tc.status)
			}
			if !stderrs.Is(out, Root(tc.in)) {
				t.Fatalf("cause not kept")
			}
			if w := WireFrom(out); w.Field != tc.field {
				t.Fatalf("field = %q, want %q", w.Field, tc.field)
			}
		})
	}

	if FromDomain(nil) != nil {
		t.Fatalf("nil")
	}
	foreign := stderrs.New("x")
	if FromDomain(foreign) != foreign {
		t.Fatalf("foreign error changed")
	}
	ours := NotFoundf("y")
	if FromDomain(ours) != ours {
		t.Fatalf("project error changed")
	}
}
