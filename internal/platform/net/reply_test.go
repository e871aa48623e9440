package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "fiscaliza/internal/platform/errors"
	pnet "fiscaliza/internal/platform/net"
)

func TestError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		field  string
		msg    string
	}{
		{"nil is ok", nil, http.StatusOK, "", ""},
		{"not found", perr.NotFoundf("irregularidade não encontrada"), http.StatusNotFound, "", "irregularidade não encontrada"},
		{"field kept", perr.WithField(perr.InvalidArgf("data inválida"), "dataFim"), http.StatusUnprocessableEntity, "dataFim", "data inválida"},
		{"foreign hidden", errors.New("dial tcp: refused"), http.StatusInternalServerError, "", "erro interno"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, w := pnet.Error(tc.err, "rid")
			if status != tc.status || w.StatusCode != tc.status {
				t.Fatalf("status = %d/%d, want %d", status, w.StatusCode, tc.status)
			}
			if w.Field != tc.field || w.Error != tc.msg || w.RequestID != "rid" {
				t.Fatalf("wire = %+v", w)
			}
		})
	}
}

func TestOK(t *testing.T) {
	w := pnet.OK(http.StatusCreated, map[string]int{"n": 1}, "rid")
	if w.StatusCode != http.StatusCreated || w.Status != "Created" || w.Data == nil {
		t.Fatalf("wire = %+v", w)
	}
}
