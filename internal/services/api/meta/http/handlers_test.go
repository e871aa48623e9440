package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "fiscaliza/internal/platform/net/http"
	"fiscaliza/internal/platform/testkit"
	ptime "fiscaliza/internal/platform/time"
)

type ping struct{ err error }

func (p ping) Ping(context.Context) error { return p.err }

func get(t *testing.T, d Deps, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := phttp.NewRouter()
	Register(r, d)
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	testkit.MustStatus(t, rr, stdhttp.StatusOK)
	return rr
}

func TestReady(t *testing.T) {
	tests := []struct {
		name   string
		pg, ch Pinger
		want   string
	}{
		{"all up", ping{}, ping{}, StatusOK},
		{"clickhouse disabled", ping{}, nil, StatusOK},
		{"clickhouse down", ping{}, ping{errors.New("refused")}, StatusDegraded},
		{"postgres down", ping{errors.New("refused")}, ping{}, StatusFail},
		{"no postgres", nil, nil, StatusDegraded},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := get(t, Deps{ServiceName: "fiscaliza-api", PG: tc.pg, CH: tc.ch}, "/ready")
			_, got := testkit.DecodeData[ReadyResponse](t, rr)
			if got.Status != tc.want || len(got.Checks) != 2 {
				t.Fatalf("ready = %+v, want %s", got, tc.want)
			}
		})
	}
}

func TestServiceUptime(t *testing.T) {
	start := time.Date(2024, 3, 20, 13, 0, 0, 0, time.UTC)
	d := Deps{ServiceName: "fiscaliza-api", StartedAt: start, Clock: ptime.Fixed(start.Add(5 * time.Minute))}
	_, got := testkit.DecodeData[ServiceResponse](t, get(t, d, "/service"))
	if got.Uptime != 300 || got.Name != "fiscaliza-api" {
		t.Fatalf("service = %+v", got)
	}

	type build struct {
		Service string `json:"servico"`
	}
	if _, v := testkit.DecodeData[build](t, get(t, d, "/version")); v.Service != "fiscaliza-api" {
		t.Fatalf("version = %+v", v)
	}
}
