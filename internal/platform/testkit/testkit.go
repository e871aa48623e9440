// Package testkit holds small assertions shared by the package tests
package testkit

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

// MustPanic fails unless fn panics
func MustPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustNotPanic fails if fn panics
func MustNotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain fails unless haystack contains needle
func MustContain(t testing.TB, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n--- output ---\n%s", needle, haystack)
	}
}

// Swap replaces *target for the duration of the test
func Swap[T any](t testing.TB, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// MustStatus fails unless the recorded response has status want
func MustStatus(t testing.TB, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status = %d, want %d\nbody: %s", rr.Code, want, rr.Body.String())
	}
}

// Envelope is the response shape written by the HTTP layer, with data kept raw
type Envelope struct {
	StatusCode int             `json:"status_code"`
	Code       string          `json:"code"`
	Error      string          `json:"error"`
	Field      string          `json:"field"`
	RequestID  string          `json:"request_id"`
	Data       json.RawMessage `json:"data"`
}

// DecodeData decodes the envelope in rr and its data into T
func DecodeData[T any](t testing.TB, rr *httptest.ResponseRecorder) (Envelope, T) {
	t.Helper()
	var env Envelope
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, rr.Body.String())
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			t.Fatalf("decode data: %v\ndata: %s", err, env.Data)
		}
	}
	return env, out
}
