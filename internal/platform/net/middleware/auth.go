package middleware

import (
	"encoding/json"
	"net/http"

	pnet "fiscaliza/internal/platform/net"
)

// AuthPort resolves the clerk behind a request
type AuthPort interface {
	// Parse returns the clerk registration number or an error
	Parse(r *http.Request) (clerk string, err error)
}

// Auth rejects requests the port cannot authenticate and stores the clerk on
// the context. A nil port lets everything through
func Auth(p AuthPort) Func {
	return func(next http.Handler) http.Handler {
		if p == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clerk, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				w.Header().Set("WWW-Authenticate", `Bearer realm="fiscaliza"`)
				writeJSON(w, status, body)
				return
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithClerk(r.Context(), clerk)))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
