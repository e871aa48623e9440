package httpkit

import (
	"net/http"
	"time"

	"fiscaliza/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	SlowRequest time.Duration
	// Heartbeat is a full ping path such as /api/v1/ping; empty disables it
	Heartbeat   string
	MaxInFlight int
}

// CommonStack is the middleware chain mounted in front of /api/v1
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.SlowRequest <= 0 {
		o.SlowRequest = time.Second
	}
	return middleware.Defaults(middleware.StackOptions{
		CORS:        middleware.CORSOptions{AllowedOrigins: o.CORSOrigins},
		Slow:        o.SlowRequest,
		Heartbeat:   o.Heartbeat,
		MaxInFlight: o.MaxInFlight,
	})
}

// JSONOnly rejects request bodies that are not application/json with 415.
// Bodiless requests pass
func JSONOnly() func(http.Handler) http.Handler {
	return middleware.AllowContentType("application/json")
}

// Auth requires a valid bearer token. A nil port disables the check
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler { return middleware.Auth(p) }

// Protected registers fn's routes in a group behind Auth(p)
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		fn(gr)
	})
}
