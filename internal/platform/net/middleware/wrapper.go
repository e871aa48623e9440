// Package middleware adapts chi's middlewares and holds the in house ones
// (access log, JSON panic recovery, bearer auth)
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	pstrings "fiscaliza/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Func is the middleware shape used across the platform
type Func = func(http.Handler) http.Handler

// RequestID tags each request with an X-Request-ID
func RequestID() Func { return chimw.RequestID }

// RealIP sets RemoteAddr from X-Real-IP / X-Forwarded-For
func RealIP() Func { return chimw.RealIP }

// NoCache marks every response as not cacheable
func NoCache() Func { return chimw.NoCache }

// StripSlashes routes "/x/" as "/x"
func StripSlashes() Func { return chimw.StripSlashes }

// Heartbeat answers GET/HEAD on path with 200 "." before routing
func Heartbeat(path string) Func { return chimw.Heartbeat(path) }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Func { return chimw.Timeout(d) }

// Throttle caps in-flight requests at limit; the rest get 429
func Throttle(limit int) Func { return chimw.Throttle(limit) }

// AllowContentType rejects request bodies of any other content type with 415
func AllowContentType(ct ...string) Func { return chimw.AllowContentType(ct...) }

// Compress gzips/deflates responses at level
func Compress(level int) Func {
	c := chimw.NewCompressor(level)
	return c.Handler
}

// CORSOptions is the subset of go-chi/cors the API configures
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CORS wraps go-chi/cors. Empty lists fall back to the API defaults
func CORS(o CORSOptions) Func {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"}),
		ExposedHeaders:   pstrings.IfEmpty(o.ExposedHeaders, []string{"X-Request-ID"}),
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}

// StackOptions tunes Defaults
type StackOptions struct {
	CORS CORSOptions
	Slow time.Duration

	// Heartbeat is the ping path; empty disables it
	Heartbeat string

	// MaxInFlight caps concurrent requests; zero disables the cap
	MaxInFlight int
}

// Defaults is the stack mounted in front of every route
func Defaults(o StackOptions) []Func {
	mws := []Func{RequestID(), RealIP()}
	if o.Heartbeat != "" {
		mws = append(mws, Heartbeat(o.Heartbeat))
	}
	mws = append(mws,
		RecoverJSON,
		AccessLogZerolog(AccessLogOptions{Slow: o.Slow}),
		CORS(o.CORS),
	)
	if o.MaxInFlight > 0 {
		mws = append(mws, Throttle(o.MaxInFlight))
	}
	return append(mws,
		NoCache(),
		Compress(flate.BestSpeed),
		StripSlashes(),
		Timeout(30*time.Second),
	)
}
