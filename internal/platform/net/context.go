// Package net carries request scoped values and the transport neutral reply
// envelope shared by the HTTP layer and its middlewares
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey struct{ name string }

var keyClerk = ctxKey{"matricula"}

// WithRequest stores reqID where chi's RequestID middleware would
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on ctx, if any
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// WithClerk stores the registration number (matrícula) of the authenticated clerk
func WithClerk(ctx context.Context, clerk string) context.Context {
	if clerk == "" {
		return ctx
	}
	return context.WithValue(ctx, keyClerk, clerk)
}

// ClerkID returns the authenticated clerk on ctx, if any
func ClerkID(ctx context.Context) string {
	s, _ := ctx.Value(keyClerk).(string)
	return s
}
