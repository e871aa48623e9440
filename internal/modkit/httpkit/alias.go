// Package httpkit is the HTTP surface modules are written against, so they
// do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "fiscaliza/internal/platform/net/http"
)

type (
	// Envelope is the wire envelope
	Envelope = phttp.Envelope
	// Page is the pagination block of a list
	Page = phttp.Page
	// Response is a status plus body
	Response = phttp.Response
	// Handler is the platform handler type
	Handler = phttp.Handler
	// Router is the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error maps err to its status and envelope
func Error(err error) Response { return phttp.Error(err) }

// List returns a page of items with the pagination block
func List[T any](items []T, total, page, size int) Response {
	return phttp.List(items, total, page, size)
}

// Param returns a path parameter
func Param(r *http.Request, name string) string { return phttp.URLParam(r, name) }

// JSON decodes and validates a T body before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler { return phttp.JSONHandler(fn) }

// Call adapts a handler that takes no body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.CallHandler(fn) }
