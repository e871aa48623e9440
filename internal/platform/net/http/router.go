package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler is the handler type used across the modules
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the surface modules mount routes on
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}

// URLParam returns the path parameter name of r
func URLParam(r *http.Request, name string) string { return chi.URLParam(r, name) }
