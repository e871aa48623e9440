// Package http writes every response in one JSON envelope and hosts the router
// seam the modules mount against
package http

import (
	"encoding/json"
	stdhttp "net/http"

	pnet "fiscaliza/internal/platform/net"
)

// Envelope is the response body of every endpoint
type Envelope = pnet.Wire

// Page describes one page of a list
type Page struct {
	Total    int `json:"total"`
	Page     int `json:"pagina"`
	PageSize int `json:"tamanhoPagina"`
}

// ListBody is the data of a paginated response
type ListBody[T any] struct {
	Items []T `json:"itens"`
	Page  Page `json:"paginacao"`
}

// JSON writes v with status as application/json
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is what return style handlers produce. A Body that is an error is
// written as an error envelope with the status its code maps to
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// Handle adapts a Response returning function to a Handler
func Handle(h func(r *stdhttp.Request) Response) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { h(r).write(w, r) }
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	reqID := pnet.RequestID(r.Context())

	if err, ok := resp.Body.(error); ok && err != nil {
		status, body := pnet.Error(err, reqID)
		JSON(w, status, body)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	JSON(w, status, pnet.OK(status, resp.Body, reqID))
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response for err
func Error(err error) Response { return Response{Body: err} }

// List returns a 200 response with one page of items
func List[T any](items []T, total, page, size int) Response {
	if items == nil {
		items = []T{}
	}
	return OK(ListBody[T]{Items: items, Page: Page{Total: total, Page: page, PageSize: size}})
}
