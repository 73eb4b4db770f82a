// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 Method Not Allowed whenever a path matches a registered
// route but the method does not. With CheckHTTPMethod installed such
// requests get the router's regular not-found response instead, so an
// unsupported method is indistinguishable from an unknown path.
//
// If the requested method IS registered for the route whose pattern equals
// the raw request path, the request is forwarded to the router again. Only
// exact pattern matches are considered; parameterised or wildcard segments
// are not expanded during this check.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			router.NotFoundHandler().ServeHTTP(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
