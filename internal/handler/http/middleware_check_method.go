// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Instead of chi's 405 Method Not Allowed it answers 404 Not Found when the
// method is not registered for the requested path, so unsupported methods
// look exactly like unknown pages.
//
// The lookup compares route patterns with the raw request path; patterns
// with URL parameters such as /assessment/{id} never match and always get
// the 404.
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
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
