package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux without Handler.Init so no
// services are needed.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/signup", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/signup", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
	})
	router.Get("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/assessment/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "GET /signup registered", method: http.MethodGet, path: "/signup", expectedStatus: http.StatusOK},
		{name: "POST /signup registered", method: http.MethodPost, path: "/signup", expectedStatus: http.StatusFound},
		{name: "GET /assessment/{id} registered", method: http.MethodGet, path: "/assessment/11", expectedStatus: http.StatusOK},
		{name: "PUT /signup not registered", method: http.MethodPut, path: "/signup", expectedStatus: http.StatusNotFound},
		{name: "POST /dashboard not registered", method: http.MethodPost, path: "/dashboard", expectedStatus: http.StatusNotFound},
		{name: "DELETE /assessment/{id} not registered", method: http.MethodDelete, path: "/assessment/11", expectedStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}
