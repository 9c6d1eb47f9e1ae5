package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthz(t *testing.T) {
	tests := []struct {
		name       string
		health     HealthChecker
		wantStatus int
		wantBody   string
	}{
		{name: "no checker", wantStatus: http.StatusOK, wantBody: "ok"},
		{
			name:       "store reachable",
			health:     pingFunc(func(context.Context) error { return nil }),
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:       "store down",
			health:     pingFunc(func(context.Context) error { return errors.New("connection refused") }),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlerWithHealth(tt.health)

			rr := httptest.NewRecorder()
			h.healthz(rr, injectNopLogger(httptest.NewRequest(http.MethodGet, "/healthz", nil)))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func newTestHandlerWithHealth(health HealthChecker) *Handler {
	h := newBareHandler()
	h.health = health
	return h
}
