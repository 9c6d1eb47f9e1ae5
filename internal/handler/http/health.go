package http

import (
	"net/http"

	"github.com/kashishbhadauriya/Careersphere/internal/logger"
)

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if h.health != nil {
		if err := h.health.Ping(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Msg("store is unreachable")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("unavailable"))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
