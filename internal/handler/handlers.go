package handler

import (
	"github.com/kashishbhadauriya/Careersphere/internal/config"
	"github.com/kashishbhadauriya/Careersphere/internal/handler/http"
	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled in cfg. health may be nil.
func NewHandlers(services *service.Services, health http.HealthChecker, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, health, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
