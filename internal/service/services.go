package service

import (
	"github.com/kashishbhadauriya/Careersphere/internal/adapter"
	"github.com/kashishbhadauriya/Careersphere/internal/config"
	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/internal/store"
)

type Services struct {
	AuthService       AuthService
	AssessmentService AssessmentService
}

func NewServices(storages *store.Storages, analysis adapter.AnalysisAdapter, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	assessments := NewAssessmentService(storages.AssessmentRepository, analysis, logger)

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		AssessmentService: NewAssessmentValidationService().Wrap(assessments),
	}
}
