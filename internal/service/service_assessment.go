package service

import (
	"context"
	"fmt"

	"github.com/kashishbhadauriya/Careersphere/internal/adapter"
	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/internal/store"
	"github.com/kashishbhadauriya/Careersphere/models"
)

type assessmentService struct {
	assessments store.AssessmentRepository
	analysis    adapter.AnalysisAdapter
	logger      *logger.Logger
}

func NewAssessmentService(assessments store.AssessmentRepository, analysis adapter.AnalysisAdapter, logger *logger.Logger) AssessmentService {
	return &assessmentService{
		assessments: assessments,
		analysis:    analysis,
		logger:      logger.Component("assessment"),
	}
}

// Submit runs the write, call, update sequence. The placeholder id is
// threaded explicitly into UpdateAnalysis.
func (s *assessmentService) Submit(ctx context.Context, userID string, answers models.Answers) (models.Assessment, error) {
	log := logger.FromContext(ctx)

	placeholder, err := s.assessments.CreateAssessment(ctx, models.Assessment{
		UserID:  userID,
		Answers: answers,
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("failed to store assessment")
		return models.Assessment{}, fmt.Errorf("%w: %w", ErrAssessmentCreationFailed, err)
	}

	analysis, err := s.analysis.Analyze(ctx, answers)
	if err != nil {
		log.Err(err).Str("assessment_id", placeholder.ID).Msg("analysis request failed")
		return placeholder, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	if err = s.assessments.UpdateAnalysis(ctx, placeholder.ID, analysis.Text); err != nil {
		log.Err(err).Str("assessment_id", placeholder.ID).Msg("failed to store analysis")
		return placeholder, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	s.logger.Info().
		Str("assessment_id", placeholder.ID).
		Str("user_id", userID).
		Bool("truncated", analysis.Truncated).
		Msg("assessment analysed")

	placeholder.AIAnalysis = analysis.Text
	return placeholder, nil
}

// Get hides assessments of other users behind store.ErrAssessmentNotFound.
func (s *assessmentService) Get(ctx context.Context, userID, assessmentID string) (models.Assessment, error) {
	assessment, err := s.assessments.GetAssessment(ctx, assessmentID)
	if err != nil {
		return models.Assessment{}, fmt.Errorf("error getting assessment: %w", err)
	}

	if assessment.UserID != userID {
		logger.FromContext(ctx).Warn().
			Str("assessment_id", assessmentID).
			Str("user_id", userID).
			Msg("assessment belongs to another user")
		return models.Assessment{}, store.ErrAssessmentNotFound
	}

	return assessment, nil
}

func (s *assessmentService) ListByUser(ctx context.Context, userID string) ([]models.Assessment, error) {
	list, err := s.assessments.ListAssessmentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing assessments: %w", err)
	}
	return list, nil
}
