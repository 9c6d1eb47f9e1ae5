package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kashishbhadauriya/Careersphere/internal/validators"
	"github.com/kashishbhadauriya/Careersphere/models"
)

type AssessmentValidationService struct {
	inner     AssessmentService
	validator validators.Validator
}

func NewAssessmentValidationService() AssessmentServiceWrapper {
	return &AssessmentValidationService{
		validator: validators.NewValidator(),
	}
}

// Submit normalizes the answers and requires at least one non-blank value.
func (v *AssessmentValidationService) Submit(ctx context.Context, userID string, answers models.Answers) (models.Assessment, error) {
	if strings.TrimSpace(userID) == "" {
		return models.Assessment{}, ErrInvalidDataProvided
	}

	answers = answers.Normalized()
	if err := v.validator.Validate(ctx, answers); err != nil {
		return models.Assessment{}, fmt.Errorf("error during answers validation before saving: %w", err)
	}

	return v.inner.Submit(ctx, userID, answers)
}

func (v *AssessmentValidationService) Get(ctx context.Context, userID, assessmentID string) (models.Assessment, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(assessmentID) == "" {
		return models.Assessment{}, ErrInvalidDataProvided
	}
	return v.inner.Get(ctx, userID, assessmentID)
}

func (v *AssessmentValidationService) ListByUser(ctx context.Context, userID string) ([]models.Assessment, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidDataProvided
	}
	return v.inner.ListByUser(ctx, userID)
}

func (v *AssessmentValidationService) Wrap(wrapped AssessmentService) AssessmentService {
	v.inner = wrapped
	return v
}
