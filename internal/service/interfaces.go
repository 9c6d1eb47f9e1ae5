// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package service

import (
	"context"

	"github.com/kashishbhadauriya/Careersphere/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AssessmentService interface {
	// Submit stores the answers, asks for an analysis and attaches it to the
	// stored record. On analysis failure the returned assessment is the
	// placeholder (empty analysis) and err wraps ErrAnalysisFailed.
	Submit(ctx context.Context, userID string, answers models.Answers) (models.Assessment, error)
	// Get returns an assessment owned by userID.
	Get(ctx context.Context, userID, assessmentID string) (models.Assessment, error)
	ListByUser(ctx context.Context, userID string) ([]models.Assessment, error)
}

// AssessmentServiceWrapper defines middleware composition for AssessmentService.
// Implementations wrap an existing AssessmentService to add behavior such as
// validation.
type AssessmentServiceWrapper interface {
	Wrap(AssessmentService) AssessmentService
}
