// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package store

import (
	"context"

	"github.com/kashishbhadauriya/Careersphere/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Records are never updated or deleted.
type UserRepository interface {
	// CreateUser stores a new account and returns it with ID and CreatedAt set.
	// A taken email yields [ErrEmailAlreadyExists] and leaves the store unchanged.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrNoUserWasFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// AssessmentRepository persists questionnaire submissions.
type AssessmentRepository interface {
	// CreateAssessment stores a submission with an empty analysis and
	// returns it with ID and timestamps set.
	CreateAssessment(ctx context.Context, assessment models.Assessment) (models.Assessment, error)
	// UpdateAnalysis attaches the analysis text to the record with the given id.
	UpdateAnalysis(ctx context.Context, id string, analysis string) error
	// GetAssessment returns [ErrAssessmentNotFound] for unknown ids.
	GetAssessment(ctx context.Context, id string) (models.Assessment, error)
	// ListAssessmentsByUser returns the user's submissions, newest first.
	ListAssessmentsByUser(ctx context.Context, userID string) ([]models.Assessment, error)
}

// ErrorClassificator recognizes driver specific errors.
type ErrorClassificator interface {
	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}
