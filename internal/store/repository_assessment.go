package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/models"
)

type assessmentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAssessmentRepository constructs an [AssessmentRepository] backed by db.
func NewAssessmentRepository(db *DB, logger *logger.Logger) AssessmentRepository {
	logger.Debug().Msg("creating assessment repository")
	return &assessmentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *assessmentRepository) CreateAssessment(ctx context.Context, assessment models.Assessment) (models.Assessment, error) {
	log := logger.FromContext(ctx)

	userID, err := strconv.ParseInt(assessment.UserID, 10, 64)
	if err != nil {
		return models.Assessment{}, fmt.Errorf("%w: invalid user id %q", ErrNoUserWasFound, assessment.UserID)
	}

	now := time.Now().UTC()
	query, args, err := buildInsertAssessmentQuery(r.db.builder, userID, assessment.Answers, now)
	if err != nil {
		return models.Assessment{}, err
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*assessmentRepository.CreateAssessment").Msg("error inserting assessment")
		return models.Assessment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	assessment.ID = strconv.FormatInt(id, 10)
	assessment.AIAnalysis = ""
	assessment.CreatedAt = now
	assessment.UpdatedAt = now
	return assessment, nil
}

func (r *assessmentRepository) UpdateAnalysis(ctx context.Context, id string, analysis string) error {
	log := logger.FromContext(ctx)

	assessmentID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return ErrAssessmentNotFound
	}

	query, args, err := buildUpdateAnalysisQuery(r.db.builder, assessmentID, analysis, time.Now().UTC())
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*assessmentRepository.UpdateAnalysis").Msg("error updating assessment")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAssessmentNotFound
	}
	return nil
}

func (r *assessmentRepository) GetAssessment(ctx context.Context, id string) (models.Assessment, error) {
	assessmentID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return models.Assessment{}, ErrAssessmentNotFound
	}

	query, args, err := buildGetAssessmentQuery(r.db.builder, assessmentID)
	if err != nil {
		return models.Assessment{}, err
	}

	assessment, err := scanAssessment(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Assessment{}, ErrAssessmentNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*assessmentRepository.GetAssessment").Msg("error selecting assessment")
		return models.Assessment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return assessment, nil
}

func (r *assessmentRepository) ListAssessmentsByUser(ctx context.Context, userID string) ([]models.Assessment, error) {
	log := logger.FromContext(ctx)

	ownerID, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return []models.Assessment{}, nil
	}

	query, args, err := buildListAssessmentsQuery(r.db.builder, ownerID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*assessmentRepository.ListAssessmentsByUser").Msg("error selecting assessments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	assessments := make([]models.Assessment, 0)
	for rows.Next() {
		assessment, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		assessments = append(assessments, assessment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return assessments, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (models.Assessment, error) {
	var (
		id, userID int64
		assessment models.Assessment
	)
	if err := row.Scan(&id, &userID, &assessment.Answers, &assessment.AIAnalysis, &assessment.CreatedAt, &assessment.UpdatedAt); err != nil {
		return models.Assessment{}, err
	}

	assessment.ID = strconv.FormatInt(id, 10)
	assessment.UserID = strconv.FormatInt(userID, 10)
	return assessment, nil
}
