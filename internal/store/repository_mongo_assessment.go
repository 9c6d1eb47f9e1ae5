package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/models"
)

type mongoAssessmentRepository struct {
	logger *logger.Logger
	db     *MongoDB
}

func NewMongoAssessmentRepository(db *MongoDB, logger *logger.Logger) AssessmentRepository {
	logger.Debug().Msg("creating mongo assessment repository")
	return &mongoAssessmentRepository{db: db, logger: logger}
}

func (r *mongoAssessmentRepository) CreateAssessment(ctx context.Context, assessment models.Assessment) (models.Assessment, error) {
	userID, err := bson.ObjectIDFromHex(assessment.UserID)
	if err != nil {
		return models.Assessment{}, fmt.Errorf("%w: invalid user id %q", ErrNoUserWasFound, assessment.UserID)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := assessmentDocument{
		ID:        bson.NewObjectID(),
		UserID:    userID,
		Answers:   assessment.Answers,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if doc.Answers == nil {
		doc.Answers = map[string]string{}
	}

	if _, err = r.db.assessments().InsertOne(ctx, doc); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoAssessmentRepository.CreateAssessment").Msg("error inserting assessment")
		return models.Assessment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

func (r *mongoAssessmentRepository) UpdateAnalysis(ctx context.Context, id string, analysis string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrAssessmentNotFound
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "ai_analysis", Value: analysis},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}
	result, err := r.db.assessments().UpdateOne(ctx, bson.D{{Key: "_id", Value: objectID}}, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoAssessmentRepository.UpdateAnalysis").Msg("error updating assessment")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if result.MatchedCount == 0 {
		return ErrAssessmentNotFound
	}
	return nil
}

func (r *mongoAssessmentRepository) GetAssessment(ctx context.Context, id string) (models.Assessment, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.Assessment{}, ErrAssessmentNotFound
	}

	var doc assessmentDocument
	err = r.db.assessments().FindOne(ctx, bson.D{{Key: "_id", Value: objectID}}).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.Assessment{}, ErrAssessmentNotFound
	case err != nil:
		return models.Assessment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

func (r *mongoAssessmentRepository) ListAssessmentsByUser(ctx context.Context, userID string) ([]models.Assessment, error) {
	ownerID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return []models.Assessment{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.db.assessments().Find(ctx, bson.D{{Key: "user_id", Value: ownerID}}, opts)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoAssessmentRepository.ListAssessmentsByUser").Msg("error finding assessments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var docs []assessmentDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	assessments := make([]models.Assessment, 0, len(docs))
	for _, doc := range docs {
		assessments = append(assessments, doc.toModel())
	}
	return assessments, nil
}
