package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/models"
)

// mongoUserRepository stores users in the "users" collection. Email
// uniqueness comes from the users_email_unique index.
type mongoUserRepository struct {
	logger *logger.Logger
	db     *MongoDB
}

func NewMongoUserRepository(db *MongoDB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{db: db, logger: logger}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	doc := newUserDocument(user)
	doc.ID = bson.NewObjectID()
	doc.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	if _, err := r.db.users().InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var doc userDocument
	err := r.db.users().FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}
