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

// userRepository is the SQL implementation of [UserRepository] for both
// the postgres and sqlite dialects.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the user and returns it with the generated id.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists];
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.CreatedAt = time.Now().UTC()
	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, err
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user.ID = strconv.FormatInt(id, 10)
	return user, nil
}

// FindUserByEmail looks the user up by exact email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(r.db.builder, email)
	if err != nil {
		return models.User{}, err
	}

	var (
		id   int64
		user models.User
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&id, &user.Name, &user.Email, &user.Phone, &user.CollegeName, &user.Course, &user.PasswordHash, &user.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	user.ID = strconv.FormatInt(id, 10)
	return user, nil
}
