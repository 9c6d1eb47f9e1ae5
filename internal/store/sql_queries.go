package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/kashishbhadauriya/Careersphere/models"
)

const (
	usersTable       = "users"
	assessmentsTable = "assessments"
)

var (
	userColumns       = []string{"id", "name", "email", "phone", "college_name", "course", "password_hash", "created_at"}
	assessmentColumns = []string{"id", "user_id", "answers", "ai_analysis", "created_at", "updated_at"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns("name", "email", "phone", "college_name", "course", "password_hash", "created_at").
		Values(user.Name, user.Email, user.Phone, user.CollegeName, user.Course, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertAssessmentQuery(b sq.StatementBuilderType, userID int64, answers models.Answers, createdAt time.Time) (string, []any, error) {
	query, args, err := b.Insert(assessmentsTable).
		Columns("user_id", "answers", "ai_analysis", "created_at", "updated_at").
		Values(userID, answers, "", createdAt, createdAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateAnalysisQuery(b sq.StatementBuilderType, id int64, analysis string, updatedAt time.Time) (string, []any, error) {
	query, args, err := b.Update(assessmentsTable).
		Set("ai_analysis", analysis).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetAssessmentQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select(assessmentColumns...).
		From(assessmentsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListAssessmentsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.Select(assessmentColumns...).
		From(assessmentsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
