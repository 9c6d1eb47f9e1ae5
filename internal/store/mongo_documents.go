package store

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/kashishbhadauriya/Careersphere/models"
)

type userDocument struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	Phone        string        `bson:"phone"`
	CollegeName  string        `bson:"college_name"`
	Course       string        `bson:"course"`
	PasswordHash string        `bson:"password_hash"`
	CreatedAt    time.Time     `bson:"created_at"`
}

type assessmentDocument struct {
	ID         bson.ObjectID     `bson:"_id,omitempty"`
	UserID     bson.ObjectID     `bson:"user_id"`
	Answers    map[string]string `bson:"answers"`
	AIAnalysis string            `bson:"ai_analysis"`
	CreatedAt  time.Time         `bson:"created_at"`
	UpdatedAt  time.Time         `bson:"updated_at"`
}

func newUserDocument(u models.User) userDocument {
	return userDocument{
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		CollegeName:  u.CollegeName,
		Course:       u.Course,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func (d userDocument) toModel() models.User {
	return models.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		CollegeName:  d.CollegeName,
		Course:       d.Course,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

func (d assessmentDocument) toModel() models.Assessment {
	answers := models.Answers{}
	for k, v := range d.Answers {
		answers[k] = v
	}
	return models.Assessment{
		ID:         d.ID.Hex(),
		UserID:     d.UserID.Hex(),
		Answers:    answers,
		AIAnalysis: d.AIAnalysis,
		CreatedAt:  d.CreatedAt.UTC(),
		UpdatedAt:  d.UpdatedAt.UTC(),
	}
}
