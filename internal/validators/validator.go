package validators

import (
	"context"

	"github.com/kashishbhadauriya/Careersphere/models"
)

type validator struct{}

func NewValidator() Validator {
	return &validator{}
}

func (v *validator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)

	case models.Answers:
		return v.validateAnswers(ctx, value)
	case *models.Answers:
		if value == nil {
			return ErrNoAnswers
		}
		return v.validateAnswers(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}
