package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/kashishbhadauriya/Careersphere/models"
)

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	// MinPasswordLength is counted in characters, not bytes.
	MinPasswordLength = 6
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

// SignupFields are validated on registration, LoginFields on login.
var (
	SignupFields = []string{FieldName, FieldEmail, FieldPassword}
	LoginFields  = []string{FieldEmail, FieldPassword}
)

func (v *validator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = SignupFields
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if strings.TrimSpace(user.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
			if utf8.RuneCountInString(user.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if len(user.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
