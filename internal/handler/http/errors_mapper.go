package http

import (
	"errors"

	"github.com/kashishbhadauriya/Careersphere/internal/app"
	"github.com/kashishbhadauriya/Careersphere/internal/service"
	"github.com/kashishbhadauriya/Careersphere/internal/store"
	"github.com/kashishbhadauriya/Careersphere/internal/validators"
)

type errorMessage struct {
	target  error
	message string
}

// Order matters: specific validator errors come before the generic
// service errors that wrap them.
var signupErrorMessages = []errorMessage{
	{store.ErrEmailAlreadyExists, app.MsgEmailAlreadyRegistered},
	{validators.ErrEmptyPassword, app.MsgPasswordTooShort},
	{validators.ErrPasswordTooShort, app.MsgPasswordTooShort},
	{validators.ErrPasswordTooLong, app.MsgPasswordTooLong},
	{validators.ErrEmptyName, app.MsgNameAndEmailRequired},
	{validators.ErrEmptyEmail, app.MsgNameAndEmailRequired},
}

var loginErrorMessages = []errorMessage{
	{service.ErrInvalidDataProvided, app.MsgEmailAndPasswordRequired},
	{store.ErrNoUserWasFound, app.MsgUserNotFound},
	{service.ErrWrongPassword, app.MsgIncorrectPassword},
}

func messageFromError(err error, messages []errorMessage) string {
	for _, m := range messages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgSomethingWentWrong
}
