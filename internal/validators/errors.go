// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password is too long")

	ErrNoAnswers      = errors.New("at least one answer is required")
	ErrEmptyAnswerKey = errors.New("answer key is empty")
)
