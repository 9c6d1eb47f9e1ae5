// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrWrongPassword         = errors.New("wrong password")
	ErrPasswordHashingFailed = errors.New("password hashing failed")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrAssessmentCreationFailed = errors.New("assessment creation failed")
	ErrAnalysisFailed           = errors.New("analysis failed")
)
