// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

// Package app contains the user-facing message strings rendered by the
// HTTP handlers. Keeping them in one place keeps the wording consistent
// across pages.
package app

const (
	// Signup form.
	MsgEmailAlreadyRegistered = "Email is already registered"
	MsgPasswordTooShort       = "Password must be at least 6 characters long"
	MsgPasswordTooLong        = "Password must be at most 72 bytes long"
	MsgNameAndEmailRequired   = "Name and email are required"

	// Login form. The two failure messages stay distinguishable.
	MsgUserNotFound             = "User not found"
	MsgIncorrectPassword        = "Incorrect password"
	MsgEmailAndPasswordRequired = "Email and password are required"

	// MsgSomethingWentWrong covers unexpected failures on the auth forms.
	MsgSomethingWentWrong = "Something went wrong, please try again later"

	// Assessment.
	MsgAnswerAtLeastOneQuestion = "Please answer at least one question"
	MsgAnalysisFailed           = "Server error during analysis. Please try again later."

	MsgInternalServerError = "internal server error"
)
