// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

// Package validators provides input validation used by the service layer.
//
// A single [Validator] dispatches on the value type: [models.User] for
// signup and login forms, [models.Answers] for questionnaire submissions.
// The optional field names restrict user validation to a subset, see
// [SignupFields] and [LoginFields].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
