// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a signup collides with the
	// unique index on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrAssessmentNotFound is returned when the assessment id is unknown
	// or malformed.
	ErrAssessmentNotFound = errors.New("assessment was not found")

	// ErrUnsupportedDSN is returned by [NewStorages] for DSN schemes no
	// backend handles.
	ErrUnsupportedDSN = errors.New("unsupported database uri")
)

// Low-level database operation errors. These are wrapped by repository
// methods when an operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query or statement fails
	// in the driver.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
