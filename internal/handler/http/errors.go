// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package http

import "errors"

var (
	// ErrNoTokenCookie is logged by the auth middleware when the request
	// carries no session cookie.
	ErrNoTokenCookie = errors.New("no `token` cookie")

	// ErrEmptyToken is logged when the cookie is present but empty.
	ErrEmptyToken = errors.New("empty `token` cookie")

	// ErrNoClaimsInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoClaimsInContext = errors.New("no claims in request context")

	// ErrInvalidRequestBody is returned when an assessment body cannot be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")
)
