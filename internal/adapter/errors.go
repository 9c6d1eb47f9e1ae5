// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package adapter

import "errors"

var (
	// ErrRequestFailed wraps transport level failures (dns, tls, timeouts).
	ErrRequestFailed = errors.New("generative api request failed")
	// ErrUpstreamStatus wraps every non-2xx response.
	ErrUpstreamStatus = errors.New("generative api returned an error status")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("api key rejected")
	ErrNotFound            = errors.New("model not found")
	ErrRateLimited         = errors.New("rate limited")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	ErrBuildingPrompt = errors.New("error building prompt")
)
