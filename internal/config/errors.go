// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid token or hashing settings
	// (for example, a missing sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty or unsupported DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an unusable listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid generative API settings
	// (for example, a missing API key).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
