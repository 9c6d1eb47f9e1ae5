// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Legacy variables (MONGO_URI, JWT_SECRET, GEMINI_API_KEY, PORT)
//  2. Environment variables, including the ones loaded from a .env file
//  3. Command-line flags
//  4. JSON config file
//
// Zero fields left after merging are filled from built-in defaults.
// The main entry point is [GetStructuredConfig].
package config
