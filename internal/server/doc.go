// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

// Package server runs the HTTP server.
//
// It owns startup, signal handling (SIGINT, SIGTERM, SIGQUIT) and graceful
// shutdown bounded by the configured shutdown timeout.
package server
