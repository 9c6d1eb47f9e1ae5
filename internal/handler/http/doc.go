// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

// Package http implements the server-rendered web interface.
//
// It exposes route wiring, page handlers, html/template rendering and the
// middleware chain. Session handling (the "token" cookie), request tracing,
// access logging and response compression live in this package; business
// rules are delegated to the service layer.
package http
