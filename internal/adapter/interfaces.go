// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

// Package adapter talks to the generative-language API that turns
// questionnaire answers into a career report.
//
// The primary abstraction is [AnalysisAdapter]; [NewGeminiAdapter] ships the
// Gemini generateContent implementation. Non-2xx responses are mapped by
// mapHTTPError to the sentinel values in errors.go so callers can use
// [errors.Is].
package adapter

import (
	"context"

	"github.com/kashishbhadauriya/Careersphere/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AnalysisAdapter produces an analysis for a set of answers.
type AnalysisAdapter interface {
	// Analyze sends a single request without retries. The returned Analysis
	// always carries a non-empty Text when err is nil, even when the
	// upstream payload was unusable.
	Analyze(ctx context.Context, answers models.Answers) (models.Analysis, error)
}
