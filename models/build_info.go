// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package models

const buildInfoUnknown = "N/A"

// BuildInfo is the build metadata injected with -ldflags.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewBuildInfo fills blank values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	orUnknown := func(s string) string {
		if s == "" {
			return buildInfoUnknown
		}
		return s
	}

	return BuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}
