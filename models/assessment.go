// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// Answers maps a question key to the free-text response of the user.
//
// SQL stores keep it in a single JSON text column, hence the
// [driver.Valuer] and [sql.Scanner] implementations.
type Answers map[string]string

// Keys returns the question keys in ascending order.
func (a Answers) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// Normalized returns a copy with keys and values trimmed and blank keys dropped.
func (a Answers) Normalized() Answers {
	out := make(Answers, len(a))
	for key, value := range a {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(value)
	}
	return out
}

// Value implements [driver.Valuer].
func (a Answers) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]string(a))
	if err != nil {
		return nil, fmt.Errorf("marshal answers: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner]. Drivers hand JSON columns back either
// as []byte or as string, both are accepted.
func (a *Answers) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*a = Answers{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported answers column type %T", src)
	}

	out := Answers{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("unmarshal answers: %w", err)
	}
	*a = out
	return nil
}

// Assessment is one questionnaire submission.
//
// It is created with an empty AIAnalysis before the generative API is
// called and updated once the call resolves.
type Assessment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Answers    Answers   `json:"answers"`
	AIAnalysis string    `json:"ai_analysis"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Assessment model.
func (a Assessment) TableName() string {
	return "assessments"
}

// Pending reports whether the analysis has not been attached yet.
func (a Assessment) Pending() bool {
	return a.AIAnalysis == ""
}

// Question is a single questionnaire prompt rendered on the assessment page.
type Question struct {
	Key   string
	Label string
	Hint  string
}

// Questionnaire is the fixed set of questions offered to the user.
// Submissions are not restricted to these keys.
var Questionnaire = []Question{
	{Key: "favorite_subject", Label: "Which subject do you enjoy the most?", Hint: "e.g. math, biology, literature"},
	{Key: "hobbies", Label: "What do you like to do in your free time?"},
	{Key: "work_style", Label: "Do you prefer working alone or in a team?"},
	{Key: "strengths", Label: "What are you good at?"},
	{Key: "weaknesses", Label: "What do you find difficult?"},
	{Key: "problem_solving", Label: "How do you usually approach a hard problem?"},
	{Key: "work_environment", Label: "Describe your ideal work environment."},
	{Key: "values", Label: "What matters most to you in a career?", Hint: "e.g. salary, impact, stability, creativity"},
	{Key: "goal", Label: "Where do you see yourself in five years?"},
	{Key: "skills_to_learn", Label: "Which skills would you like to learn next?"},
}
