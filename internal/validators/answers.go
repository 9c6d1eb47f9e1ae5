package validators

import (
	"context"
	"strings"

	"github.com/kashishbhadauriya/Careersphere/models"
)

// validateAnswers requires at least one non-blank answer and no blank keys.
func (v *validator) validateAnswers(_ context.Context, answers models.Answers) error {
	answered := false
	for key, value := range answers {
		if strings.TrimSpace(key) == "" {
			return ErrEmptyAnswerKey
		}
		if strings.TrimSpace(value) != "" {
			answered = true
		}
	}

	if !answered {
		return ErrNoAnswers
	}
	return nil
}
