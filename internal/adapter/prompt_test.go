package adapter

import (
	"testing"

	"github.com/kashishbhadauriya/Careersphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenAnswers(t *testing.T) {
	assert.Equal(t, "", FlattenAnswers(nil))
	assert.Equal(t, "a: 1\nb: two\nc: 3", FlattenAnswers(models.Answers{"c": "3", "a": "1", "b": "two"}))
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt(models.Answers{"goal": "data scientist", "hobbies": "<chess>"})
	require.NoError(t, err)

	assert.Contains(t, prompt, "goal: data scientist\nhobbies: <chess>")
	for _, section := range []string{
		"Personality Type",
		"Strengths and Weaknesses",
		"Top 3 Career Matches",
		"3-month plan and a 6-month plan",
		"Recommended Tools and Resources",
	} {
		assert.Contains(t, prompt, section)
	}
}
