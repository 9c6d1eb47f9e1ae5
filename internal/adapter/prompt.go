package adapter

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/kashishbhadauriya/Careersphere/models"
)

//go:embed prompts/career_analysis.tmpl
var careerAnalysisPromptRaw string

// careerAnalysisTemplate is parsed once and reused on every Analyze call.
var careerAnalysisTemplate = template.Must(template.New("career_analysis").Parse(careerAnalysisPromptRaw))

// FlattenAnswers renders answers as "key: value" lines joined by newlines,
// keys in ascending order.
func FlattenAnswers(answers models.Answers) string {
	lines := make([]string, 0, len(answers))
	for _, key := range answers.Keys() {
		lines = append(lines, key+": "+answers[key])
	}
	return strings.Join(lines, "\n")
}

// BuildPrompt embeds the flattened answers into the career analysis template.
func BuildPrompt(answers models.Answers) (string, error) {
	var sb strings.Builder
	err := careerAnalysisTemplate.Execute(&sb, struct{ Answers string }{Answers: FlattenAnswers(answers)})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingPrompt, err)
	}
	return sb.String(), nil
}
