package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kashishbhadauriya/Careersphere/models"
)

const (
	truncationNotice     = "\n\n⚠️ The response was cut off because it reached the maximum length."
	unknownFinishReason  = "unknown"
	extractionErrorLabel = "Error extracting analysis: "
)

var errNoCandidates = errors.New("no candidates in response")

type generateContentResponse struct {
	Candidates []responseCandidate `json:"candidates"`
}

type responseCandidate struct {
	// Content is either {"parts": [...]} or [{"parts": [...]}, ...].
	Content      json.RawMessage `json:"content"`
	FinishReason string          `json:"finishReason"`
}

type contentObject struct {
	Parts []json.RawMessage `json:"parts"`
}

// ExtractAnalysis is ExtractAnalysisText packed into a models.Analysis.
func ExtractAnalysis(raw []byte) models.Analysis {
	text, reason := ExtractAnalysisText(raw)
	return models.Analysis{
		Text:         text,
		FinishReason: reason,
		Truncated:    reason == models.FinishReasonMaxTokens,
	}
}

// ExtractAnalysisText turns a generateContent response body into display
// text. It never fails: decode problems are reported inside the text.
func ExtractAnalysisText(raw []byte) (text string, finishReason string) {
	defer func() {
		if r := recover(); r != nil {
			text, finishReason = extractionError(fmt.Errorf("%v", r)), ""
		}
	}()

	var resp generateContentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return extractionError(err), ""
	}
	if len(resp.Candidates) == 0 {
		return extractionError(errNoCandidates), ""
	}

	candidate := resp.Candidates[0]
	finishReason = candidate.FinishReason

	parts, err := contentParts(candidate.Content)
	if err != nil {
		return extractionError(err), finishReason
	}

	texts := make([]string, 0, len(parts))
	for _, part := range parts {
		texts = append(texts, partText(part))
	}

	text = strings.TrimSpace(strings.Join(texts, "\n\n"))
	if text == "" {
		reason := finishReason
		if reason == "" {
			reason = unknownFinishReason
		}
		text = fmt.Sprintf("No analysis text was returned (finish reason: %s).", reason)
	}

	// MAX_TOKENS gets the notice whether or not any part came back.
	if finishReason == models.FinishReasonMaxTokens {
		text += truncationNotice
	}

	return text, finishReason
}

// contentParts probes the object shape first, then the array shape.
// Any other shape yields no parts.
func contentParts(content json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, nil
	}

	switch trimmed[0] {
	case '{':
		var obj contentObject
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, err
		}
		return obj.Parts, nil
	case '[':
		var list []contentObject
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return nil, nil
		}
		return list[0].Parts, nil
	default:
		return nil, nil
	}
}

func partText(part json.RawMessage) string {
	var p struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(part, &p); err == nil && p.Text != "" {
		return p.Text
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, part); err != nil {
		return string(part)
	}
	return buf.String()
}

func extractionError(err error) string {
	return extractionErrorLabel + err.Error()
}
