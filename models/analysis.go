package models

// FinishReasonMaxTokens is reported by the generative API when the answer
// was cut at the output token limit.
const FinishReasonMaxTokens = "MAX_TOKENS"

// Analysis is the text produced by the generative API for one assessment.
type Analysis struct {
	// Text is what gets stored and rendered. It is never empty: when the
	// upstream payload has no usable parts it holds a human readable notice.
	Text string `json:"text"`

	// FinishReason is the raw finishReason of the first candidate, if any.
	FinishReason string `json:"finish_reason,omitempty"`

	// Truncated is true when FinishReason is MAX_TOKENS.
	Truncated bool `json:"truncated"`
}
