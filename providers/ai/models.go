package ai

import "encoding/json"

/*
	##### REQUEST SIDE #####
*/

// Part is one unit of content within a conversation turn: either a text
// fragment or an inline binary payload, never both. A zero Part is invalid.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inline_data,omitempty"`
}

// InlineData carries base64-encoded binary content (images, audio, ...)
// together with its MIME type.
type InlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

// Content is one conversation turn: a role ("user", "model", ...) paired with
// an ordered, non-empty sequence of parts.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// GenerationConfig holds optional sampling controls. Nil pointer fields mean
// "use the provider default". Values are forwarded as-is; range validation is
// the provider's job and out-of-range values surface as invalid-request
// errors from the API.
type GenerationConfig struct {
	Temperature     *float32 `json:"temperature,omitempty"`
	TopK            *int     `json:"top_k,omitempty"`
	TopP            *float32 `json:"top_p,omitempty"`
	MaxOutputTokens *int     `json:"max_output_tokens,omitempty"`
	CandidateCount  *int     `json:"candidate_count,omitempty"`
	StopSequences   []string `json:"stop_sequences,omitempty"`
}

// SafetySetting adjusts the provider's content filtering for one harm
// category.
type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// Tool declares a set of functions the model may call.
type Tool struct {
	FunctionDeclarations []FunctionDeclaration `json:"function_declarations"`
}

// FunctionDeclaration describes one callable function. Parameters is a raw
// JSON Schema document; this package does not interpret it.
type FunctionDeclaration struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// Request is a complete generation request: the conversation turns plus
// optional configuration. Build it once per call and treat it as immutable
// after sending.
type Request struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"`
	SafetySettings   []SafetySetting   `json:"safety_settings,omitempty"`
	Tools            []Tool            `json:"tools,omitempty"`
}

/*
	##### RESPONSE SIDE #####
*/

// FinishReason values used across providers. Adapters map their native
// vocabulary onto these.
const (
	FinishReasonStop      = "stop"
	FinishReasonMaxTokens = "max_tokens"
	FinishReasonSafety    = "safety"
	FinishReasonOther     = "other"
)

// Candidate is one generated alternative: a Content value plus the reason
// generation stopped for it.
type Candidate struct {
	Content       Content        `json:"content"`
	FinishReason  string         `json:"finish_reason,omitempty"`
	Index         int            `json:"index,omitempty"`
	SafetyRatings []SafetyRating `json:"safety_ratings,omitempty"`
}

// SafetyRating reports the provider's harm assessment for one category.
type SafetyRating struct {
	Category    string `json:"category"`
	Probability string `json:"probability"`
	Blocked     bool   `json:"blocked,omitempty"`
}

// PromptFeedback reports provider feedback about the prompt itself, such as
// why it was blocked.
type PromptFeedback struct {
	BlockReason   string         `json:"block_reason,omitempty"`
	SafetyRatings []SafetyRating `json:"safety_ratings,omitempty"`
}

// UsageMetadata reports token accounting for a request.
type UsageMetadata struct {
	PromptTokenCount     int `json:"prompt_token_count,omitempty"`
	CandidatesTokenCount int `json:"candidates_token_count,omitempty"`
	TotalTokenCount      int `json:"total_token_count,omitempty"`
}

// Response is a complete generation result. The candidate sequence may be
// empty when the provider declines to answer (e.g. safety filtering); that
// is not an error.
type Response struct {
	Candidates     []Candidate     `json:"candidates"`
	PromptFeedback *PromptFeedback `json:"prompt_feedback,omitempty"`
	UsageMetadata  *UsageMetadata  `json:"usage_metadata,omitempty"`
}

// StreamChunk is one increment of a streaming response. It carries the same
// shape as [Response]; each chunk holds the partial candidates decoded from
// one wire object.
type StreamChunk struct {
	Candidates     []Candidate     `json:"candidates"`
	PromptFeedback *PromptFeedback `json:"prompt_feedback,omitempty"`
	UsageMetadata  *UsageMetadata  `json:"usage_metadata,omitempty"`
}

// FirstText returns the text of the first part of the first candidate's
// content. The second return value is false when there is no candidate, the
// candidate has no parts, or the first part carries binary data rather than
// text. Absence of text is a normal outcome, never an error.
func (r *Response) FirstText() (string, bool) {
	return firstText(r.Candidates)
}

// FirstText returns the text of the first part of the first candidate in this
// chunk, with the same semantics as [Response.FirstText].
func (c *StreamChunk) FirstText() (string, bool) {
	return firstText(c.Candidates)
}

func firstText(candidates []Candidate) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	parts := candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", false
	}
	return parts[0].Text, true
}
