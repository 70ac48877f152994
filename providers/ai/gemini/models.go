package gemini

import "encoding/json"

/*
	GEMINI API - REQUEST TYPES
*/

// generateContentRequest is the request body for Gemini's generateContent and
// streamGenerateContent endpoints.
type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generation_config,omitempty"`
	SafetySettings   []safetySetting   `json:"safety_settings,omitempty"`
	Tools            []tool            `json:"tools,omitempty"`
}

// content is a role-tagged block of parts.
type content struct {
	Role  string `json:"role,omitempty"` // "user" or "model"
	Parts []part `json:"parts"`
}

// part is one content unit: a text fragment or inline binary data.
type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

// inlineData carries base64-encoded binary content with its MIME type.
type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// generationConfig holds Gemini's sampling parameters. Pointer fields are
// omitted when nil so the provider applies its defaults.
type generationConfig struct {
	Temperature     *float32 `json:"temperature,omitempty"`
	TopK            *int     `json:"top_k,omitempty"`
	TopP            *float32 `json:"top_p,omitempty"`
	MaxOutputTokens *int     `json:"max_output_tokens,omitempty"`
	CandidateCount  *int     `json:"candidate_count,omitempty"`
	StopSequences   []string `json:"stop_sequences,omitempty"`
}

// safetySetting adjusts content filtering for one harm category.
type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// tool declares functions the model may call.
type tool struct {
	FunctionDeclarations []functionDeclaration `json:"function_declarations"`
}

// functionDeclaration describes one user-defined function.
type functionDeclaration struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

/*
	GEMINI API - RESPONSE TYPES
*/

// generateContentResponse is the response body of generateContent; in
// streaming mode each decoded object carries the same shape. A 2xx body may
// still embed a top-level error object.
type generateContentResponse struct {
	Candidates     []candidate     `json:"candidates"`
	PromptFeedback *promptFeedback `json:"prompt_feedback,omitempty"`
	UsageMetadata  *usageMetadata  `json:"usage_metadata,omitempty"`
	Error          *apiError       `json:"error,omitempty"`
}

// candidate is one generated alternative.
type candidate struct {
	Content       *content       `json:"content,omitempty"`
	FinishReason  string         `json:"finish_reason,omitempty"`
	Index         int            `json:"index,omitempty"`
	SafetyRatings []safetyRating `json:"safety_ratings,omitempty"`
}

// safetyRating is the harm assessment for one category.
type safetyRating struct {
	Category    string `json:"category"`
	Probability string `json:"probability"`
	Blocked     bool   `json:"blocked,omitempty"`
}

// promptFeedback reports why a prompt was blocked.
type promptFeedback struct {
	BlockReason   string         `json:"block_reason,omitempty"`
	SafetyRatings []safetyRating `json:"safety_ratings,omitempty"`
}

// usageMetadata reports token accounting.
type usageMetadata struct {
	PromptTokenCount     int `json:"prompt_token_count,omitempty"`
	CandidatesTokenCount int `json:"candidates_token_count,omitempty"`
	TotalTokenCount      int `json:"total_token_count,omitempty"`
}

// apiError is Gemini's embedded error object.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
