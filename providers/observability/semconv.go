package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the library.

// --- Model Provider Attributes ---

const (
	// AttrLLMProvider is the name of the model provider (e.g., "gemini")
	AttrLLMProvider = "llm.provider"

	// AttrLLMModel is the model identifier (e.g., "gemini-1.5-pro")
	AttrLLMModel = "llm.model"

	// AttrLLMEndpoint is the API endpoint URL
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMRequestID is the client-generated request correlation id
	AttrLLMRequestID = "llm.request.id"

	// AttrLLMFinishReason is the reason the generation stopped
	AttrLLMFinishReason = "llm.finish_reason"

	// AttrLLMTokensTotal is the total number of tokens reported by the provider
	AttrLLMTokensTotal = "llm.tokens.total" // #nosec G101 -- Not a credential, token refers to LLM tokens
)

// --- Request/Response Attributes ---

const (
	// AttrRequestContentsCount is the number of conversation turns in the request
	AttrRequestContentsCount = "request.contents_count"

	// AttrRequestToolsCount is the number of tool declarations in the request
	AttrRequestToolsCount = "request.tools_count"

	// AttrResponseCandidatesCount is the number of candidates in the response
	AttrResponseCandidatesCount = "response.candidates_count"

	// AttrStreamChunksCount is the number of chunks decoded from a stream
	AttrStreamChunksCount = "stream.chunks_count"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method (GET, POST, etc.)
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Event Names ---

const (
	// EventLLMRequestStart marks the start of a provider request
	EventLLMRequestStart = "llm.request.start"

	// EventLLMRequestEnd marks the completion of a provider request
	EventLLMRequestEnd = "llm.request.end"

	// EventTokensReceived reports token usage from a completed response
	EventTokensReceived = "llm.tokens.received" // #nosec G101 -- Not a credential, token refers to LLM tokens

	// EventDecodeError marks a payload or stream-chunk decode failure
	EventDecodeError = "llm.decode.error"
)
