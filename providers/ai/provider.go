package ai

import "context"

// Provider is the core interface that every generative-AI provider
// implementation must satisfy. It covers one full request lifecycle:
// request conversion, dispatch and response interpretation. Use
// [StreamProvider] in addition when the provider supports streaming.
type Provider interface {
	// Generate sends a request to the provider and returns the completed
	// response. The candidate sequence may legitimately be empty (safety
	// filtering); errors are always typed [*Error] values.
	Generate(ctx context.Context, request Request) (*Response, error)
}

// StreamProvider is an optional interface for providers that support
// incremental (chunked) content generation. Callers detect streaming support
// via type assertion: provider.(StreamProvider).
type StreamProvider interface {
	Provider
	// Stream sends a request and returns a Stream that yields decoded
	// chunks as frames arrive from the API. Pre-stream errors (auth, bad
	// request, network) are returned as a normal error; mid-stream errors
	// are yielded through the iterator.
	Stream(ctx context.Context, request Request) (*Stream, error)
}
