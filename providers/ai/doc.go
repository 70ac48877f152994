// Package ai defines the shared, provider-agnostic types and interfaces used
// by generative-AI provider implementations. Each provider's conversion layer
// is responsible for mapping these types to its own wire format, keeping the
// rest of the codebase decoupled from provider-specific dialects.
//
// The two central interfaces are [Provider] for synchronous content
// generation and [StreamProvider] for incremental streaming. Request data
// flows through [Request] (an ordered sequence of [Content] turns plus
// optional [GenerationConfig], safety settings and tool declarations);
// responses come back as [Response] or, when streaming, as a [Stream] of
// [StreamChunk] values.
//
// All failures are reported through the typed [Error] taxonomy; see
// [Kind] for the full set of error kinds.
package ai
