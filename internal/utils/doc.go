// Package utils provides shared low-level helpers used throughout the ai-go
// internals. It covers HTTP request helpers for both synchronous and
// streaming communication with generative-AI provider APIs, the JSON object
// frame decoder used by streaming responses, and generic parse and string
// utilities.
//
// Key entry points: [DoPostSync] for synchronous JSON round-trips,
// [DoPostStream] together with [JSONObjectScanner] for chunked streaming
// responses, and [ParseStringAs] for decoding model output into typed values.
package utils
