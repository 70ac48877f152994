// Package gemini implements the [ai.Provider] and [ai.StreamProvider]
// interfaces for Google's Gemini generative language API.
//
// It handles request conversion from the generic [ai.Request] format to
// Gemini's generateContent wire format, response mapping back to
// [ai.Response], and chunked streaming via the streamGenerateContent
// endpoint, where incoming byte frames are re-aligned to JSON object
// boundaries before decoding.
//
// The primary entry point is [New], which takes an API key and model and
// performs no network I/O; [FromEnv] reads GEMINI_API_KEY, GEMINI_MODEL and
// GEMINI_API_BASE_URL instead. A [Client] is an immutable value: the
// [Client.WithModel], [Client.WithBaseURL] and [Client.WithHTTPClient]
// builders return modified copies, so one client can be shared across
// arbitrarily many concurrent calls without locking.
package gemini
