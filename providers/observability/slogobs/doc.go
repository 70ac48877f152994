// Package slogobs implements [observability.Provider] on top of the standard
// library's log/slog. Spans become debug-level start/end log pairs with an
// elapsed duration; log calls map directly onto slog levels, with TRACE
// rendered as slog.LevelDebug-4.
//
// Construct an Observer with [New] and attach it to a request context via
// observability.ContextWithObserver. Configuration comes from functional
// options or the AI_GO_LOG_FORMAT / AI_GO_LOG_LEVEL environment variables.
package slogobs
