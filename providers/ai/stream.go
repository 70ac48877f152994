package ai

import (
	"iter"
	"strings"
)

// Stream wraps a lazy, single-pass sequence of decoded response chunks. It
// supports range-based iteration for real-time consumption and a convenience
// [Stream.Collect] method for callers who want the accumulated response.
//
// Important: callers must consume the stream, either by iterating with Iter()
// (breaking out of the loop early is fine) or by calling Collect(). The
// underlying provider holds open resources (an HTTP response body) that are
// released when the iterator completes or is abandoned via a loop break.
// Constructing a Stream and never iterating it will leak those resources.
//
// A Stream is not restartable: once consumed, a new provider call must be
// issued to stream again.
type Stream struct {
	iterator iter.Seq2[*StreamChunk, error]
}

// NewStream creates a Stream from a raw chunk iterator. The iterator yields
// (*StreamChunk, nil) for decoded chunks and (nil, err) for mid-stream
// failures. Providers construct this; callers only consume it.
func NewStream(iterator iter.Seq2[*StreamChunk, error]) *Stream {
	return &Stream{iterator: iterator}
}

// Iter returns the underlying iterator for use with range-over-func loops.
// Chunks arrive in the exact order their source objects appeared on the wire.
//
// Example:
//
//	for chunk, err := range stream.Iter() {
//	    if err != nil { // handle and decide whether to keep reading
//	    }
//	    if text, ok := chunk.FirstText(); ok {
//	        fmt.Print(text)
//	    }
//	}
func (s *Stream) Iter() iter.Seq2[*StreamChunk, error] {
	return s.iterator
}

// Collect consumes the entire stream and returns the accumulated Response:
// the first-candidate text of every chunk concatenated into a single
// model-role candidate, the last seen finish reason, prompt feedback and
// usage metadata. Any mid-stream error terminates collection and is returned
// together with the partial response accumulated so far.
func (s *Stream) Collect() (*Response, error) {
	var textBuilder strings.Builder
	accumulated := &Response{}
	finishReason := ""

	for chunk, err := range s.iterator {
		if err != nil {
			finalizeCollected(accumulated, &textBuilder, finishReason)
			return accumulated, err
		}

		if text, ok := chunk.FirstText(); ok {
			textBuilder.WriteString(text)
		}
		if len(chunk.Candidates) > 0 && chunk.Candidates[0].FinishReason != "" {
			finishReason = chunk.Candidates[0].FinishReason
		}
		if chunk.PromptFeedback != nil {
			accumulated.PromptFeedback = chunk.PromptFeedback
		}
		if chunk.UsageMetadata != nil {
			accumulated.UsageMetadata = chunk.UsageMetadata
		}
	}

	finalizeCollected(accumulated, &textBuilder, finishReason)
	return accumulated, nil
}

// finalizeCollected folds the accumulated text into a single model candidate.
// A stream that produced no text yields an empty candidate sequence, matching
// the sync path's behavior for declined responses.
func finalizeCollected(response *Response, textBuilder *strings.Builder, finishReason string) {
	if textBuilder.Len() == 0 && finishReason == "" {
		return
	}
	response.Candidates = []Candidate{{
		Content:      ModelContent(TextPart(textBuilder.String())),
		FinishReason: finishReason,
	}}
}
