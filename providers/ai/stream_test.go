package ai

import (
	"errors"
	"iter"
	"testing"
)

func chunkOf(text, finishReason string) *StreamChunk {
	candidate := Candidate{Content: ModelContent(TextPart(text))}
	candidate.FinishReason = finishReason
	return &StreamChunk{Candidates: []Candidate{candidate}}
}

func streamOf(pairs ...func(yield func(*StreamChunk, error) bool) bool) *Stream {
	return NewStream(func(yield func(*StreamChunk, error) bool) {
		for _, pair := range pairs {
			if !pair(yield) {
				return
			}
		}
	})
}

func yieldChunk(chunk *StreamChunk) func(yield func(*StreamChunk, error) bool) bool {
	return func(yield func(*StreamChunk, error) bool) bool { return yield(chunk, nil) }
}

func yieldErr(err error) func(yield func(*StreamChunk, error) bool) bool {
	return func(yield func(*StreamChunk, error) bool) bool { return yield(nil, err) }
}

func TestStreamIter_Order(t *testing.T) {
	stream := streamOf(
		yieldChunk(chunkOf("Hello", "")),
		yieldChunk(chunkOf(" world", "stop")),
	)

	var texts []string
	for chunk, err := range stream.Iter() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text, ok := chunk.FirstText(); ok {
			texts = append(texts, text)
		}
	}

	if len(texts) != 2 || texts[0] != "Hello" || texts[1] != " world" {
		t.Errorf("unexpected chunk order: %v", texts)
	}
}

func TestStreamCollect(t *testing.T) {
	usage := &UsageMetadata{PromptTokenCount: 3, CandidatesTokenCount: 5, TotalTokenCount: 8}
	last := chunkOf("!", "stop")
	last.UsageMetadata = usage

	stream := streamOf(
		yieldChunk(chunkOf("Hello", "")),
		yieldChunk(chunkOf(" world", "")),
		yieldChunk(last),
	)

	response, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}

	text, ok := response.FirstText()
	if !ok || text != "Hello world!" {
		t.Errorf("expected concatenated text, got (%q, %v)", text, ok)
	}
	if response.Candidates[0].FinishReason != FinishReasonStop {
		t.Errorf("expected finish reason %q, got %q", FinishReasonStop, response.Candidates[0].FinishReason)
	}
	if response.UsageMetadata == nil || response.UsageMetadata.TotalTokenCount != 8 {
		t.Errorf("expected usage metadata carried through, got %+v", response.UsageMetadata)
	}
}

func TestStreamCollect_MidStreamError(t *testing.T) {
	streamErr := NewError(KindStreamDecode, "truncated streaming payload")
	stream := streamOf(
		yieldChunk(chunkOf("partial", "")),
		yieldErr(streamErr),
		yieldChunk(chunkOf("never seen", "")),
	)

	response, err := stream.Collect()
	if !errors.Is(err, streamErr) {
		t.Fatalf("expected the stream error back, got %v", err)
	}

	text, ok := response.FirstText()
	if !ok || text != "partial" {
		t.Errorf("expected partial accumulation before the error, got (%q, %v)", text, ok)
	}
}

func TestStreamCollect_Empty(t *testing.T) {
	stream := NewStream(func(yield func(*StreamChunk, error) bool) {})

	response, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if _, ok := response.FirstText(); ok {
		t.Error("expected no text from an empty stream")
	}
	if response.Candidates != nil {
		t.Errorf("expected no candidates, got %+v", response.Candidates)
	}
}

func TestStreamIter_EarlyBreakStopsIterator(t *testing.T) {
	yielded := 0
	var sequence iter.Seq2[*StreamChunk, error] = func(yield func(*StreamChunk, error) bool) {
		for i := 0; i < 10; i++ {
			yielded++
			if !yield(chunkOf("x", ""), nil) {
				return
			}
		}
	}

	for range NewStream(sequence).Iter() {
		break
	}

	if yielded != 1 {
		t.Errorf("expected iteration to stop after the break, yielded %d chunks", yielded)
	}
}
