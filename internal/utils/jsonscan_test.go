package utils

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// frameReader delivers its frames one per Read call, regardless of the size
// of the caller's buffer, simulating a transport whose frame boundaries do
// not align with JSON object boundaries.
type frameReader struct {
	frames []string
	index  int
}

func (r *frameReader) Read(p []byte) (int, error) {
	for r.index < len(r.frames) {
		frame := r.frames[r.index]
		r.index++
		if frame == "" {
			// Zero-byte frame: deliver nothing but keep the stream open.
			return 0, nil
		}
		return copy(p, frame), nil
	}
	return 0, io.EOF
}

// collectObjects drains the scanner and returns all extracted objects plus
// the terminal error (io.EOF on clean end).
func collectObjects(t *testing.T, scanner *JSONObjectScanner) ([]string, error) {
	t.Helper()
	var objects []string
	for {
		object, err := scanner.Next()
		if err != nil {
			return objects, err
		}
		objects = append(objects, string(object))
	}
}

func TestJSONObjectScanner_SingleObjectSplitAcrossFrames(t *testing.T) {
	reader := &frameReader{frames: []string{`{"candidates":[{"conten`, `t":{"parts":[{"text":"Hi"}]}}]}`}}
	scanner := NewJSONObjectScanner(reader)

	objects, err := collectObjects(t, scanner)
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if len(objects) != 1 {
		t.Fatalf("expected 1 object, got %d", len(objects))
	}
	expected := `{"candidates":[{"content":{"parts":[{"text":"Hi"}]}}]}`
	if objects[0] != expected {
		t.Errorf("expected %q, got %q", expected, objects[0])
	}
}

func TestJSONObjectScanner_MultipleObjectsInOneFrame(t *testing.T) {
	reader := &frameReader{frames: []string{`[{"a":1},{"b":2},` + "\n" + `{"c":3}]`}}
	scanner := NewJSONObjectScanner(reader)

	objects, err := collectObjects(t, scanner)
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	expected := []string{`{"a":1}`, `{"b":2}`, `{"c":3}`}
	if len(objects) != len(expected) {
		t.Fatalf("expected %d objects, got %d: %v", len(expected), len(objects), objects)
	}
	for i, object := range objects {
		if object != expected[i] {
			t.Errorf("object %d: expected %q, got %q", i, expected[i], object)
		}
	}
}

func TestJSONObjectScanner_BracesInsideStrings(t *testing.T) {
	// Braces and an escaped quote inside text content must not affect the
	// depth count.
	payload := `{"text":"a } brace { and a \" quote"}{"done":true}`
	scanner := NewJSONObjectScanner(strings.NewReader(payload))

	objects, err := collectObjects(t, scanner)
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if len(objects) != 2 {
		t.Fatalf("expected 2 objects, got %d: %v", len(objects), objects)
	}
	if objects[0] != `{"text":"a } brace { and a \" quote"}` {
		t.Errorf("unexpected first object: %q", objects[0])
	}
}

func TestJSONObjectScanner_EscapedBackslashBeforeQuote(t *testing.T) {
	// The string ends at the quote following an escaped backslash.
	payload := `{"text":"backslash \\"}`
	scanner := NewJSONObjectScanner(strings.NewReader(payload))

	object, err := scanner.Next()
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if string(object) != payload {
		t.Errorf("expected %q, got %q", payload, object)
	}
}

func TestJSONObjectScanner_TruncatedStream(t *testing.T) {
	reader := &frameReader{frames: []string{`{"a":1}`, `{"b":`}}
	scanner := NewJSONObjectScanner(reader)

	object, err := scanner.Next()
	if err != nil {
		t.Fatalf("first Next returned error: %v", err)
	}
	if string(object) != `{"a":1}` {
		t.Errorf("unexpected first object: %q", object)
	}

	// The partial object must produce exactly one truncation error...
	if _, err = scanner.Next(); !errors.Is(err, ErrTruncatedStream) {
		t.Fatalf("expected ErrTruncatedStream, got %v", err)
	}

	// ...and no fabricated object afterwards.
	if _, err = scanner.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF after truncation was reported, got %v", err)
	}
}

func TestJSONObjectScanner_CleanEndVariants(t *testing.T) {
	tests := []struct {
		name   string
		frames []string
	}{
		{"connection close after final object", []string{`{"a":1}`}},
		{"trailing array bracket", []string{`[{"a":1}`, `]`}},
		{"trailing whitespace", []string{`{"a":1}`, "\n  \n"}},
		{"zero-byte final frame", []string{`{"a":1}`, ""}},
		{"done sentinel", []string{"data: {\"a\":1}\n", "data: [DONE]\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := NewJSONObjectScanner(&frameReader{frames: tt.frames})
			objects, err := collectObjects(t, scanner)
			if err != io.EOF {
				t.Fatalf("expected io.EOF, got %v", err)
			}
			if len(objects) != 1 || objects[0] != `{"a":1}` {
				t.Errorf("expected one {\"a\":1} object, got %v", objects)
			}
		})
	}
}

// TestJSONObjectScanner_FrameBoundaryIndependence verifies that the decoded
// object sequence is identical for every possible split of the byte stream
// into two frames.
func TestJSONObjectScanner_FrameBoundaryIndependence(t *testing.T) {
	payload := `[{"candidates":[{"content":{"parts":[{"text":"Hel"}]}}]},` +
		`{"candidates":[{"content":{"parts":[{"text":"lo {w} \"orld\""}]}}]},` +
		`{"candidates":[{"content":{"parts":[{"text":"!"}]},"finish_reason":"STOP"}]}]`

	reference, err := collectObjects(t, NewJSONObjectScanner(strings.NewReader(payload)))
	if err != io.EOF {
		t.Fatalf("reference decode failed: %v", err)
	}
	if len(reference) != 3 {
		t.Fatalf("expected 3 reference objects, got %d", len(reference))
	}

	for split := 0; split <= len(payload); split++ {
		scanner := NewJSONObjectScanner(&frameReader{frames: []string{payload[:split], payload[split:]}})
		objects, err := collectObjects(t, scanner)
		if err != io.EOF {
			t.Fatalf("split %d: expected io.EOF, got %v", split, err)
		}
		if len(objects) != len(reference) {
			t.Fatalf("split %d: expected %d objects, got %d", split, len(reference), len(objects))
		}
		for i := range objects {
			if objects[i] != reference[i] {
				t.Errorf("split %d: object %d differs: %q vs %q", split, i, objects[i], reference[i])
			}
		}
	}
}

func TestJSONObjectScanner_NestedObjectsAndArrays(t *testing.T) {
	payload := `{"a":{"b":[{"c":1},{"d":[2,3]}]},"e":"f"}`
	scanner := NewJSONObjectScanner(strings.NewReader(payload))

	object, err := scanner.Next()
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if string(object) != payload {
		t.Errorf("expected %q, got %q", payload, object)
	}
	if _, err = scanner.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestJSONObjectScanner_EmptyStream(t *testing.T) {
	scanner := NewJSONObjectScanner(strings.NewReader(""))
	if _, err := scanner.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF on empty stream, got %v", err)
	}
}

// errorReader fails after delivering its initial content.
type errorReader struct {
	content string
	sent    bool
	err     error
}

func (r *errorReader) Read(p []byte) (int, error) {
	if !r.sent {
		r.sent = true
		return copy(p, r.content), nil
	}
	return 0, r.err
}

func TestJSONObjectScanner_ReadError(t *testing.T) {
	readFailure := errors.New("connection reset")
	scanner := NewJSONObjectScanner(&errorReader{content: `{"a":1}{"b":`, err: readFailure})

	object, err := scanner.Next()
	if err != nil {
		t.Fatalf("first Next returned error: %v", err)
	}
	if string(object) != `{"a":1}` {
		t.Errorf("unexpected first object: %q", object)
	}

	if _, err = scanner.Next(); !errors.Is(err, readFailure) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}
