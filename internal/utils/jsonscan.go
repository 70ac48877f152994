package utils

import (
	"errors"
	"fmt"
	"io"
)

// maxObjectSize is the maximum size of a single buffered JSON object (10 MB).
// If an object exceeds this limit the scanner returns ErrObjectTooLarge
// instead of growing the accumulation buffer without bound.
const maxObjectSize = 10 * 1024 * 1024

// ErrTruncatedStream is returned by [JSONObjectScanner.Next] when the
// underlying stream ends while a JSON object is still incomplete in the
// accumulation buffer.
var ErrTruncatedStream = errors.New("stream ended with an incomplete JSON object")

// ErrObjectTooLarge is returned when a single JSON object exceeds maxObjectSize.
var ErrObjectTooLarge = errors.New("JSON object exceeds maximum buffered size")

// JSONObjectScanner extracts complete top-level JSON objects from a byte
// stream whose read boundaries need not align with object boundaries. The
// transport may deliver half an object in one frame and two and a half
// objects in the next; the scanner appends every frame to an accumulation
// buffer and returns objects as soon as they are complete, in byte-stream
// order.
//
// Object boundaries are found by brace/bracket depth tracking with
// string-literal and escape awareness, so braces inside generated text do
// not confuse the count. Bytes between objects (array brackets, commas,
// whitespace, "data:" prefixes, "[DONE]" sentinels) contain no braces and
// are skipped.
type JSONObjectScanner struct {
	reader  io.Reader
	buf     []byte
	readBuf []byte
	eof     bool
	err     error // sticky terminal error

	// incremental scan state, valid for buf[0:scanPos]
	scanPos  int
	objStart int // index of the current object's opening brace, -1 when outside an object
	depth    int
	inString bool
	escaped  bool
}

// NewJSONObjectScanner creates a scanner that reads raw frames from reader
// and yields one complete JSON object per call to [JSONObjectScanner.Next].
func NewJSONObjectScanner(reader io.Reader) *JSONObjectScanner {
	return &JSONObjectScanner{
		reader:   reader,
		readBuf:  make([]byte, 8*1024),
		objStart: -1,
	}
}

// Next returns the raw bytes of the next complete top-level JSON object.
//
// It returns io.EOF when the stream has ended cleanly after the last complete
// object (including a connection close without any explicit terminator, and a
// final zero-byte frame). If the stream ends while an object is still open,
// Next returns an error wrapping [ErrTruncatedStream] exactly once; any
// further calls return io.EOF. No partially decoded object is ever returned.
func (scanner *JSONObjectScanner) Next() ([]byte, error) {
	if scanner.err != nil {
		return nil, scanner.err
	}

	for {
		if object := scanner.scanBuffer(); object != nil {
			return object, nil
		}

		if len(scanner.buf) > maxObjectSize {
			scanner.err = io.EOF
			return nil, fmt.Errorf("buffered %d bytes without finding object end: %w", len(scanner.buf), ErrObjectTooLarge)
		}

		if scanner.eof {
			if scanner.objStart >= 0 {
				// Remainder is a partial object; report it once, then end.
				scanner.err = io.EOF
				return nil, fmt.Errorf("%d unconsumed bytes: %w", len(scanner.buf)-scanner.objStart, ErrTruncatedStream)
			}
			scanner.err = io.EOF
			return nil, io.EOF
		}

		n, readErr := scanner.reader.Read(scanner.readBuf)
		if n > 0 {
			scanner.buf = append(scanner.buf, scanner.readBuf[:n]...)
		}
		if readErr == io.EOF {
			scanner.eof = true
		} else if readErr != nil {
			scanner.err = io.EOF
			return nil, fmt.Errorf("stream read error: %w", readErr)
		}
	}
}

// scanBuffer advances the depth-tracking state machine over the unscanned
// portion of the buffer. It returns a copy of the next complete object, or
// nil if the buffer holds no complete object yet. Consumed bytes outside any
// object are discarded so the buffer only retains the current partial object.
func (scanner *JSONObjectScanner) scanBuffer() []byte {
	for scanner.scanPos < len(scanner.buf) {
		currentByte := scanner.buf[scanner.scanPos]

		if scanner.objStart < 0 {
			// Outside any object: only an opening brace is significant.
			if currentByte == '{' {
				scanner.objStart = scanner.scanPos
				scanner.depth = 1
			}
			scanner.scanPos++
			continue
		}

		if scanner.inString {
			switch {
			case scanner.escaped:
				scanner.escaped = false
			case currentByte == '\\':
				scanner.escaped = true
			case currentByte == '"':
				scanner.inString = false
			}
			scanner.scanPos++
			continue
		}

		switch currentByte {
		case '"':
			scanner.inString = true
		case '{', '[':
			scanner.depth++
		case ']':
			scanner.depth--
		case '}':
			scanner.depth--
			if scanner.depth == 0 {
				object := append([]byte(nil), scanner.buf[scanner.objStart:scanner.scanPos+1]...)
				scanner.buf = scanner.buf[scanner.scanPos+1:]
				scanner.scanPos = 0
				scanner.objStart = -1
				return object
			}
		}
		scanner.scanPos++
	}

	// Buffer fully scanned without a complete object; drop the junk prefix.
	if scanner.objStart < 0 {
		scanner.buf = scanner.buf[:0]
		scanner.scanPos = 0
	} else if scanner.objStart > 0 {
		scanner.buf = append(scanner.buf[:0], scanner.buf[scanner.objStart:]...)
		scanner.scanPos -= scanner.objStart
		scanner.objStart = 0
	}
	return nil
}
