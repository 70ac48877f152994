package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Himasnhu-AT/ai-go/providers/observability"
)

// ErrDecodeResponse marks a 2xx response whose body could not be decoded
// into the expected shape. The provider layer classifies it as a server-side
// failure, distinct from connection-level errors.
var ErrDecodeResponse = errors.New("undecodable response body")

// HeaderOption is an extra header to set on an outgoing request. Providers
// use it for their authentication schemes (e.g. x-goog-api-key for Gemini).
type HeaderOption struct {
	Key   string
	Value string
}

// StatusError reports a non-2xx HTTP response from a provider endpoint.
// It carries the raw status code and body so the provider layer can map the
// failure onto its public error taxonomy; this package performs no mapping
// of its own.
type StatusError struct {
	StatusCode int
	Body       string
	RetryAfter time.Duration // parsed from the Retry-After header, zero if absent
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("non-2xx status %d: %s", e.StatusCode, TruncateStringDefault(e.Body))
}

// newStatusError builds a StatusError from a response and its (already read) body.
func newStatusError(response *http.Response, body []byte) *StatusError {
	statusErr := &StatusError{
		StatusCode: response.StatusCode,
		Body:       string(body),
	}
	if seconds, err := strconv.Atoi(response.Header.Get("Retry-After")); err == nil && seconds > 0 {
		statusErr.RetryAfter = time.Duration(seconds) * time.Second
	}
	return statusErr
}

// CloseWithLog closes the given closer and logs a warning if closing fails.
// Used for response bodies where a close error must not override the primary
// result of the call.
func CloseWithLog(closer io.Closer) {
	if err := closer.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err.Error())
	}
}

// DoPostSync performs a synchronous HTTP POST request with a JSON body and
// parses the response into OutputStruct.
//
// Error handling strategy:
//   - Context errors (timeout, cancellation) and connection failures are
//     returned wrapped, for the caller to classify as network errors.
//   - Non-2xx statuses return a [*StatusError] carrying status, body and any
//     Retry-After hint.
//   - JSON parsing errors include a response preview for debugging.
//
// The response body is always closed before returning; close errors are
// logged without overriding the primary error.
func DoPostSync[OutputStruct any](ctx context.Context, client *http.Client, url string, body any, headers ...HeaderOption) (*http.Response, *OutputStruct, error) {
	span := observability.SpanFromContext(ctx)

	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	if span != nil {
		span.AddEvent("http.request.prepared",
			observability.String(observability.AttrHTTPMethod, "POST"),
			observability.String(observability.AttrHTTPURL, url),
			observability.Int(observability.AttrHTTPRequestBodySize, len(jsonBody)),
		)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for _, header := range headers {
		req.Header.Set(header.Key, header.Value)
	}

	requestStart := time.Now()
	response, err := httpClient.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		if span != nil {
			span.AddEvent("http.request.error",
				observability.Error(err),
				observability.Duration("http.request.duration", requestDuration),
			)
		}
		return response, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer CloseWithLog(response.Body)

	respBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBodySize))
	if err != nil {
		return response, nil, fmt.Errorf("error reading response body: %w", err)
	}

	if span != nil {
		span.AddEvent("http.response.received",
			observability.Int(observability.AttrHTTPStatusCode, response.StatusCode),
			observability.Int(observability.AttrHTTPResponseBodySize, len(respBody)),
			observability.Duration("http.request.duration", requestDuration),
		)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return response, nil, newStatusError(response, respBody)
	}

	var resStruct OutputStruct
	if err = json.Unmarshal(respBody, &resStruct); err != nil {
		return response, nil, fmt.Errorf("%w (status %d): %v\nResponse preview: %s", ErrDecodeResponse, response.StatusCode, err, TruncateStringDefault(string(respBody)))
	}

	return response, &resStruct, nil
}
