package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/Himasnhu-AT/ai-go/internal/utils"
	"github.com/Himasnhu-AT/ai-go/providers/ai"
	"github.com/Himasnhu-AT/ai-go/providers/observability"
)

// Stream implements ai.StreamProvider against the streamGenerateContent
// endpoint. The provider delivers a sequence of JSON response objects whose
// frame boundaries need not align with object boundaries; the scanner
// re-aligns them and one ai.StreamChunk is yielded per decoded object, in
// wire order.
//
// Pre-stream failures (auth, bad request, dial errors) are returned directly.
// Mid-stream failures are yielded through the iterator: an undecodable
// object yields a stream-decode error and reading continues with the next
// object; a truncated tail at end of stream yields exactly one stream-decode
// error and terminates. Breaking out of the consuming loop closes the
// underlying connection; no work continues after the consumer stops pulling.
func (c Client) Stream(ctx context.Context, request ai.Request) (*ai.Stream, error) {
	span := observability.SpanFromContext(ctx)
	observer := observability.ObserverFromContext(ctx)
	requestID := uuid.NewString()

	if span != nil {
		span.AddEvent(observability.EventLLMRequestStart)
		span.SetAttributes(
			observability.String(observability.AttrLLMProvider, providerName),
			observability.String(observability.AttrLLMEndpoint, c.baseURL),
			observability.String(observability.AttrLLMModel, c.model),
			observability.String(observability.AttrLLMRequestID, requestID),
			observability.Bool("llm.streaming", true),
		)
	}

	if observer != nil {
		observer.Trace(ctx, "Gemini provider preparing streaming request",
			observability.String(observability.AttrLLMProvider, providerName),
			observability.String(observability.AttrLLMModel, c.model),
			observability.String(observability.AttrLLMRequestID, requestID),
			observability.Int(observability.AttrRequestContentsCount, len(request.Contents)),
		)
	}

	streamURL := fmt.Sprintf("%s/models/%s:streamGenerateContent", c.baseURL, c.model)
	wireRequest := requestToWire(request)

	httpResponse, err := utils.DoPostStream(
		ctx,
		c.httpClient,
		streamURL,
		wireRequest,
		utils.HeaderOption{Key: apiKeyHeader, Value: c.apiKey},
	)
	if err != nil {
		if observer != nil {
			observer.Trace(ctx, "Streaming HTTP request failed", observability.Error(err))
		}
		return nil, mapTransportError(err)
	}

	objectScanner := utils.NewJSONObjectScanner(httpResponse.Body)

	iteratorFunc := func(yield func(*ai.StreamChunk, error) bool) {
		// Closing the body here covers both normal exhaustion and the
		// consumer abandoning the loop early.
		defer utils.CloseWithLog(httpResponse.Body)

		chunksDecoded := 0
		defer func() {
			if span != nil {
				span.AddEvent(observability.EventLLMRequestEnd,
					observability.Int(observability.AttrStreamChunksCount, chunksDecoded),
				)
			}
		}()

		for {
			if ctx.Err() != nil {
				yield(nil, ai.WrapError(ai.KindNetwork, "stream cancelled", ctx.Err()))
				return
			}

			objectBytes, scanErr := objectScanner.Next()
			if scanErr == io.EOF {
				return
			}
			if errors.Is(scanErr, utils.ErrTruncatedStream) || errors.Is(scanErr, utils.ErrObjectTooLarge) {
				if span != nil {
					span.AddEvent(observability.EventDecodeError, observability.Error(scanErr))
				}
				yield(nil, ai.WrapError(ai.KindStreamDecode, "truncated streaming payload", scanErr))
				return
			}
			if scanErr != nil {
				yield(nil, ai.WrapError(ai.KindNetwork, "stream read failed", scanErr))
				return
			}

			var wireResponse generateContentResponse
			if parseErr := json.Unmarshal(objectBytes, &wireResponse); parseErr != nil {
				if span != nil {
					span.AddEvent(observability.EventDecodeError, observability.Error(parseErr))
				}
				// Surface the bad object to the caller, then keep reading:
				// subsequent objects may still be well-formed.
				if !yield(nil, ai.WrapError(ai.KindStreamDecode, "malformed streaming chunk", parseErr)) {
					return
				}
				continue
			}

			if wireResponse.Error != nil {
				apiErr := ai.ErrorFromStatus(wireResponse.Error.Code, wireResponse.Error.Message, 0)
				yield(nil, apiErr)
				return
			}

			chunksDecoded++
			if !yield(chunkFromWire(&wireResponse), nil) {
				return
			}
		}
	}

	return ai.NewStream(iteratorFunc), nil
}

// StreamText streams content for a single text prompt. It is the convenience
// path over [Client.Stream] with [ai.SimpleRequest].
func (c Client) StreamText(ctx context.Context, prompt string) (*ai.Stream, error) {
	return c.Stream(ctx, ai.SimpleRequest(prompt))
}
