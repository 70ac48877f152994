package gemini

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"

	"github.com/Himasnhu-AT/ai-go/internal/utils"
	"github.com/Himasnhu-AT/ai-go/providers/ai"
	"github.com/Himasnhu-AT/ai-go/providers/observability"
)

const (
	// DefaultBaseURL is the Google AI Studio endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	// DefaultModel is used by FromEnv when GEMINI_MODEL is unset.
	DefaultModel = "gemini-1.5-pro"

	apiKeyHeader = "x-goog-api-key"
	providerName = "gemini"
)

// Client is an immutable handle to the Gemini API. It holds the API key, the
// selected model and the endpoint base; once constructed it is never mutated,
// so a single Client can be shared read-only across concurrent calls. The
// With* builders return modified copies.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

var _ ai.StreamProvider = Client{}

// New creates a Client for the given API key and model. It performs no
// network I/O and fails with a config error when either argument is empty.
func New(apiKey, model string) (Client, error) {
	if apiKey == "" {
		return Client{}, ai.NewError(ai.KindConfig, "api key must not be empty")
	}
	if model == "" {
		return Client{}, ai.NewError(ai.KindConfig, "model must not be empty")
	}
	return Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}, nil
}

// FromEnv creates a Client from environment variables:
//   - GEMINI_API_KEY: API key for authentication (required)
//   - GEMINI_MODEL: model identifier (optional, defaults to DefaultModel)
//   - GEMINI_API_BASE_URL: endpoint base (optional, defaults to Google's API)
func FromEnv() (Client, error) {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultModel
	}
	client, err := New(os.Getenv("GEMINI_API_KEY"), model)
	if err != nil {
		return Client{}, err
	}
	if baseURL := os.Getenv("GEMINI_API_BASE_URL"); baseURL != "" {
		client = client.WithBaseURL(baseURL)
	}
	return client, nil
}

// WithModel returns a copy of the Client with the model replaced. The
// receiver is unchanged.
func (c Client) WithModel(model string) Client {
	c.model = model
	return c
}

// WithBaseURL returns a copy of the Client with the endpoint base replaced.
func (c Client) WithBaseURL(baseURL string) Client {
	c.baseURL = baseURL
	return c
}

// WithHTTPClient returns a copy of the Client using the given HTTP client for
// outbound requests. Timeouts and connection-level retries belong to that
// client, not to this library.
func (c Client) WithHTTPClient(httpClient *http.Client) Client {
	c.httpClient = httpClient
	return c
}

// Model returns the configured model identifier.
func (c Client) Model() string {
	return c.model
}

// Generate implements the ai.Provider interface. It performs one
// request/response exchange against the generateContent endpoint and blocks
// until the full response body is received and decoded. An empty candidate
// sequence (provider declined to answer) is a valid response, not an error.
func (c Client) Generate(ctx context.Context, request ai.Request) (*ai.Response, error) {
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
		)
		defer span.AddEvent(observability.EventLLMRequestEnd)
	}

	if observer != nil {
		observer.Trace(ctx, "Gemini provider preparing request",
			observability.String(observability.AttrLLMProvider, providerName),
			observability.String(observability.AttrLLMModel, c.model),
			observability.String(observability.AttrLLMRequestID, requestID),
			observability.Int(observability.AttrRequestContentsCount, len(request.Contents)),
			observability.Int(observability.AttrRequestToolsCount, len(request.Tools)),
		)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	wireRequest := requestToWire(request)

	httpResponse, wireResponse, err := utils.DoPostSync[generateContentResponse](
		ctx,
		c.httpClient,
		url,
		wireRequest,
		utils.HeaderOption{Key: apiKeyHeader, Value: c.apiKey},
	)
	if err != nil {
		if observer != nil {
			observer.Trace(ctx, "HTTP request failed", observability.Error(err))
		}
		return nil, mapTransportError(err)
	}

	response, err := responseFromWire(wireResponse)
	if err != nil {
		if span != nil {
			span.AddEvent(observability.EventDecodeError, observability.Error(err))
		}
		return nil, err
	}

	if span != nil {
		span.SetAttributes(
			observability.Int(observability.AttrHTTPStatusCode, httpResponse.StatusCode),
			observability.Int(observability.AttrResponseCandidatesCount, len(response.Candidates)),
		)
		if len(response.Candidates) > 0 {
			span.SetAttributes(observability.String(observability.AttrLLMFinishReason, response.Candidates[0].FinishReason))
		}
		if response.UsageMetadata != nil {
			span.AddEvent(observability.EventTokensReceived,
				observability.Int(observability.AttrLLMTokensTotal, response.UsageMetadata.TotalTokenCount),
			)
		}
	}

	return response, nil
}

// GenerateText generates content for a single text prompt. It is the
// convenience path over [Client.Generate] with [ai.SimpleRequest].
func (c Client) GenerateText(ctx context.Context, prompt string) (*ai.Response, error) {
	return c.Generate(ctx, ai.SimpleRequest(prompt))
}

// GenerateWithConfig generates content for a single text prompt with explicit
// generation configuration.
func (c Client) GenerateWithConfig(ctx context.Context, prompt string, config ai.GenerationConfig) (*ai.Response, error) {
	request := ai.SimpleRequest(prompt)
	request.GenerationConfig = &config
	return c.Generate(ctx, request)
}
