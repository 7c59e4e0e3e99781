package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.uber.org/zap"

	tracing "github.com/troikatech/chat-probe/pkg/otel"
)

// Client sends the greeting conversation to a chat completions endpoint
type Client struct {
	apiKey     string
	endpoint   string
	payload    Request
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a chat client. An empty apiKey is accepted: the request
// is still sent and the API answers with its own authorization error.
func NewClient(apiKey, endpoint string, httpClient *http.Client, logger *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		// No timeout: rely on transport defaults
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		apiKey:     apiKey,
		endpoint:   endpoint,
		payload:    GreetingRequest(),
		httpClient: httpClient,
		logger:     logger,
	}
}

// BuildRequest constructs the POST request without sending it
func (c *Client) BuildRequest(ctx context.Context) (*http.Request, error) {
	jsonData, err := json.Marshal(c.payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	return httpReq, nil
}

// Invoke sends the request exactly once and decodes the body as JSON.
func (c *Client) Invoke(ctx context.Context) (*Response, error) {
	ctx, span := tracing.Tracer.Start(ctx, "chat.invoke")
	defer span.End()

	span.SetAttributes(
		semconv.HTTPMethodKey.String(http.MethodPost),
		semconv.HTTPURLKey.String(c.endpoint),
		attribute.String("chat.model", c.payload.Model),
	)

	httpReq, err := c.BuildRequest(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	c.logger.Debug("Sending chat completion request",
		zap.String("endpoint", c.endpoint),
		zap.String("model", c.payload.Model),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrTransport, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	span.SetAttributes(semconv.HTTPStatusCodeKey.Int(resp.StatusCode))

	var body interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		err = fmt.Errorf("%w (status %d): %w", ErrDecode, resp.StatusCode, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	c.logger.Debug("Received chat completion response",
		zap.Int("status", resp.StatusCode),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
