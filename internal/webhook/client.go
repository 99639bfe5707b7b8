// Package webhook posts dish descriptions to the recipe webhook and extracts
// the recipe text from its reply.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"recipemaker/internal/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// RequestIDHeader carries a per-request UUID for correlating webhook logs.
	RequestIDHeader = "X-Request-ID"
	userAgent       = "recipemaker"

	// DefaultMaxResponseBytes caps how much of a reply is read.
	DefaultMaxResponseBytes = 4 << 20
)

// ErrInvalidJSON is wrapped by RequestError when a 2xx reply is not JSON.
var ErrInvalidJSON = errors.New("response body is not valid JSON")

// ErrResponseTooLarge is wrapped by RequestError when a 2xx reply exceeds the
// response size limit.
var ErrResponseTooLarge = errors.New("response body exceeds size limit")

// RequestError is returned for transport failures and non-2xx replies.
// StatusCode is 0 when no response was received.
type RequestError struct {
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("webhook: status %d: %v", e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("webhook: HTTP error! status: %d", e.StatusCode)
	default:
		return fmt.Sprintf("webhook: %v", e.Err)
	}
}

func (e *RequestError) Unwrap() error { return e.Err }

// Client sends generation requests to a single webhook endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	timeout  time.Duration
	tracer   oteltrace.Tracer
	header   http.Header
	maxBytes int64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request. Zero (the default) means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithTracer sets the tracer used for request spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.header.Add(key, value) }
}

// WithMaxResponseBytes sets the largest reply body accepted. n <= 0 keeps
// DefaultMaxResponseBytes.
func WithMaxResponseBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// New creates a client for endpoint, which must be an absolute http(s) URL.
func New(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("webhook: parse endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("webhook: endpoint %q must be an absolute http or https URL", endpoint)
	}
	c := &Client{
		endpoint: u.String(),
		http:     &http.Client{},
		tracer:   noop.NewTracerProvider().Tracer("recipemaker/webhook"),
		header:   make(http.Header),
		maxBytes: DefaultMaxResponseBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the webhook URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Generate posts {"dish": dish} and returns the reply's "recipe" string.
// A 2xx reply without a string "recipe" field yields "" and no error.
func (c *Client) Generate(ctx context.Context, dish string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	requestID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, "webhook.generate",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("http.request.method", http.MethodPost),
			attribute.String("url.full", c.endpoint),
			attribute.String("recipemaker.request.id", requestID),
			attribute.Int("recipemaker.dish.length", len(dish)),
		),
	)
	defer span.End()

	recipe, status, err := c.do(ctx, dish, requestID)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.Bool("recipemaker.recipe.present", recipe != ""))
	span.SetStatus(codes.Ok, "")
	return recipe, nil
}

func (c *Client) do(ctx context.Context, dish, requestID string) (string, int, error) {
	body, err := EncodeRequest(dish)
	if err != nil {
		return "", 0, &RequestError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return "", 0, &RequestError{Err: err}
	}
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(RequestIDHeader, requestID)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	logger.Debug("webhook request", "url", c.endpoint, "request_id", requestID)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	logger.Debug("webhook response", "status", resp.StatusCode, "request_id", requestID, "elapsed", time.Since(start))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBytes))
		return "", resp.StatusCode, &RequestError{StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return "", resp.StatusCode, &RequestError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	if int64(len(data)) > c.maxBytes {
		logger.Warn("webhook reply too large", "limit_bytes", c.maxBytes, "request_id", requestID)
		return "", resp.StatusCode, &RequestError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w (%d bytes)", ErrResponseTooLarge, c.maxBytes),
		}
	}
	recipe, err := DecodeRecipe(data)
	if err != nil {
		return "", resp.StatusCode, &RequestError{StatusCode: resp.StatusCode, Err: err}
	}
	return recipe, resp.StatusCode, nil
}
