// Package api is the HTTP client for the prompt playground backend
// (/refs, /prompts, /prompt, /render, /eval, /health).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/instructvault/ivault-playground/internal/log"
	"github.com/instructvault/ivault-playground/internal/tracing"
)

const (
	maxBodyBytes    = 8 << 20
	requestIDHeader = "X-Request-ID"
)

// Options configures a Client. Zero values are usable.
type Options struct {
	// Timeout bounds each request; zero means no timeout.
	Timeout   time.Duration
	Tracer    trace.Tracer
	SessionID string
	// HTTPClient overrides the transport entirely; Timeout is then ignored.
	HTTPClient *http.Client
}

// Client talks to one playground server.
type Client struct {
	baseURL   string
	http      *http.Client
	tracer    trace.Tracer
	sessionID string
}

// NewClient returns a client for baseURL (e.g. "http://127.0.0.1:8000").
func NewClient(baseURL string, opts Options) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parsing server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url must be http or https, got %q", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("server url %q has no host", baseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	}

	return &Client{
		baseURL:   strings.TrimRight(u.String(), "/"),
		http:      httpClient,
		tracer:    tracer,
		sessionID: opts.SessionID,
	}, nil
}

// BaseURL returns the normalized server URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Refs lists the selectable version references in server order.
func (c *Client) Refs(ctx context.Context) ([]string, error) {
	var refs []string
	if err := c.doJSON(ctx, "refs", http.MethodGet, "/refs", nil, nil, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

// Prompts lists prompt identifiers under ref; the empty ref lists the
// working tree.
func (c *Client) Prompts(ctx context.Context, ref string) ([]string, error) {
	q := url.Values{}
	if ref != "" {
		q.Set("ref", ref)
	}
	var prompts []string
	if err := c.doJSON(ctx, "prompts", http.MethodGet, "/prompts", q, nil, &prompts); err != nil {
		return nil, err
	}
	if prompts == nil {
		return nil, opErr("prompts", ErrorDecodeFailed, "response is null, want a list", nil)
	}
	return prompts, nil
}

// Prompt fetches the raw spec of path under ref.
func (c *Client) Prompt(ctx context.Context, path, ref string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("prompt_path", path)
	if ref != "" {
		q.Set("ref", ref)
	}
	var spec json.RawMessage
	if err := c.doJSON(ctx, "prompt", http.MethodGet, "/prompt", q, nil, &spec); err != nil {
		return nil, err
	}
	return spec, nil
}

// Render asks the server to render a prompt with variables.
func (c *Client) Render(ctx context.Context, req RenderRequest) (json.RawMessage, error) {
	if req.Vars == nil {
		req.Vars = map[string]any{}
	}
	var out json.RawMessage
	if err := c.doJSON(ctx, "render", http.MethodPost, "/render", nil, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Eval runs the prompt's inline tests (and optional dataset) on the server.
func (c *Client) Eval(ctx context.Context, req EvalRequest) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.doJSON(ctx, "eval", http.MethodPost, "/eval", nil, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Health probes /health.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	if err := c.doJSON(ctx, "health", http.MethodGet, "/health", nil, nil, &h); err != nil {
		return Health{}, err
	}
	return h, nil
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, in, out any) (err error) {
	requestID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, tracing.SpanPrefixAPI+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(tracing.AttrOperation, op),
			attribute.String(tracing.AttrHTTPMethod, method),
			attribute.String(tracing.AttrHTTPPath, path),
			attribute.String(tracing.AttrRequestID, requestID),
			attribute.String(tracing.AttrSessionID, c.sessionID),
		),
	)
	start := time.Now()
	status := 0
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			if apiErr, ok := err.(*Error); ok {
				span.SetAttributes(attribute.String(tracing.AttrErrorCode, string(apiErr.Code)))
			}
			log.Debug(log.CatAPI, "request failed", "op", op, "status", status, "request_id", requestID, "error", err)
		} else {
			span.SetStatus(codes.Ok, "")
			log.Debug(log.CatAPI, "request done", "op", op, "status", status, "request_id", requestID, "duration", time.Since(start))
		}
		span.End()
	}()

	var body io.Reader
	if in != nil {
		var buf bytes.Buffer
		if encErr := json.NewEncoder(&buf).Encode(in); encErr != nil {
			return opErr(op, ErrorEncodeFailed, "encode request failed", encErr)
		}
		body = &buf
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, reqErr := http.NewRequestWithContext(ctx, method, target, body)
	if reqErr != nil {
		return opErr(op, ErrorTransportFailed, "build request failed", reqErr)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, doErr := c.http.Do(req)
	if doErr != nil {
		return classifyTransportError(op, doErr)
	}
	defer func() { _ = resp.Body.Close() }()

	status = resp.StatusCode
	span.SetAttributes(attribute.Int(tracing.AttrHTTPStatus, status))

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if readErr != nil {
		return opErr(op, ErrorDecodeFailed, "read response failed", readErr)
	}

	if status < 200 || status >= 300 {
		return &Error{
			Code:       ErrorStatus,
			Operation:  op,
			StatusCode: status,
			Detail:     extractDetail(raw),
			Message:    http.StatusText(status),
		}
	}

	if !json.Valid(raw) {
		return opErr(op, ErrorDecodeFailed, "response is not JSON", nil)
	}
	if out == nil {
		return nil
	}
	if decErr := json.Unmarshal(raw, out); decErr != nil {
		return opErr(op, ErrorDecodeFailed, "decode response failed", decErr)
	}
	return nil
}

// extractDetail pulls "detail" out of an error body. String details are
// returned verbatim; structured details (validation errors) as compact JSON.
func extractDetail(raw []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}
	if string(envelope.Detail) == "null" {
		return ""
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, envelope.Detail); err != nil {
		return string(envelope.Detail)
	}
	return compact.String()
}
