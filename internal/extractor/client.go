package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/internal/submission"
	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/pkg/transport"
)

// Client implements System over net/http. Outgoing requests carry a
// fresh request ID and are logged through the transport chain.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *slog.Logger
}

// New builds a Client from finalized configuration.
func New(config *Config, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}

	logger = logger.With("system", "extractor")

	mw := transport.New()
	mw.Use(transport.RequestID())
	if config.UserAgent != "" {
		mw.Use(transport.Agent(config.UserAgent))
	}
	mw.Use(transport.Logger(logger))

	return &Client{
		base: base,
		http: &http.Client{
			Timeout:   config.TimeoutDuration(),
			Transport: mw.Apply(http.DefaultTransport),
		},
		logger: logger,
	}, nil
}

// Extract submits one document with its label and schema. Transport
// breakdowns and undecodable bodies return a *Failure with Status zero;
// service rejections return a *Failure carrying the HTTP status and the
// detail message from the response.
func (c *Client) Extract(ctx context.Context, req submission.Request) (*Result, error) {
	c.logger.Info(
		"submitting document",
		"label", req.Label,
		"file", req.File.Name,
		"size", req.File.Size,
	)

	body, contentType, err := encodeMultipart(req)
	if err != nil {
		return nil, &Failure{Detail: fmt.Sprintf("encode request: %v", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("extract"), body)
	if err != nil {
		return nil, &Failure{Detail: fmt.Sprintf("build request: %v", err)}
	}

	httpReq.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &Failure{Detail: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Failure{Detail: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Failure{Status: resp.StatusCode, Detail: failureDetail(resp.StatusCode, raw)}
	}

	result, err := decodeResult(raw)
	if err != nil {
		return nil, &Failure{Detail: err.Error()}
	}

	return result, nil
}

// Health probes the liveness endpoint.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	raw, err := c.get(ctx, "health")
	if err != nil {
		return nil, err
	}

	var health Health
	if err := json.Unmarshal(raw, &health); err != nil {
		return nil, &Failure{Detail: fmt.Sprintf("decode health: %v", err)}
	}

	return &health, nil
}

// Stats fetches the raw statistics blob.
func (c *Client) Stats(ctx context.Context) (json.RawMessage, error) {
	raw, err := c.get(ctx, "stats")
	if err != nil {
		return nil, err
	}

	if !json.Valid(raw) {
		return nil, &Failure{Detail: "stats response is not valid JSON"}
	}

	return json.RawMessage(raw), nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return nil, &Failure{Detail: fmt.Sprintf("build request: %v", err)}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &Failure{Detail: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Failure{Detail: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Failure{Status: resp.StatusCode, Detail: failureDetail(resp.StatusCode, raw)}
	}

	return raw, nil
}

func (c *Client) endpoint(path string) string {
	return c.base.JoinPath(path).String()
}

// encodeMultipart assembles the multipart form the service expects:
// the document as file, plus label and extraction_schema fields.
func encodeMultipart(req submission.Request) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", req.File.Name)
	if err != nil {
		return nil, "", err
	}

	if _, err := part.Write(req.File.Data); err != nil {
		return nil, "", err
	}

	if err := w.WriteField("label", req.Label); err != nil {
		return nil, "", err
	}

	if err := w.WriteField("extraction_schema", req.SchemaText); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}

// failureDetail extracts the service's detail message from an error
// response, falling back to the raw body and then the status text.
func failureDetail(status int, body []byte) string {
	var wire struct {
		Detail string `json:"detail"`
	}

	if err := json.Unmarshal(body, &wire); err == nil && wire.Detail != "" {
		return wire.Detail
	}

	if detail := strings.TrimSpace(string(body)); detail != "" {
		return detail
	}

	return http.StatusText(status)
}
