package pitchdeck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is used when no API URL is configured
	DefaultBaseURL = "http://localhost:8000"
	apiPrefix      = "/api/pitch-deck"
	uploadField    = "file"
)

// HTTPClient defines the interface for HTTP operations
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the pitch-deck analysis service. It holds no per-call
// state; every method performs exactly one request and never retries.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	logger     *log.Logger
}

// ClientOption allows configuring the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for per-request lines
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the service at baseURL
func NewClient(baseURL string, opts ...ClientOption) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := &Client{
		baseURL: baseURL,
		// no Timeout: a slow analysis is left to finish
		httpClient: &http.Client{},
		logger:     log.Default(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the service root the client was built with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Upload sends the document as a multipart body
func (c *Client) Upload(ctx context.Context, doc Document) (*UploadResult, error) {
	body, contentType, err := multipartBody(doc)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/upload"), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	// a JSON null body leaves result nil
	var result *UploadResult
	if err := c.do(req, opUpload, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// AnalyzeSimple runs the single-pass analysis for an uploaded deck
func (c *Client) AnalyzeSimple(ctx context.Context, fileID string) (*AnalysisResult, error) {
	return c.analyze(ctx, "/analyze/"+url.PathEscape(fileID), opAnalyze)
}

// AnalyzeWithAgents runs the multi-agent analysis for an uploaded deck
func (c *Client) AnalyzeWithAgents(ctx context.Context, fileID string) (*AnalysisResult, error) {
	return c.analyze(ctx, "/analyze-with-agents/"+url.PathEscape(fileID), opAnalyzeAgent)
}

// Analyze dispatches to the endpoint matching mode
func (c *Client) Analyze(ctx context.Context, fileID string, mode Mode) (*AnalysisResult, error) {
	switch mode {
	case ModeSimple:
		return c.AnalyzeSimple(ctx, fileID)
	case ModeMultiAgent:
		return c.AnalyzeWithAgents(ctx, fileID)
	default:
		return nil, &ValidationError{Message: fmt.Sprintf("unsupported analysis mode %d", int(mode))}
	}
}

// Health asks the service whether it is up
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/health"), nil)
	if err != nil {
		return nil, err
	}

	var status HealthStatus
	if err := c.do(req, opHealth, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) analyze(ctx context.Context, path, op string) (*AnalysisResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), nil)
	if err != nil {
		return nil, err
	}

	var result *AnalysisResult
	if err := c.do(req, op, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + apiPrefix + path
}

// do performs a single request and decodes a 2xx JSON body into v
func (c *Client) do(req *http.Request, op string, v interface{}) error {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("pitchdeck: %s %s id=%s err=%v", req.Method, req.URL.Path, requestID, err)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Printf("pitchdeck: %s %s id=%s status=%d elapsed=%s",
		req.Method, req.URL.Path, requestID, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &TransportError{Op: op, StatusCode: resp.StatusCode}
	}

	if err := decodeJSON(resp.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func multipartBody(doc Document) (io.Reader, string, error) {
	f, err := os.Open(doc.Path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", doc.Name, err)
	}
	defer f.Close()

	name := doc.Name
	if name == "" {
		name = "deck.pdf"
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, uploadField, name))
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", doc.Name, err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &buf, writer.FormDataContentType(), nil
}

// decodeJSON reads and decodes JSON from response body
func decodeJSON(r io.Reader, v interface{}) error {
	return json.NewDecoder(r).Decode(v)
}
