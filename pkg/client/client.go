package client

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

	"github.com/LlamaEdge/llamaedge-go/pkg/api"
	"github.com/LlamaEdge/llamaedge-go/pkg/debug"
	"github.com/LlamaEdge/llamaedge-go/pkg/observability"
)

// Relative paths of the server endpoints.
const (
	pathChatCompletions = "/v1/chat/completions"
	pathEmbeddings      = "/v1/embeddings"
	pathTranscriptions  = "/v1/audio/transcriptions"
	pathTranslations    = "/v1/audio/translations"
	pathFiles           = "/v1/files"
	pathModels          = "/v1/models"
	pathImageCreate     = "/v1/images/generations"
	pathImageEdit       = "/v1/images/edits"
	pathChunks          = "/v1/chunks"
	pathRetrieve        = "/v1/retrieve"
)

// Client performs HTTP requests against a LlamaEdge API server. The server
// base URL is validated at construction and immutable afterwards.
type Client struct {
	serverBaseURL *url.URL
	httpClient    *http.Client
}

// New creates a Client for the server at the given base address. A
// trailing slash is trimmed; the remainder must parse as an absolute URL.
//
// The default HTTP client carries no timeout: a streaming chat response
// can legitimately outlive any fixed deadline, and request lifecycle is
// controlled through the caller's context instead.
func New(serverBaseURL string) (*Client, error) {
	trimmed := strings.TrimRight(serverBaseURL, "/")

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, api.NewInvalidAddressError(err.Error(), err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, api.NewInvalidAddressError(fmt.Sprintf("%q is not an absolute URL", serverBaseURL), nil)
	}

	return &Client{
		serverBaseURL: u,
		httpClient:    &http.Client{},
	}, nil
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to install a
// custom transport or a caller-imposed timeout. Returns the Client for
// chaining.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c
}

// ServerBaseURL returns the normalized server base URL.
func (c *Client) ServerBaseURL() *url.URL {
	return c.serverBaseURL
}

// endpoint joins a fixed relative path against the server base URL.
func (c *Client) endpoint(path string) (string, error) {
	joined, err := url.JoinPath(c.serverBaseURL.String(), path)
	if err != nil {
		return "", api.NewInvalidAddressError(err.Error(), err)
	}
	return joined, nil
}

// postJSON sends a JSON request body to the given path and decodes the
// response into out.
func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return api.NewOperationError("failed to marshal request: "+err.Error(), err)
	}

	endpoint, err := c.endpoint(path)
	if err != nil {
		return err
	}

	debug.Log("client", "sending request", "method", http.MethodPost, "url", endpoint)
	if debug.TraceIsEnabled("client") {
		debug.Raw("client", string(payload))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return api.NewOperationError("failed to create HTTP request: "+err.Error(), err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// postForm sends a multipart form body to the given path and decodes the
// response into out. contentType is the multipart content type including
// the boundary.
func (c *Client) postForm(ctx context.Context, path, contentType string, form io.Reader, out any) error {
	endpoint, err := c.endpoint(path)
	if err != nil {
		return err
	}

	debug.Log("client", "sending multipart request", "method", http.MethodPost, "url", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, form)
	if err != nil {
		return api.NewOperationError("failed to create HTTP request: "+err.Error(), err)
	}
	req.Header.Set("Content-Type", contentType)

	return c.do(req, out)
}

// getJSON sends a GET request to the given path and decodes the response
// into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	endpoint, err := c.endpoint(path)
	if err != nil {
		return err
	}

	debug.Log("client", "sending request", "method", http.MethodGet, "url", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return api.NewOperationError("failed to create HTTP request: "+err.Error(), err)
	}

	return c.do(req, out)
}

// do executes the request, maps non-2xx statuses to operation errors, and
// decodes a successful response body into out.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return api.NewOperationError("request failed: "+err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return api.NewOperationError("failed to read response body: "+err.Error(), err)
	}
	if debug.TraceIsEnabled("client") {
		debug.Raw("client", string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return api.NewOperationError("failed to parse response: "+err.Error(), err)
	}
	return nil
}

// responseError builds an operation error from a non-2xx response,
// extracting the server's error message when the body carries one.
func responseError(resp *http.Response) error {
	message := extractErrorMessage(resp.Body)
	if message == "" {
		return api.OperationErrorf("server returned %s", resp.Status)
	}
	return api.OperationErrorf("server returned %s: %s", resp.Status, message)
}

// extractErrorMessage tries to parse the response body as an ErrorResponse
// and returns the error message if found.
func extractErrorMessage(body io.Reader) string {
	if body == nil {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}

	// Some endpoints return a plain text error body.
	return strings.TrimSpace(string(data))
}

// observe records call metrics. Deferred at the top of every facade
// operation.
func observe(operation string, start time.Time, err *error) {
	var e error
	if err != nil {
		e = *err
	}
	observability.ObserveRequest(operation, time.Since(start).Seconds(), e)
}
