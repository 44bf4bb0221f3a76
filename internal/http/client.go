// Package http implements the transport used for every Skylift Cloud API
// call: URL construction, authentication headers, body encoding and the
// mapping of wire-level failures onto structured errors.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/skylift-io/skylift-go/internal/auth"
	"github.com/skylift-io/skylift-go/internal/constants"
	"github.com/skylift-io/skylift-go/pkg/skylift"
)

// Request describes a single API call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is JSON-encoded unless it is a []byte, which is sent verbatim
	// with the caller-provided Content-Type (zone file uploads).
	Body    interface{}
	Headers map[string]string
}

// Response carries the raw result of an API call.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// HasBody reports whether the provider returned a response body. A 204 and
// an empty 2xx body both yield false; Body stays nil in either case so
// "no body" is distinguishable from an empty JSON object.
func (r *Response) HasBody() bool {
	return r != nil && r.Body != nil
}

// Client performs HTTP requests against a single base URL. A Client is
// stateless between calls and safe for concurrent use.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	httpClient   *retryablehttp.Client
	userAgent    string
	timeout      time.Duration
	logger       skylift.Logger
	debug        bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger skylift.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-request deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying standard HTTP client.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// WithRetryConfig enables automatic retries for transient failures. Retries
// are strictly opt-in; without this option every call makes exactly one
// attempt.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a transport rooted at the given base URL. The token
// manager may be nil for unauthenticated requests in tests.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	// Error responses must reach the caller intact so the provider error
	// envelope can be parsed; the default handler discards them.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   retryClient,
		userAgent:    constants.DefaultUserAgent,
		timeout:      constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do performs a single API request and classifies any failure as a
// *skylift.APIError. Provider errors (non-2xx) are returned alongside the
// raw response; transport failures return a nil response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := c.prepareRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	c.logRequest(req)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.classifyTransportError(err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, c.classifyTransportError(err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
	}
	if len(body) > 0 {
		resp.Body = body
	}

	c.logResponse(resp)

	if resp.StatusCode < nethttp.StatusOK || resp.StatusCode >= nethttp.StatusMultipleChoices {
		return resp, skylift.ParseErrorEnvelope(resp.Body, resp.StatusCode)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}

func (c *Client) prepareRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	bodyBytes, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, &skylift.APIError{
			Message: fmt.Sprintf("encoding request body: %v", err),
			Code:    skylift.ErrorCodeUnknown,
		}
	}

	var body interface{}
	if bodyBytes != nil {
		body = bodyBytes
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, c.buildURL(req.Path, req.Query), body)
	if err != nil {
		return nil, &skylift.APIError{
			Message: fmt.Sprintf("building request: %v", err),
			Code:    skylift.ErrorCodeUnknown,
		}
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		authHeaders, err := auth.BuildAuthHeader(token)
		if err != nil {
			return nil, err
		}

		for key, value := range authHeaders {
			httpReq.Header.Set(key, value)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// buildURL joins the base URL and path with exactly one slash, whatever
// combination of trailing and leading slashes the two carry.
func (c *Client) buildURL(path string, query url.Values) string {
	fullURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	return fullURL
}

func encodeBody(body interface{}) ([]byte, string, error) {
	switch payload := body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return payload, "", nil
	default:
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, "", err
		}

		return encoded, "application/json", nil
	}
}

func (c *Client) classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &skylift.APIError{
			Message: fmt.Sprintf("request timed out after %s", c.timeout),
			Code:    skylift.ErrorCodeTimeout,
		}
	}

	return &skylift.APIError{
		Message: fmt.Sprintf("network error: %v", err),
		Code:    skylift.ErrorCodeNetwork,
	}
}

func (c *Client) logRequest(req *Request) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
		"query":  req.Query.Encode(),
	})
}

func (c *Client) logResponse(resp *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status":    resp.StatusCode,
		"body_size": len(resp.Body),
	})
}
