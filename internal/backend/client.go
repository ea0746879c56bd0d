// Package backend is the HTTP client for the image-to-text translation service.
//
// It covers every endpoint the service exposes: extraction, translation,
// account management and per-user history. Client also implements
// translator.Endpoint so it can drive chunked translations directly.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/pricofy/image-translator/internal/domain"
)

// DefaultBaseURL is where the service listens in a local setup.
const DefaultBaseURL = "http://localhost:5005"

// DefaultTimeout bounds each HTTP request.
const DefaultTimeout = 60 * time.Second

// RequestIDHeader carries a per-request UUID for server-side correlation.
const RequestIDHeader = "X-Request-ID"

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// Token is sent as a bearer token when non-empty.
	Token string
}

// Client talks to the translation service.
// SetToken must not be called concurrently with requests.
type Client struct {
	http  *resty.Client
	token string
}

// APIError is returned by the non-translate endpoints on a non-2xx answer.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// New creates a Client.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	h := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")
	h.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader(RequestIDHeader, uuid.NewString())
		return nil
	})

	return &Client{http: h, token: opts.Token}
}

// SetToken replaces the bearer token. An empty token disables auth.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	return c.token
}

// request starts a request bound to ctx with auth applied.
func (c *Client) request(ctx context.Context) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if c.token != "" {
		r.SetAuthToken(c.token)
	}
	return r
}

// decode unmarshals a successful response body into out.
func decode(resp *resty.Response, out interface{}) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// apiError builds an APIError from a failed response.
// fallback is used when the body carries no error message.
func apiError(resp *resty.Response, fallback string) error {
	var body domain.ErrorResponse
	_ = json.Unmarshal(resp.Body(), &body)

	msg := body.Error
	if msg == "" {
		msg = fallback
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}

// do runs a prepared request and decodes the JSON result.
// op names the operation in error messages ("Login", "Signup", ...).
func do(r *resty.Request, method, path, op string, out interface{}) error {
	resp, err := r.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w", strings.ToLower(op), err)
	}
	if resp.IsError() {
		return apiError(resp, op+" failed")
	}
	if out == nil {
		return nil
	}
	return decode(resp, out)
}
