package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/helpdesk-go/helpdesk/auth"
	"github.com/helpdesk-go/helpdesk/errors"
	"github.com/helpdesk-go/helpdesk/types"
)

const (
	// DefaultBaseURL is the production API host including the version prefix
	DefaultBaseURL = "https://api.helpdesk.com/v1"

	// HeaderAPIKey is the header the API expects the token under
	HeaderAPIKey = "Api-Key"

	// HeaderRequestID carries a client-generated correlation id
	HeaderRequestID = "X-Request-Id"
)

// Client represents the helpdesk API client
type Client struct {
	httpClient *resty.Client
	baseURL    string
	auth       auth.Authenticator
	userAgent  string

	// Service clients
	Requests     *RequestsService
	Teams        *TeamsService
	Users        *UsersService
	Tags         *TagsService
	RequestTypes *RequestTypesService
}

// Config represents client configuration
type Config struct {
	BaseURL   string
	Auth      auth.Authenticator
	UserAgent string
	Timeout   time.Duration
	Debug     bool
}

// NewClient creates a new helpdesk API client
func NewClient(config *Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.UserAgent == "" {
		config.UserAgent = "helpdesk-go-sdk/1.0.0"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", config.UserAgent).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetLogger(newLogger())

	if config.Debug || debugRequested() {
		httpClient.SetDebug(true)
	}

	client := &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		auth:       config.Auth,
		userAgent:  config.UserAgent,
	}

	// Initialize service clients
	client.Requests = &RequestsService{client: client}
	client.Teams = &TeamsService{client: client}
	client.Users = &UsersService{client: client}
	client.Tags = &TagsService{client: client}
	client.RequestTypes = &RequestTypesService{client: client}

	// Tag every outgoing request with a correlation id
	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		req.SetHeader(HeaderRequestID, uuid.NewString())
		return nil
	})

	return client
}

// NewClientWithToken creates a new client with a literal API token
func NewClientWithToken(token string) *Client {
	return NewClient(&Config{Auth: auth.NewStaticToken(token)})
}

// NewClientWithSecret creates a new client that resolves its token lazily
// from the given secret store path
func NewClientWithSecret(store auth.SecretStore, path string) *Client {
	return NewClient(&Config{Auth: auth.NewSecretToken(store, path)})
}

// SetAuth updates the client's authentication
func (c *Client) SetAuth(authenticator auth.Authenticator) {
	c.auth = authenticator
}

// SetTimeout updates the client's timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.SetTimeout(timeout)
}

// SetDebug enables or disables debug mode
func (c *Client) SetDebug(debug bool) {
	c.httpClient.SetDebug(debug)
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, query url.Values, result interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, result)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, result)
}

// Patch performs a PATCH request
func (c *Client) Patch(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, result)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string, result interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, result)
}

// do dispatches exactly one HTTP call. Every call builds a fresh
// resty.Request, so query and body never outlive the call that set them.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	token, err := c.auth.Token(ctx)
	if err != nil {
		// Credential failures reach the caller unchanged.
		return err
	}

	requestsTotal.WithLabelValues(method).Inc()

	req := c.httpClient.R().
		SetContext(ctx).
		SetHeader(HeaderAPIKey, token)

	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		requestFailuresTotal.WithLabelValues(method).Inc()
		return &errors.NetworkError{
			Operation: method,
			URL:       c.baseURL + "/" + strings.TrimPrefix(path, "/"),
			Err:       err,
		}
	}

	if err := c.handleResponse(resp); err != nil {
		requestFailuresTotal.WithLabelValues(method).Inc()
		return err
	}
	return nil
}

// handleResponse maps non-2xx responses to API errors, keeping the raw
// status and body intact for the caller
func (c *Client) handleResponse(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := resp.Body()

	var errResp types.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		message := errResp.Message
		if message == "" {
			message = errResp.Error
		}
		if message != "" {
			return errors.NewAPIError(resp.StatusCode(), message, errResp.Code, string(body))
		}
	}

	return errors.NewAPIError(resp.StatusCode(), http.StatusText(resp.StatusCode()), "", string(body))
}
