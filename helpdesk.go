// Package helpdesk provides a Go SDK for the helpdesk REST API.
//
// The SDK covers request (ticket) management, teams, users, tags, and
// request types. Every operation issues exactly one HTTP call and returns
// the decoded JSON response or the propagated error; there is no retry,
// caching, or response validation layer.
//
// Basic usage:
//
//	client := helpdesk.NewClientWithToken("your-api-token")
//	requests, err := client.Requests.List(ctx, nil)
//
// Authentication methods:
//
//	// Literal API token
//	client := helpdesk.NewClientWithToken(token)
//
//	// Lazy resolution from a secret store (resolved once, on first call)
//	client := helpdesk.NewClientWithSecret(store, "path/to/secret")
//
//	// Custom configuration
//	client := helpdesk.NewClient(&helpdesk.Config{
//		BaseURL: baseURL,
//		Auth:    helpdesk.NewStaticToken(token),
//	})
package helpdesk

import (
	"github.com/helpdesk-go/helpdesk/auth"
	"github.com/helpdesk-go/helpdesk/client"
)

// Client represents the helpdesk API client
type Client = client.Client

// Config represents client configuration
type Config = client.Config

// NewClient creates a new helpdesk API client with custom configuration
func NewClient(config *Config) *Client {
	return client.NewClient(config)
}

// NewClientWithToken creates a new client with a literal API token
func NewClientWithToken(token string) *Client {
	return client.NewClientWithToken(token)
}

// NewClientWithSecret creates a new client that resolves its token lazily
// from the given secret store path
func NewClientWithSecret(store auth.SecretStore, path string) *Client {
	return client.NewClientWithSecret(store, path)
}

// Authentication helpers
var (
	// NewStaticToken creates an authenticator around a literal API token
	NewStaticToken = auth.NewStaticToken

	// NewSecretToken creates an authenticator that resolves the token from
	// a secret store on first use
	NewSecretToken = auth.NewSecretToken
)

// DefaultBaseURL is the production API host including the version prefix
const DefaultBaseURL = client.DefaultBaseURL

// Version information
const (
	// Version is the current SDK version
	Version = "1.0.0"

	// UserAgent is the default user agent string
	UserAgent = "helpdesk-go-sdk/" + Version
)
