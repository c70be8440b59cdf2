// Package cogmem provides a client for the CogmemAi memory service REST API.
//
// Example usage:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/cogmemai/cogmem-go/pkg/cogmem"
//	)
//
//	func main() {
//	    client, err := cogmem.New("cm_your_api_key_here")
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    ctx := context.Background()
//
//	    // Save a memory
//	    client.SaveMemory(ctx, "This project uses React with TypeScript", &cogmem.SaveMemoryOptions{
//	        MemoryType: "architecture",
//	        Category:   "frontend",
//	        Importance: 8,
//	    })
//
//	    // Search memories
//	    results, _ := client.RecallMemories(ctx, "what framework does this project use?", nil)
//	    fmt.Println(results["memories"])
//	}
package cogmem

import (
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the hosted CogmemAi service root.
	DefaultBaseURL = "https://hifriendbot.com/wp-json/hifriendbot/v1"

	// DefaultTimeout applies to every request unless overridden with WithTimeout.
	DefaultTimeout = 30 * time.Second

	// apiKeyPrefix is the required prefix for CogmemAi API keys.
	apiKeyPrefix = "cm_"

	// servicePath is the fixed path segment between the base URL and every endpoint.
	servicePath = "/cogmemai/"
)

// Logger receives debug lines for each request the client makes.
// *logging.Logger from pkg/logging satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// Client is a client for the CogmemAi REST API.
//
// All methods issue exactly one blocking HTTP round trip and perform no
// retries or caching. A Client is safe for concurrent use; its configuration
// is immutable after New returns.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	authHeader string
	logger     Logger
}

// Option is a function that configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL. A trailing slash is stripped.
// This enables pointing the client at a self-hosted or staging deployment.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the request timeout applied to every call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
// The caller is responsible for configuring its timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger attaches a debug logger. The client logs request method, path,
// and response status. It never logs the API key.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a CogmemAi client with the given API key.
//
// If apiKey is empty, it will attempt to read from the COGMEM_API_KEY
// environment variable. Keys must start with "cm_"; anything else fails with
// ErrInvalidAPIKey before any request is made.
//
// If the base URL is not provided via WithBaseURL, it will check the
// COGMEM_BASE_URL environment variable before falling back to the hosted
// service.
//
// Example:
//
//	// Hosted service
//	client, _ := cogmem.New("cm_...")
//
//	// Self-hosted deployment with a shorter timeout
//	client, _ := cogmem.New("cm_...",
//	    cogmem.WithBaseURL("https://memory.internal.example.com/api"),
//	    cogmem.WithTimeout(10*time.Second))
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("COGMEM_API_KEY")
	}

	if !strings.HasPrefix(apiKey, apiKeyPrefix) {
		return nil, ErrInvalidAPIKey
	}

	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	// If the base URL wasn't set by options, check the environment variable
	if c.baseURL == DefaultBaseURL {
		if envBaseURL := os.Getenv("COGMEM_BASE_URL"); envBaseURL != "" {
			c.baseURL = strings.TrimRight(envBaseURL, "/")
		}
	}

	c.authHeader = "Bearer " + c.apiKey

	return c, nil
}

// BaseURL returns the configured base URL with any trailing slash stripped.
func (c *Client) BaseURL() string {
	return c.baseURL
}
