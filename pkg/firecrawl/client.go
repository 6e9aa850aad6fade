package firecrawl

import (
	"context"
	"net/http"
	"time"
)

// Client defines the Firecrawl operations used by the command.
type Client interface {
	Fetch(ctx context.Context, verb Verb, targetURL string) (*ScrapeResponse, error)
}

// Option configures the httpClient.
type Option func(*httpClient)

// WithBaseURL overrides the default base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithTimeout sets a whole-request timeout on the underlying *http.Client.
// Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.http.Timeout = d
	}
}

// httpClient implements Client using net/http.
type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a new Firecrawl client. Redirects are followed using the
// net/http default policy.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		http: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) Fetch(ctx context.Context, verb Verb, targetURL string) (*ScrapeResponse, error) {
	req, err := NewRequest(ctx, c.baseURL, verb, targetURL, c.apiKey)
	if err != nil {
		return nil, err
	}
	return Decode(c.http.Do(req))
}
