package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/rotisserie/eris"
)

// DefaultBaseURL is the Firecrawl API host. Endpoint paths carry the version.
const DefaultBaseURL = "https://api.firecrawl.dev"

// Verb selects which Firecrawl operation a request targets.
type Verb int

const (
	// VerbScrape fetches a single page.
	VerbScrape Verb = iota + 1
	// VerbCrawl starts a multi-page crawl. It has an endpoint but no
	// argument form selects it yet.
	VerbCrawl
)

func (v Verb) String() string {
	switch v {
	case VerbScrape:
		return "scrape"
	case VerbCrawl:
		return "crawl"
	default:
		return "unknown"
	}
}

// endpoints maps each verb to its API path. Adding a verb is one entry here.
var endpoints = map[Verb]string{
	VerbScrape: "/v1/scrape",
	VerbCrawl:  "/v1/crawl",
}

// Endpoint returns the API path for v.
func Endpoint(v Verb) (string, error) {
	path, ok := endpoints[v]
	if !ok {
		return "", eris.Wrapf(ErrInvalidVerb, "verb %d", int(v))
	}
	return path, nil
}

// ScrapeRequest is the body for POST /v1/scrape and /v1/crawl.
type ScrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

// NewRequest builds the authenticated POST for verb against baseURL.
func NewRequest(ctx context.Context, baseURL string, verb Verb, targetURL, apiKey string) (*http.Request, error) {
	path, err := Endpoint(verb)
	if err != nil {
		return nil, err
	}

	buf, err := json.Marshal(ScrapeRequest{
		URL:     targetURL,
		Formats: []string{"markdown"},
	})
	if err != nil {
		return nil, eris.Wrap(err, "marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, eris.Wrap(err, "create request")
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
