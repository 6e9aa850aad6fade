package firecrawl

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// ErrInvalidVerb is returned for a verb with no endpoint.
var ErrInvalidVerb = eris.New("invalid verb")

// FetchError means the request never produced a usable response: the
// transport failed, the body could not be read, or the status was non-2xx.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return "failed to fetch: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError means the response body did not match the scrape shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "failed to deserialize response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// APIError is returned when Firecrawl responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("firecrawl: HTTP %d: %s", e.StatusCode, e.Body)
}
