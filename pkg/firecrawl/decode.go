package firecrawl

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rotisserie/eris"
)

// ScrapeResponse is the part of the POST /v1/scrape reply this package uses.
// Everything else Firecrawl returns is ignored.
type ScrapeResponse struct {
	Data PageData `json:"data"`
}

// PageData holds the scraped page content.
type PageData struct {
	Markdown string   `json:"markdown"`
	Metadata Metadata `json:"metadata"`
}

// Metadata holds page metadata.
type Metadata struct {
	Title string `json:"title"`
}

// wireResponse uses pointers so absent fields can be told apart from empty ones.
type wireResponse struct {
	Data *struct {
		Markdown *string `json:"markdown"`
		Metadata *struct {
			Title *string `json:"title"`
		} `json:"metadata"`
	} `json:"data"`
}

// Decode turns the result of an HTTP round trip into a ScrapeResponse. It is
// shaped to take http.Client.Do's return values directly.
func Decode(resp *http.Response, err error) (*ScrapeResponse, error) {
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Err: eris.Wrap(err, "read response body")}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Err: &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}}
	}

	return DecodeBody(body)
}

// DecodeBody parses a scrape response body, requiring data.markdown and
// data.metadata.title.
func DecodeBody(body []byte) (*ScrapeResponse, error) {
	var w wireResponse
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, &DecodeError{Err: err}
	}

	switch {
	case w.Data == nil:
		return nil, &DecodeError{Err: eris.New(`missing field "data"`)}
	case w.Data.Markdown == nil:
		return nil, &DecodeError{Err: eris.New(`missing field "data.markdown"`)}
	case w.Data.Metadata == nil:
		return nil, &DecodeError{Err: eris.New(`missing field "data.metadata"`)}
	case w.Data.Metadata.Title == nil:
		return nil, &DecodeError{Err: eris.New(`missing field "data.metadata.title"`)}
	}

	return &ScrapeResponse{
		Data: PageData{
			Markdown: *w.Data.Markdown,
			Metadata: Metadata{Title: *w.Data.Metadata.Title},
		},
	}, nil
}
