package command

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sells-group/firecrawl-cmd/pkg/firecrawl"
	firecrawlmocks "github.com/sells-group/firecrawl-cmd/pkg/firecrawl/mocks"
)

var testEnv = []EnvVar{{Key: "HOME", Value: "/root"}, {Key: "FIRECRAWL_API_KEY", Value: "abc123"}}

// newServerHandler wires a Handler to a fake Firecrawl server and counts requests.
func newServerHandler(t *testing.T, body string, status int) (*Handler, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v1/scrape", r.URL.Path)
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	h := NewHandler(func(apiKey string) firecrawl.Client {
		return firecrawl.NewClient(apiKey, firecrawl.WithBaseURL(srv.URL))
	})
	return h, &calls
}

func TestHandlerRun_EndToEnd(t *testing.T) {
	h, calls := newServerHandler(t, `{"data":{"markdown":"Hello   \nWorld","metadata":{"title":"Example"}}}`, http.StatusOK)

	out, err := h.Run(context.Background(), "firecrawl", []string{"https://example.com"}, testEnv)
	require.NoError(t, err)

	assert.Equal(t, "URL: https://example.com\nHello\nWorld", out.Text)
	require.Len(t, out.Sections, 1)
	assert.Equal(t, "Example ( https://example.com )", out.Sections[0].Label)
	assert.Equal(t, uint32(0), out.Sections[0].Range.Start)
	assert.Equal(t, uint32(len(out.Text)), out.Sections[0].Range.End)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHandlerRun_NoArgs(t *testing.T) {
	h, calls := newServerHandler(t, `{}`, http.StatusOK)

	_, err := h.Run(context.Background(), "firecrawl", nil, testEnv)
	require.ErrorIs(t, err, ErrMissingArgument)
	assert.Contains(t, err.Error(), "specify [scrape|crawl] and where to scrape")
	assert.Zero(t, calls.Load())
}

func TestHandlerRun_UnsupportedScheme(t *testing.T) {
	h, calls := newServerHandler(t, `{}`, http.StatusOK)

	_, err := h.Run(context.Background(), "firecrawl", []string{"ftp://example.com"}, testEnv)
	require.ErrorIs(t, err, ErrUnsupportedScheme)
	assert.Zero(t, calls.Load())
}

func TestHandlerRun_MissingCredential(t *testing.T) {
	h, calls := newServerHandler(t, `{}`, http.StatusOK)

	_, err := h.Run(context.Background(), "firecrawl", []string{"https://example.com"}, []EnvVar{{Key: "HOME", Value: "/root"}})
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Zero(t, calls.Load())
}

func TestHandlerRun_DecodeFailure(t *testing.T) {
	h, calls := newServerHandler(t, `{"data":{"secret":"do-not-leak","metadata":{"title":"T"}}}`, http.StatusOK)

	out, err := h.Run(context.Background(), "firecrawl", []string{"https://example.com"}, testEnv)
	require.Error(t, err)
	assert.Nil(t, out)

	var decodeErr *firecrawl.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.NotContains(t, err.Error(), "do-not-leak")
	assert.Equal(t, int32(1), calls.Load())
}

func TestHandlerRun_NonSuccessStatus(t *testing.T) {
	h, _ := newServerHandler(t, `{"data":{"markdown":"m","metadata":{"title":"T"}}}`, http.StatusTooManyRequests)

	_, err := h.Run(context.Background(), "firecrawl", []string{"https://example.com"}, testEnv)
	var fetchErr *firecrawl.FetchError
	require.ErrorAs(t, err, &fetchErr)
	var apiErr *firecrawl.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}

func TestHandlerRun_UnknownCommand(t *testing.T) {
	h := NewHandler(func(string) firecrawl.Client {
		t.Fatal("client must not be built")
		return nil
	})

	_, err := h.Run(context.Background(), "fetch", []string{"https://example.com"}, testEnv)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestHandlerRun_WithMockClient(t *testing.T) {
	ctx := context.Background()
	client := firecrawlmocks.NewMockClient(t)
	client.EXPECT().Fetch(ctx, firecrawl.VerbScrape, "https://example.com/日本").Return(&firecrawl.ScrapeResponse{
		Data: firecrawl.PageData{
			Markdown: "こんにちは  \n  \n世界",
			Metadata: firecrawl.Metadata{Title: "挨拶"},
		},
	}, nil)

	var gotKey string
	h := NewHandler(func(apiKey string) firecrawl.Client {
		gotKey = apiKey
		return client
	})

	out, err := h.Run(ctx, "firecrawl", []string{"https://example.com/日本"}, testEnv)
	require.NoError(t, err)
	assert.Equal(t, "abc123", gotKey)
	assert.Equal(t, "URL: https://example.com/日本\nこんにちは\n世界", out.Text)
	assert.Equal(t, "挨拶 ( https://example.com/日本 )", out.Sections[0].Label)
	assert.Equal(t, uint32(len(out.Text)), out.Sections[0].Range.End)
}

func TestHandlerRun_LogsWithoutCredential(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	client := firecrawlmocks.NewMockClient(t)
	client.EXPECT().Fetch(mock.Anything, firecrawl.VerbScrape, "https://example.com").
		Return(nil, &firecrawl.FetchError{Err: errors.New("connection refused")})

	h := NewHandler(func(string) firecrawl.Client { return client }, WithLogger(zap.New(core)))

	_, err := h.Run(context.Background(), "firecrawl", []string{"https://example.com"}, testEnv)
	require.Error(t, err)
	assert.Equal(t, "failed to fetch: connection refused", err.Error())

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "firecrawl: request failed", entries[0].Message)
	for _, f := range entries[0].Context {
		assert.NotEqual(t, "abc123", f.String)
	}
}

func TestHandlerComplete(t *testing.T) {
	h := NewHandler(nil)

	got, err := h.Complete("firecrawl", []string{"htt"})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	_, err = h.Complete("other", nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), `"other"`)
}
