package command

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/firecrawl-cmd/pkg/firecrawl"
)

// ClientFactory builds a Firecrawl client for one invocation's API key.
type ClientFactory func(apiKey string) firecrawl.Client

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) HandlerOption {
	return func(h *Handler) {
		h.log = l
	}
}

// Handler runs the firecrawl command. Hosts construct one and call it per
// invocation; it holds no per-call state and is safe for concurrent use.
type Handler struct {
	newClient ClientFactory
	log       *zap.Logger
}

// NewHandler creates a Handler that talks to Firecrawl through clients from factory.
func NewHandler(factory ClientFactory, opts ...HandlerOption) *Handler {
	h := &Handler{
		newClient: factory,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes one invocation. Validation and credential failures return
// before any request is made.
func (h *Handler) Run(ctx context.Context, name string, args []string, env []EnvVar) (*Output, error) {
	inv, err := ParseArgs(name, args)
	if err != nil {
		return nil, err
	}

	apiKey, err := ResolveCredential(env)
	if err != nil {
		return nil, err
	}

	log := h.log.With(
		zap.String("command", name),
		zap.Stringer("verb", inv.Verb),
		zap.String("url", inv.URL),
	)

	start := time.Now()
	resp, err := h.newClient(apiKey).Fetch(ctx, inv.Verb, inv.URL)
	if err != nil {
		log.Warn("firecrawl: request failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
		return nil, err
	}

	text := Normalize(resp.Data.Markdown, inv.URL)
	out := Assemble(text, resp.Data.Metadata.Title, inv.URL)

	log.Debug("firecrawl: page fetched",
		zap.Duration("duration", time.Since(start)),
		zap.Int("bytes", len(out.Text)),
		zap.String("title", resp.Data.Metadata.Title),
	)

	return &out, nil
}

// Complete returns argument completions. The command takes a free-form URL,
// so there are none.
func (h *Handler) Complete(name string, _ []string) ([]string, error) {
	if name != Name {
		return nil, eris.Wrapf(ErrUnknownCommand, "command %q", name)
	}
	return []string{}, nil
}
