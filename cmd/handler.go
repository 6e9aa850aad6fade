package main

import (
	"go.uber.org/zap"

	"github.com/sells-group/firecrawl-cmd/internal/command"
	"github.com/sells-group/firecrawl-cmd/internal/config"
	"github.com/sells-group/firecrawl-cmd/pkg/firecrawl"
)

// newHandler builds the command handler every host shares.
func newHandler(fc config.FirecrawlConfig, log *zap.Logger) *command.Handler {
	return command.NewHandler(func(apiKey string) firecrawl.Client {
		return firecrawl.NewClient(apiKey,
			firecrawl.WithBaseURL(fc.BaseURL),
			firecrawl.WithTimeout(fc.Timeout()),
		)
	}, command.WithLogger(log))
}
