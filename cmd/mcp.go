package main

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/firecrawl-cmd/internal/command"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the command as an MCP tool over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("mcp"); err != nil {
			return err
		}

		h := newHandler(cfg.Firecrawl, zap.L())
		s := newMCPServer(h, command.EnvFromOS(os.Environ()))

		zap.L().Info("starting mcp server on stdio")
		if err := server.ServeStdio(s); err != nil {
			return eris.Wrap(err, "mcp serve")
		}
		return nil
	},
}

func newMCPServer(h *command.Handler, env []command.EnvVar) *server.MCPServer {
	s := server.NewMCPServer(
		"firecrawl-cmd",
		version,
		server.WithToolCapabilities(false),
	)

	tool := mcp.NewTool(command.Name,
		mcp.WithDescription("Fetch a web page through Firecrawl and return its content as cleaned markdown, prefixed with a URL: header line."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The http(s) URL of the page to scrape"),
		),
	)
	s.AddTool(tool, handleFirecrawlTool(h, env))

	return s
}

func handleFirecrawlTool(h *command.Handler, env []command.EnvVar) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError("url is required"), nil
		}

		out, err := h.Run(ctx, command.Name, []string{url}, env)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out.Text), nil
	}
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
