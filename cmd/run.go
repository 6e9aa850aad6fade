package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/firecrawl-cmd/internal/command"
)

var (
	runCommandName string
	runOutput      string
)

var runCmd = &cobra.Command{
	Use:          "run <url>",
	Short:        "Fetch a page and print it as a labeled text block",
	Long:         "Scrapes the URL through Firecrawl using FIRECRAWL_API_KEY from the environment. Text output goes to stdout and the section label to stderr.",
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("run"); err != nil {
			return err
		}

		h := newHandler(cfg.Firecrawl, zap.L())
		out, err := h.Run(cmd.Context(), runCommandName, args, command.EnvFromOS(os.Environ()))
		if err != nil {
			return err
		}

		return writeOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), out, runOutput)
	},
}

// writeOutput renders out as text, json or yaml.
func writeOutput(stdout, stderr io.Writer, out *command.Output, format string) error {
	switch format {
	case "text":
		if _, err := io.WriteString(stdout, out.Text); err != nil {
			return eris.Wrap(err, "write text")
		}
		for _, s := range out.Sections {
			fmt.Fprintf(stderr, "\n[%d:%d] %s\n", s.Range.Start, s.Range.End, s.Label)
		}
		return nil
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(out), "encode json")
	case "yaml":
		enc := yaml.NewEncoder(stdout)
		defer enc.Close() //nolint:errcheck
		return eris.Wrap(enc.Encode(out), "encode yaml")
	default:
		return eris.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func init() {
	runCmd.Flags().StringVar(&runCommandName, "command", command.Name, "command name to dispatch")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(runCmd)
}
