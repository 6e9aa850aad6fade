package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/firecrawl-cmd/internal/command"
)

var completeCommandName string

var completeCmd = &cobra.Command{
	Use:          "complete [partial-args...]",
	Short:        "List argument completions for the command",
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		h := newHandler(cfg.Firecrawl, zap.L())
		completions, err := h.Complete(completeCommandName, args)
		if err != nil {
			return err
		}
		for _, c := range completions {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

func init() {
	completeCmd.Flags().StringVar(&completeCommandName, "command", command.Name, "command name to complete")
	rootCmd.AddCommand(completeCmd)
}
