package cmd

import (
	"github.com/spf13/cobra"
)

// strategiesCmd represents the strategies command.
var strategiesCmd = newStrategiesCmd()

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "strategies",
		Aliases: []string{"list"},
		Short:   "List search strategies",
		Long:    "List the available strategies with their frontier, heuristic and neighbor order.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Strategies(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}
