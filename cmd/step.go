package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gridpath.dev/pkg/gridpath/internal/domain"
	m "gridpath.dev/pkg/gridpath/internal/model"
)

// stepCmd represents the step command.
var stepCmd = newStepCmd()

func newStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Watch a search expand one cell at a time",
		Long: `Step through a search one expansion at a time. In a terminal this opens an
interactive viewer (n to step, p to play, f to finish, q to quit); otherwise
every expansion is printed on its own line.

` + scenarioHelp,
		Args: cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindSharedFlags(cmd, map[string]string{strategyFlagName: strategyConfigKey})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			strategy, err := m.ParseStrategy(viper.GetString(strategyConfigKey))
			if err != nil {
				return err
			}

			options, err := searchOptions()
			if err != nil {
				return err
			}

			return workflow.Step(cmd.Context(), domain.StepArgs{
				Scenario: m.FilePath(viper.GetString(scenarioConfigKey)),
				Strategy: strategy,
				Options:  options,
			})
		},
	}

	configureStrategyFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(stepCmd)
}
