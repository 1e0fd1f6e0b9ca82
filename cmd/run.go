package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gridpath.dev/pkg/gridpath/internal/domain"
	m "gridpath.dev/pkg/gridpath/internal/model"
)

var strategyFlag string
var timeoutFlag int
var saveFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Find a path with one strategy",
		Long: `Run one search strategy on a scenario and print the path, its length,
the visitation order and the grid with the explored cells.

` + scenarioHelp,
		Args: cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindSharedFlags(cmd, map[string]string{
				strategyFlagName: strategyConfigKey,
				timeoutFlagName:  timeoutConfigKey,
				saveFlagName:     saveConfigKey,
			})
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

			return workflow.Run(cmd.Context(), domain.RunArgs{
				Scenario: m.FilePath(viper.GetString(scenarioConfigKey)),
				Strategy: strategy,
				Timeout:  searchTimeout(),
				Save:     viper.GetBool(saveConfigKey),
				Reports:  m.FilePath(viper.GetString(outputFlagName)),
				Options:  options,
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	configureStrategyFlag(cmd)
	configureTimeoutFlag(cmd)
	configureSaveFlag(cmd)
}

func configureStrategyFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&strategyFlag, strategyFlagName, "s", defaultStrategy, "search strategy: bfs, dfs, ucs, astar or ids")
}

func configureTimeoutFlag(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&timeoutFlag, timeoutFlagName, "t", defaultTimeout, "search timeout in seconds (0 disables the timeout)")
}

func configureSaveFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&saveFlag, saveFlagName, defaultSave, "save a report for each search to the output directory")
}

func searchTimeout() time.Duration {
	seconds := viper.GetInt(timeoutConfigKey)
	if seconds <= 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}
