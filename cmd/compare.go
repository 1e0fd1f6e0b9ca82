package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gridpath.dev/pkg/gridpath/internal/domain"
	m "gridpath.dev/pkg/gridpath/internal/model"
)

var parallelFlag int
var strategiesFlag []string

// compareCmd represents the compare command.
var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several strategies on the same scenario",
		Long: `Run several search strategies concurrently on one scenario and print a
table with path length, visited cells and elapsed time per strategy.

` + scenarioHelp,
		Args: cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindSharedFlags(cmd, map[string]string{
				timeoutFlagName: timeoutConfigKey,
				saveFlagName:    saveConfigKey,
			})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			strategies, err := m.ParseStrategies(viper.GetStringSlice(strategiesConfigKey))
			if err != nil {
				return err
			}

			options, err := searchOptions()
			if err != nil {
				return err
			}

			return workflow.Compare(cmd.Context(), domain.CompareArgs{
				Scenario:   m.FilePath(viper.GetString(scenarioConfigKey)),
				Strategies: strategies,
				Parallel:   viper.GetInt(parallelConfigKey),
				Timeout:    searchTimeout(),
				Save:       viper.GetBool(saveConfigKey),
				Reports:    m.FilePath(viper.GetString(outputFlagName)),
				Options:    options,
			})
		},
	}

	configureCompareFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func configureCompareFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", defaultParallel, "maximum concurrent searches (0 runs every strategy at once)")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().StringSliceVar(&strategiesFlag, strategiesFlagName, nil, "strategies to compare (default all)")
	bindFlagToConfig(cmd.Flags().Lookup(strategiesFlagName), strategiesConfigKey)

	configureTimeoutFlag(cmd)
	configureSaveFlag(cmd)
}
