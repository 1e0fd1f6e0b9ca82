// Package cmd provides the root command and CLI setup for gridpath.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gridpath.dev/pkg/gridpath/internal/adapter"
	"gridpath.dev/pkg/gridpath/internal/controller"
	"gridpath.dev/pkg/gridpath/internal/domain"
	m "gridpath.dev/pkg/gridpath/internal/model"
)

var scenarioStore adapter.ScenarioStore
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

var scenarioFlag string
var movesFlag []string
var exhaustiveFlag bool
var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	scenarioStore = adapter.NewLocalScenarioStore()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(scenarioStore, reportStore, ui)
}

const scenarioHelp = `Scenarios are YAML (.yaml, .yml) or HCL (.hcl) files describing a grid,
a start cell and a goal cell. Without --scenario the built-in 7x10 example
is used.`

const rootLongDescription = `gridpath finds paths on 2D occupancy grids with breadth-first,
depth-first, uniform-cost, A* and iterative deepening search, and shows the
order in which each strategy explores the grid.

` + scenarioHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "gridpath",
		Short:         "Grid pathfinding with classic search strategies",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"directory for search reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVarP(&scenarioFlag, scenarioFlagName, "f", viper.GetString(scenarioConfigKey), "scenario file (.yaml, .yml or .hcl)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(scenarioFlagName), scenarioConfigKey)

	cmd.PersistentFlags().StringSliceVar(&movesFlag, movesFlagName, viper.GetStringSlice(movesConfigKey), "neighbor order, e.g. down,up,right,left (default right,left,down,up)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(movesFlagName), movesConfigKey)

	cmd.PersistentFlags().BoolVar(&exhaustiveFlag, exhaustiveFlagName, viper.GetBool(exhaustiveConfigKey), "disable the IDS plateau cutoff and try every depth limit")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(exhaustiveFlagName), exhaustiveConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// bindSharedFlags binds flags whose config keys several commands define.
// It runs when a command executes so that command's flags take effect.
func bindSharedFlags(cmd *cobra.Command, keys map[string]string) {
	for flagName, key := range keys {
		bindFlagToConfig(cmd.Flags().Lookup(flagName), key)
	}
}

// searchOptions builds engine options from the move order and IDS settings.
func searchOptions() ([]domain.Option, error) {
	var options []domain.Option

	if names := viper.GetStringSlice(movesConfigKey); len(names) > 0 {
		moves, err := m.ParseMoves(names)
		if err != nil {
			return nil, err
		}

		options = append(options, domain.WithMoveOrder(moves))
	}

	if viper.GetBool(exhaustiveConfigKey) {
		options = append(options, domain.WithPlateauCutoff(false))
	}

	return options, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
