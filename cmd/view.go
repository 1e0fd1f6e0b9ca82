package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gridpath.dev/pkg/gridpath/internal/domain"
	m "gridpath.dev/pkg/gridpath/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved search reports",
		Long:  "View search reports saved with --save from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.FilePath(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
