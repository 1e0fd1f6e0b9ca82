package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gridpath.dev/pkg/gridpath/internal/domain"
	m "gridpath.dev/pkg/gridpath/internal/model"
)

func TestViewCmd_ReportsDir(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  string
		want m.FilePath
	}{
		{
			name: "default reports dir",
			args: []string{"view"},
			want: m.FilePath(defaultReportsDir),
		},
		{
			name: "environment overrides default",
			args: []string{"view"},
			env:  "env-reports",
			want: m.FilePath("env-reports"),
		},
		{
			name: "short output flag beside a scenario flag",
			args: []string{"view", "-o", "runs/maze", "-f", "maze.hcl"},
			env:  "env-reports",
			want: m.FilePath("runs/maze"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv(envPrefix+"_OUTPUT", tt.env)
			}

			cmd, mockWorkflow := withMockWorkflow(t, newViewCmd())

			mockWorkflow.EXPECT().View(mock.Anything, domain.ViewArgs{Reports: tt.want}).Return(nil).Once()

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestViewCmd_PropagatesWorkflowError(t *testing.T) {
	cmd, mockWorkflow := withMockWorkflow(t, newViewCmd())

	loadErr := errors.New("load reports: permission denied")
	mockWorkflow.EXPECT().View(mock.Anything, mock.Anything).Return(loadErr).Once()

	cmd.SetArgs([]string{"view"})
	require.ErrorIs(t, cmd.Execute(), loadErr)
}

func TestViewCmd_RejectsPositionalArgs(t *testing.T) {
	cmd, _ := withMockWorkflow(t, newViewCmd())

	cmd.SetArgs([]string{"view", "./custom-reports"})
	require.Error(t, cmd.Execute())
}
