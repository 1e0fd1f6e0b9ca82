package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "gridpath", configBaseName)
	assert.Equal(t, "gridpath.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "search.strategy", strategyConfigKey)
	assert.Equal(t, "search.timeout", timeoutConfigKey)
	assert.Equal(t, "compare.parallel", parallelConfigKey)
	assert.Equal(t, "compare.strategies", strategiesConfigKey)
	assert.Equal(t, ".gridpath-reports", defaultReportsDir)
	assert.Equal(t, "astar", defaultStrategy)
	assert.Equal(t, "GRIDPATH", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, defaultLogFilename, viper.GetString(logFilenameKey))
	assert.Equal(t, defaultLogMaxSize, viper.GetInt(logMaxSizeKey))
	assert.Equal(t, currentConfigVersion, viper.GetInt(configVersionKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	configureLogger(filepath.Join(t.TempDir(), "gridpath.log"), true)

	assert.NotNil(t, globalLogger)
	assert.Same(t, globalLogger, slog.Default())
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))

	configureLogger(filepath.Join(t.TempDir(), "gridpath.log"), false)
	assert.False(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
}
