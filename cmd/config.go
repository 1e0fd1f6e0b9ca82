package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "gridpath"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName     = "output"
	scenarioFlagName   = "scenario"
	strategyFlagName   = "strategy"
	timeoutFlagName    = "timeout"
	saveFlagName       = "save"
	movesFlagName      = "moves"
	exhaustiveFlagName = "exhaustive"
	parallelFlagName   = "parallel"
	strategiesFlagName = "strategies"
	verboseFlagName    = "verbose"
	logFileFlagName    = "log-file"

	scenarioConfigKey   = "search.scenario"
	strategyConfigKey   = "search.strategy"
	timeoutConfigKey    = "search.timeout"
	saveConfigKey       = "search.save"
	movesConfigKey      = "search.moves"
	exhaustiveConfigKey = "search.exhaustive"
	parallelConfigKey   = "compare.parallel"
	strategiesConfigKey = "compare.strategies"

	defaultReportsDir = ".gridpath-reports"
	defaultStrategy   = "astar"
	defaultTimeout    = 0
	defaultSave       = false
	defaultExhaustive = false
	defaultParallel   = 0

	envPrefix = "GRIDPATH"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".gridpath.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	initConfig()
}

// initConfig registers the config file, environment binding and defaults on
// the global viper instance, then reads gridpath.yaml when present.
func initConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(scenarioConfigKey, "")
	viper.SetDefault(strategyConfigKey, defaultStrategy)
	viper.SetDefault(timeoutConfigKey, defaultTimeout)
	viper.SetDefault(saveConfigKey, defaultSave)
	viper.SetDefault(movesConfigKey, []string{})
	viper.SetDefault(exhaustiveConfigKey, defaultExhaustive)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(strategiesConfigKey, []string{})

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs a global slog logger writing to a rotating file.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: verbose,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
