package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"harness.dev/pkg/harness/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "harness"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName        = "output"
	timeoutFlagName       = "timeout"
	launchTimeoutFlagName = "launch-timeout"
	transportFlagName     = "transport"
	verboseFlagName       = "verbose"
	logFileFlagName       = "log-file"

	launchTimeoutKey = "launch_timeout"

	xcodeFlagName          = "xcode"
	mlaunchFlagName        = "mlaunch"
	resetSimulatorFlagName = "reset-simulator"
	killAllFlagName        = "kill-all-simulators"

	appleXcodeKey             = "apple.xcode"
	appleMlaunchKey           = "apple.mlaunch"
	appleResetSimulatorKey    = "apple.reset_simulator"
	appleKillAllKey           = "apple.kill_all_simulators"
	appleCrashPollIntervalKey = "apple.crash_poll_interval"
	appleCrashGraceKey        = "apple.crash_grace"
	appleLogPumpIntervalKey   = "apple.log_pump_interval"
	appleResultDrainKey       = "apple.result_drain_timeout"
	appleXMLOutputKey         = "apple.xml_output"
	appleXMLFormatKey         = "apple.xml_format"
	appleRetryCountKey        = "apple.retry_count"

	adbFlagName        = "adb"
	deviceArchFlagName = "device-arch"
	apiVersionFlagName = "api-version"
	deviceIDFlagName   = "device-id"

	androidAdbKey        = "android.adb"
	androidArchKey       = "android.arch"
	androidAPIVersionKey = "android.api_version"
	androidDeviceIDKey   = "android.device_id"

	browserFlagName      = "browser"
	errorPatternFlagName = "error-pattern"

	wasmBrowserKey       = "wasm.browser"
	wasmErrorPatternsKey = "wasm.error_patterns"
	wasmFlushTimeoutKey  = "wasm.flush_timeout"

	defaultOutputDir = "harness-output"

	envPrefix = "HARNESS"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".harness.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	defaults := domain.DefaultRunConfig()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultOutputDir)
	viper.SetDefault(timeoutFlagName, defaults.Timeout.String())
	viper.SetDefault(launchTimeoutKey, defaults.LaunchTimeout.String())
	viper.SetDefault(transportFlagName, string(defaults.Transport))

	viper.SetDefault(appleXcodeKey, "")
	viper.SetDefault(appleMlaunchKey, "mlaunch")
	viper.SetDefault(appleResetSimulatorKey, false)
	viper.SetDefault(appleKillAllKey, false)
	viper.SetDefault(appleCrashPollIntervalKey, defaults.CrashPollInterval.String())
	viper.SetDefault(appleCrashGraceKey, defaults.CrashGrace.String())
	viper.SetDefault(appleLogPumpIntervalKey, defaults.LogPumpInterval.String())
	viper.SetDefault(appleResultDrainKey, defaults.ResultDrainTimeout.String())
	viper.SetDefault(appleXMLOutputKey, defaults.XMLOutput)
	viper.SetDefault(appleXMLFormatKey, defaults.XMLFormat)
	viper.SetDefault(appleRetryCountKey, 0)

	viper.SetDefault(androidAdbKey, "adb")
	viper.SetDefault(androidArchKey, "")
	viper.SetDefault(androidAPIVersionKey, 0)
	viper.SetDefault(androidDeviceIDKey, "")

	viper.SetDefault(wasmBrowserKey, "google-chrome")
	viper.SetDefault(wasmErrorPatternsKey, []string{})
	viper.SetDefault(wasmFlushTimeoutKey, defaults.FlushTimeout.String())

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

// runConfig builds the per-run settings from the merged flags, environment and config file.
func runConfig() domain.RunConfig {
	cfg := domain.DefaultRunConfig()

	cfg.Timeout = viper.GetDuration(timeoutFlagName)
	cfg.LaunchTimeout = viper.GetDuration(launchTimeoutKey)
	cfg.CrashPollInterval = viper.GetDuration(appleCrashPollIntervalKey)
	cfg.CrashGrace = viper.GetDuration(appleCrashGraceKey)
	cfg.LogPumpInterval = viper.GetDuration(appleLogPumpIntervalKey)
	cfg.FlushTimeout = viper.GetDuration(wasmFlushTimeoutKey)
	cfg.ResultDrainTimeout = viper.GetDuration(appleResultDrainKey)
	cfg.Transport = domain.TransportPolicy(strings.ToLower(viper.GetString(transportFlagName)))
	cfg.XMLOutput = viper.GetBool(appleXMLOutputKey)
	cfg.XMLFormat = viper.GetString(appleXMLFormatKey)

	switch {
	case viper.GetBool(appleKillAllKey):
		cfg.Cleanup = domain.CleanupKillAll
	case viper.GetBool(appleResetSimulatorKey):
		cfg.Cleanup = domain.CleanupReset
	}

	return cfg
}

// runArgs returns the output directory and settings shared by every run.
func runArgs() domain.RunArgs {
	return domain.RunArgs{
		OutputDir: viper.GetString(outputFlagName),
		Config:    runConfig(),
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

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
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
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
