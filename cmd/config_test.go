package cmd

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"harness.dev/pkg/harness/internal/domain"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "harness", configBaseName)
	assert.Equal(t, "harness.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "harness-output", defaultOutputDir)
	assert.Equal(t, "HARNESS", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestRunConfig_Defaults(t *testing.T) {
	defaults := domain.DefaultRunConfig()
	cfg := runConfig()

	assert.Equal(t, defaults.CrashPollInterval, cfg.CrashPollInterval)
	assert.Equal(t, defaults.CrashGrace, cfg.CrashGrace)
	assert.Equal(t, defaults.LogPumpInterval, cfg.LogPumpInterval)
	assert.Equal(t, defaults.FlushTimeout, cfg.FlushTimeout)
	assert.Equal(t, defaults.ResultDrainTimeout, cfg.ResultDrainTimeout)
	assert.Equal(t, defaults.XMLFormat, cfg.XMLFormat)
}

func TestRunConfig_Overrides(t *testing.T) {
	t.Cleanup(func() {
		viper.Set(appleCrashGraceKey, nil)
		viper.Set(appleResultDrainKey, nil)
		viper.Set(appleKillAllKey, nil)
		viper.Set(appleResetSimulatorKey, nil)
	})

	viper.Set(appleCrashGraceKey, "250ms")
	viper.Set(appleResultDrainKey, "30s")
	viper.Set(appleResetSimulatorKey, true)

	cfg := runConfig()
	assert.Equal(t, 250*time.Millisecond, cfg.CrashGrace)
	assert.Equal(t, 30*time.Second, cfg.ResultDrainTimeout)
	assert.Equal(t, domain.CleanupReset, cfg.Cleanup)

	viper.Set(appleKillAllKey, true)
	assert.Equal(t, domain.CleanupKillAll, runConfig().Cleanup)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}
