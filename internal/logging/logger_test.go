package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	require.NoError(t, InitializeWithOptions(Options{}))
	assert.False(t, GetLogger().Core().Enabled(zapcore.ErrorLevel))
}

func TestInitialize_EnvLevel(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	require.NoError(t, InitializeWithOptions(Options{File: filepath.Join(t.TempDir(), "env.log")}))
	t.Cleanup(func() { SetLogger(nil) })

	core := GetLogger().Core()
	assert.True(t, core.Enabled(zapcore.WarnLevel))
	assert.False(t, core.Enabled(zapcore.InfoLevel))
}

func TestInitializeWithOptions_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onboard.log")
	require.NoError(t, InitializeWithOptions(Options{Level: "debug", File: path}))
	t.Cleanup(func() { SetLogger(nil) })

	Info("hello file")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
	assert.Contains(t, string(data), "session")
}

func TestInitializeWithOptions_CreatesLogDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", DefaultLogFile)
	require.NoError(t, InitializeWithOptions(Options{Level: "info", File: path}))
	t.Cleanup(func() { SetLogger(nil) })

	Warn("nested")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "nested")
}

func TestBuildConfig_Outputs(t *testing.T) {
	tests := []struct {
		name string
		file string
		want []string
	}{
		{"Stderr without a file", "", []string{"stderr"}},
		{"File receives error output too", "/tmp/onboard.log", []string{"/tmp/onboard.log"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := buildConfig(zapcore.InfoLevel, tt.file)
			assert.Equal(t, tt.want, cfg.OutputPaths)
			assert.Equal(t, tt.want, cfg.ErrorOutputPaths)
		})
	}
}

func TestInitialize_UnknownLevelFallsBackToInfo(t *testing.T) {
	require.NoError(t, InitializeWithOptions(Options{Level: "chatty", File: filepath.Join(t.TempDir(), "x.log")}))
	t.Cleanup(func() { SetLogger(nil) })
	assert.True(t, GetLogger().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, GetLogger().Core().Enabled(zapcore.DebugLevel))
}

func TestHelpers(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	LogStepTransition(1, 2, "advance")
	LogValidation(2, 3)
	LogPersistence("file", "onboardingData", "save", 128)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, "Wizard step transition", entries[0].Message)
	assert.Equal(t, int64(2), entries[0].ContextMap()["to_step"])
	assert.Equal(t, "advance", entries[0].ContextMap()["action"])

	assert.Equal(t, int64(3), entries[1].ContextMap()["failures"])

	assert.Equal(t, "onboardingData", entries[2].ContextMap()["key"])
	assert.Equal(t, int64(128), entries[2].ContextMap()["bytes"])
}
