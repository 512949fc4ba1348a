package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, int64(15<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "output.csv", cfg.OutputName)
	assert.Equal(t, "etl_pipeline.py", cfg.ScriptName)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\npreviewRows: 10\nlogLevel: debug\n"), 0644))

	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvPretty, "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 10, cfg.PreviewRows)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.PrettyLogs)
	assert.Equal(t, "output.csv", cfg.OutputName)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("addr: [unterminated"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("maxUploadBytes: -1\n"), 0644))
	_, err = Load(invalid)
	assert.Error(t, err)
}

func TestApplyEnvRejectsBadBool(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(func(key string) (string, bool) {
		if key == EnvPretty {
			return "sometimes", true
		}
		return "", false
	})
	assert.Error(t, err)
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "error"
	assert.Equal(t, zerolog.ErrorLevel, NewLogger(cfg).GetLevel())

	cfg.LogLevel = "nonsense"
	assert.Equal(t, zerolog.InfoLevel, NewLogger(cfg).GetLevel())
}
