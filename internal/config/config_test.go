package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	t.Setenv(EnvRecords, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv(EnvRecords, "")
	path := filepath.Join(t.TempDir(), "lectures.yaml")
	content := "numbers: [3, 1, 2]\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, cfg.Numbers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, Default().RecordsPath, cfg.RecordsPath, "unset keys keep defaults")
}

func TestLoad_EnvOverridesRecords(t *testing.T) {
	t.Setenv(EnvRecords, "/tmp/other.csv")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.csv", cfg.RecordsPath)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("numbers: [oops\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}
