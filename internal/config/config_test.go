package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magiscan/magiscan/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// Run from an empty directory so a stray magiscan.yaml in the
	// repository cannot leak into the test.
	chdir(t, t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "8KB", cfg.MaxReadBytes)
	require.Equal(t, "", cfg.DatabaseFile)
	require.False(t, cfg.NoColor)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "magiscan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"log_level: debug\nmax_read_bytes: 16KB\ndatabase_file: /tmp/sigs.json\nno_color: true\n",
	), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "16KB", cfg.MaxReadBytes)
	require.Equal(t, "/tmp/sigs.json", cfg.DatabaseFile)
	require.True(t, cfg.NoColor)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_SearchedFileFound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "magiscan.yaml"), []byte(
		"log_level: warn\n",
	), 0644))
	chdir(t, dir)

	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "warn", cfg.LogLevel)
	// Keys absent from the file keep their defaults.
	require.Equal(t, "8KB", cfg.MaxReadBytes)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MAGISCAN_LOG_LEVEL", "error")

	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "error", cfg.LogLevel)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
