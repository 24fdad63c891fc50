package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"KEEPS_CONFIG", "KEEPS_DATA_DIR", "KEEPS_BACKEND", "KEEPS_ORIGIN", "KEEPS_THEME", "KEEPS_LOG_LEVEL", "KEEPS_LOG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".keeps"), cfg.DataDir)
	assert.Equal(t, "json", cfg.Backend)
	assert.Equal(t, "http://localhost:3000", cfg.Origin)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(home, ".keeps", "keeps.log"), cfg.Logging.File)
}

func TestLoadFileThenEnv(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".keeps")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
backend: sqlite
origin: https://keeps.example
theme: neon
logging:
  level: debug
`), 0o600))
	t.Setenv("KEEPS_ORIGIN", "https://from-env.example")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "https://from-env.example", cfg.Origin)
}

func TestLoadExplicitConfigPath(t *testing.T) {
	isolate(t)
	p := filepath.Join(t.TempDir(), "other.yaml")
	require.NoError(t, os.WriteFile(p, []byte("data_dir: /tmp/elsewhere\n"), 0o600))
	t.Setenv("KEEPS_CONFIG", p)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere", cfg.DataDir)
	assert.Equal(t, "/tmp/elsewhere/keeps.log", cfg.Logging.File)
}

func TestLoadRejectsBadValues(t *testing.T) {
	isolate(t)
	t.Setenv("KEEPS_BACKEND", "redis")
	_, err := Load("")
	assert.Error(t, err)

	os.Unsetenv("KEEPS_BACKEND")
	t.Setenv("KEEPS_THEME", "sepia")
	_, err = Load("")
	assert.Error(t, err)
}

func TestEmptyEnvKeepsFileValue(t *testing.T) {
	isolate(t)
	p := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(p, []byte("backend: sqlite\n"), 0o600))
	t.Setenv("KEEPS_CONFIG", p)
	t.Setenv("KEEPS_BACKEND", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)
}

func TestLoadMalformedFile(t *testing.T) {
	isolate(t)
	p := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(p, []byte("backend: [unclosed"), 0o600))
	t.Setenv("KEEPS_CONFIG", p)

	_, err := Load("")
	assert.Error(t, err)
}

func TestOverride(t *testing.T) {
	home := isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)

	require.NoError(t, cfg.Override("~/custom", "SQLite"))
	assert.Equal(t, filepath.Join(home, "custom"), cfg.DataDir)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, filepath.Join(home, "custom", "keeps.log"), cfg.Logging.File)

	assert.Error(t, cfg.Override("", "carrier-pigeon"))
}

func TestLoadReadsConfigFromFlagDir(t *testing.T) {
	home := isolate(t)
	flagDir := filepath.Join(home, "flagged")
	require.NoError(t, os.MkdirAll(flagDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(flagDir, "config.yaml"), []byte("theme: mono\n"), 0o600))
	envDir := filepath.Join(home, "env")
	require.NoError(t, os.MkdirAll(envDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(envDir, "config.yaml"), []byte("theme: neon\n"), 0o600))
	t.Setenv("KEEPS_DATA_DIR", envDir)

	cfg, err := Load(flagDir)
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Theme)

	require.NoError(t, cfg.Override(flagDir, ""))
	assert.Equal(t, flagDir, cfg.DataDir)
}
