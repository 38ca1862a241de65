package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raji2203030/livebot/internal/domain"
)

// Tests in this file touch process-global environment variables via
// t.Setenv, so none of them run in parallel.

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile(filepath.Join("testdata", "livebot.yaml"))
	require.NoError(t, err)

	require.Len(t, cfg.Interpreters, 3)
	assert.Equal(t, "python3", cfg.Interpreters[0].Command)
	assert.Equal(t, "LOCALAPPDATA", cfg.Interpreters[1].Env)
	assert.Equal(t, "Programs/Python/Python311/python.exe", cfg.Interpreters[1].Path)
	assert.Equal(t, "/opt/python/bin/python", cfg.Interpreters[2].File)
	assert.Equal(t, "deps/requirements.txt", cfg.Manifest)
	assert.Equal(t, "app/livebot.py", cfg.EntryPoint)
	assert.True(t, cfg.Records.Enabled)

	// untouched fields keep defaults
	assert.Equal(t, ".env", cfg.DotEnv)
	assert.Equal(t, ".livebot/runs", cfg.Records.Dir)
}

func TestLoadFile_InvalidInterpreter(t *testing.T) {
	path := filepath.Join("testdata", "invalid_interpreter.yaml")
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
	assert.Contains(t, err.Error(), "livebot.interpreters[1]")
	assert.Contains(t, err.Error(), path)
}

func TestLoadFile_BrokenYAML(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "broken.yaml"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_EnvOverride(t *testing.T) {
	root := t.TempDir()
	content := "livebot:\n  entrypoint: main.py\n  records:\n    enabled: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(content), 0o644))

	t.Setenv("LIVEBOT_PYTHON", "/usr/local/bin/python3.12")
	t.Setenv("LIVEBOT_ENTRYPOINT", "server.py")
	t.Setenv("LIVEBOT_RECORDS_ENABLED", "false")

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/python3.12", cfg.Python)
	assert.Equal(t, "server.py", cfg.EntryPoint)
	assert.False(t, cfg.Records.Enabled)
	assert.Equal(t, "requirements.txt", cfg.Manifest)
}

func TestLoad_InvalidFileIsReported(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("livebot: [\n"), 0o644))

	_, err := Load(root)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), FileName))
}

func TestLoadExplicit_RequiresFile(t *testing.T) {
	_, err := LoadExplicit(filepath.Join(t.TempDir(), "custom.yaml"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}
