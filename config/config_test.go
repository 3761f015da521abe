package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/sitehash/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sitehash.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "sha256", cfg.Hasher.Algorithm)
	assert.Equal(t, 3, cfg.Hasher.Retries)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[hasher]
algorithm = "sha512"
retries = 1
timeout_seconds = 10

[browser]
exec_path = "/usr/bin/chromium"

[browser.flags]
headless = false
no-sandbox = true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sha512", cfg.Hasher.Algorithm)
	assert.Equal(t, 1, cfg.Hasher.Retries)
	assert.Equal(t, 10*time.Second, cfg.Timeout())

	flags := cfg.BrowserFlags()
	assert.Equal(t, false, flags["headless"])
	assert.Equal(t, true, flags["no-sandbox"])
	assert.Equal(t, "/usr/bin/chromium", flags["exec_path"])
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[hasher]\nalgorithm = \"md5\"\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "md5", cfg.Hasher.Algorithm)
	assert.Equal(t, 3, cfg.Hasher.Retries)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "not [valid toml")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestBrowserFlagsEmptyByDefault(t *testing.T) {
	flags := config.Default().BrowserFlags()
	assert.Empty(t, flags)
}
