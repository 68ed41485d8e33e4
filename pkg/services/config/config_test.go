package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "reportgen.yaml")
	// No indentation for top-level keys to avoid YAML parsing errors
	content := `log_level: "debug"
default_format: "excel"
preset_catalog: "/etc/reportgen/presets.ini"
server:
  host: "0.0.0.0"
  port: "9090"`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	cfg, err := LoadConfig(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "excel", cfg.DefaultFormat)
	assert.Equal(t, "/etc/reportgen/presets.ini", cfg.PresetCatalog)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_MissingFile_UsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "pdf", cfg.DefaultFormat)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("REPORTGEN_DEFAULT_FORMAT", "html")
	t.Setenv("REPORTGEN_SERVER_PORT", "7070")

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "html", cfg.DefaultFormat)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoadConfig_InvalidYAML_ReturnsError(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug: bad"), 0o644))

	// When
	_, err := LoadConfig(path)

	// Then
	assert.Error(t, err)
}
