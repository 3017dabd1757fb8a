package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "threedoors.ini"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, DefaultSavePath, cfg.SavePath)
	assert.Equal(t, int64(-1), cfg.Seed)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "threedoors.ini")
	content := `[Game]
SavePath = saves/slot.txt
Seed     = 12
Shop     = true

[Autosave]
Enabled  = true
Interval = 3

[Log]
Level = debug

[MCP]
Addr    = 0.0.0.0:9000
Origins = http://a.example,http://b.example
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "saves/slot.txt", cfg.SavePath)
	assert.Equal(t, int64(12), cfg.Seed)
	assert.True(t, cfg.Shop)
	assert.True(t, cfg.Autosave)
	assert.Equal(t, 3, cfg.AutosaveInterval)
	assert.Equal(t, "data/autosave.db", cfg.AutosavePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0:9000", cfg.MCPAddr)
	assert.Equal(t, "/mcp", cfg.MCPPath)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.MCPOrigins.Values())
}

func TestLoadConfigBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "threedoors.ini")
	require.NoError(t, os.WriteFile(path, []byte("[Game\nSeed = 1\n"), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestFlagsOverrideConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Seed = 12
	cfg.MCPOrigins = stringSlice{values: []string{"http://from-file"}}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	bindFlags(fs, cfg)
	require.NoError(t, fs.Parse([]string{
		"-seed", "99",
		"-headless",
		"-mcp-origin", "http://one",
		"-mcp-origin", "http://two",
	}))

	assert.Equal(t, int64(99), cfg.Seed)
	assert.True(t, cfg.Headless)
	assert.Equal(t, DefaultSavePath, cfg.SavePath)
	assert.Equal(t, []string{"http://one", "http://two"}, cfg.MCPOrigins.Values())
	assert.Equal(t, "http://one,http://two", cfg.MCPOrigins.String())
}

func TestConfigPathFromEnv(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")
	assert.Equal(t, DefaultConfigPath, configPath())

	t.Setenv(ConfigPathEnv, "/etc/threedoors.ini")
	assert.Equal(t, "/etc/threedoors.ini", configPath())
}
