package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://127.0.0.1:8000", c.ServerBaseURL)
	assert.Equal(t, "warn", c.LogLevel)
	assert.False(t, c.InMemory)
	assert.NotEmpty(t, c.DataDir)
	assert.Equal(t, filepath.Join(c.DataDir, "session.db"), c.DatabasePath())
}

func TestLoadConfig_NoArgs(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	want := defaults()
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoadConfig_Flags(t *testing.T) {
	cfg, err := LoadConfig([]string{"-a", "https://auth.example.com", "-d", "/tmp/ga", "-l", "debug", "-m"})
	require.NoError(t, err)

	want := &Config{
		ServerBaseURL: "https://auth.example.com",
		DataDir:       "/tmp/ga",
		LogLevel:      "debug",
		InMemory:      true,
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_JSONC(t *testing.T) {
	path := writeFile(t, "client.jsonc", `{
		// local dev server
		"server_base_url": "http://localhost:9000",
		"log_level": "debug",
		"in_memory": true,
	}`)

	cfg, err := LoadConfig([]string{"-c", path})
	require.NoError(t, err)

	want := defaults()
	want.ServerBaseURL = "http://localhost:9000"
	want.LogLevel = "debug"
	want.InMemory = true
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "client.yaml", "server_base_url: http://10.0.0.5:8000\ndata_dir: /var/lib/gophauth\n")

	cfg, err := LoadConfig([]string{"-config=" + path})
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:8000", cfg.ServerBaseURL)
	assert.Equal(t, "/var/lib/gophauth", cfg.DataDir)
	assert.Equal(t, "warn", cfg.LogLevel, "absent keys keep defaults")
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "client.json", `{"server_base_url": "http://from-file:8000", "log_level": "error"}`)

	cfg, err := LoadConfig([]string{"-c", path, "-a", "http://from-flag:8000"})
	require.NoError(t, err)

	assert.Equal(t, "http://from-flag:8000", cfg.ServerBaseURL)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
	}{
		{"missing file", func(t *testing.T) []string {
			return []string{"-c", filepath.Join(t.TempDir(), "nope.json")}
		}},
		{"bad json", func(t *testing.T) []string {
			return []string{"-c", writeFile(t, "bad.json", `{"server_base_url": 42}`)}
		}},
		{"bad yaml", func(t *testing.T) []string {
			return []string{"-c", writeFile(t, "bad.yml", "server_base_url: [unterminated")}
		}},
		{"unknown extension", func(t *testing.T) []string {
			return []string{"-c", writeFile(t, "client.toml", `server_base_url = "x"`)}
		}},
		{"bad bool flag", func(*testing.T) []string {
			return []string{"-m=maybe"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.args(t))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadConfig_IgnoresForeignFlags(t *testing.T) {
	cfg, err := LoadConfig([]string{"-v", "-x", "1", "-a", "http://h:1"})
	require.NoError(t, err)
	assert.Equal(t, "http://h:1", cfg.ServerBaseURL)
}
