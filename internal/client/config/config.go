package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DatabaseFile is the session database name inside DataDir.
const DatabaseFile = "session.db"

// Config holds runtime settings for the client.
type Config struct {
	ServerBaseURL string `json:"server_base_url" yaml:"server_base_url"`
	DataDir       string `json:"data_dir" yaml:"data_dir"`
	LogLevel      string `json:"log_level" yaml:"log_level"`
	InMemory      bool   `json:"in_memory" yaml:"in_memory"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.DataDir = defaultDataDir()
	c.LogLevel = "warn"
	c.InMemory = false
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "gophauth")
	}
	return ".gophauth"
}

// DatabasePath is the location of the session database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, DatabaseFile)
}

// LoadConfig builds a Config from defaults, then the config file named in
// args (if any), then the flags in args. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
