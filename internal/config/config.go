// Package config resolves where keeps stores its data and how it behaves.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	dirName        = ".keeps"
	configFileName = "config.yaml"
	logFileName    = "keeps.log"
)

// Config holds all keeps settings. Precedence: defaults, then the YAML
// file, then KEEPS_* environment variables, then command-line flags.
type Config struct {
	DataDir string `yaml:"data_dir" env:"KEEPS_DATA_DIR"`
	// Backend is json, sqlite or memory.
	Backend string `yaml:"backend" env:"KEEPS_BACKEND"`
	// Origin prefixes share links.
	Origin string `yaml:"origin" env:"KEEPS_ORIGIN"`
	// Theme is classic, neon or mono.
	Theme string `yaml:"theme" env:"KEEPS_THEME"`

	Logging LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	Level string `yaml:"level" env:"KEEPS_LOG_LEVEL"`
	// File receives log output; "-" means stderr.
	File string `yaml:"file" env:"KEEPS_LOG_FILE"`
}

// Default returns the built-in settings rooted at ~/.keeps.
func Default() (Config, error) {
	dir, err := defaultDataDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		DataDir: dir,
		Backend: "json",
		Origin:  "http://localhost:3000",
		Theme:   "classic",
		Logging: LoggingConfig{Level: "info"},
	}, nil
}

func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// Path is the config file location: $KEEPS_CONFIG or <data dir>/config.yaml.
func Path(dataDir string) string {
	if p := strings.TrimSpace(os.Getenv("KEEPS_CONFIG")); p != "" {
		return p
	}
	return filepath.Join(dataDir, configFileName)
}

// Load applies the config file and environment over the defaults. A
// missing file is not an error. flagDir is the --data-dir value, if any;
// it picks the directory the config file is read from.
func Load(flagDir string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	dataDir := cfg.DataDir
	if d := strings.TrimSpace(os.Getenv("KEEPS_DATA_DIR")); d != "" {
		dataDir = d
	}
	if d := strings.TrimSpace(flagDir); d != "" {
		dataDir = expandHome(d)
	}
	if err := cfg.mergeFile(Path(dataDir)); err != nil {
		return Config{}, err
	}
	var fromEnv Config
	if err := env.Parse(&fromEnv); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.merge(fromEnv)
	cfg.fill()
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// merge copies the non-empty fields of o; a variable set to "" does not
// wipe a value from the file.
func (c *Config) merge(o Config) {
	set := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	set(&c.DataDir, o.DataDir)
	set(&c.Backend, o.Backend)
	set(&c.Origin, o.Origin)
	set(&c.Theme, o.Theme)
	set(&c.Logging.Level, o.Logging.Level)
	set(&c.Logging.File, o.Logging.File)
}

func (c *Config) fill() {
	c.DataDir = expandHome(strings.TrimSpace(c.DataDir))
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Logging.File == "" && c.DataDir != "" {
		c.Logging.File = filepath.Join(c.DataDir, logFileName)
	}
}

// Validate rejects settings that cannot work.
func (c Config) Validate() error {
	if c.DataDir == "" && c.Backend != "memory" {
		return errors.New("config: data_dir is required")
	}
	switch c.Backend {
	case "json", "sqlite", "memory":
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	switch c.Theme {
	case "", "classic", "neon", "mono":
	default:
		return fmt.Errorf("config: unknown theme %q", c.Theme)
	}
	return nil
}

// Override applies non-empty flag values and re-derives dependent settings.
func (c *Config) Override(dataDir, backend string) error {
	if dataDir != "" {
		if c.Logging.File == filepath.Join(c.DataDir, logFileName) {
			c.Logging.File = ""
		}
		c.DataDir = dataDir
	}
	if backend != "" {
		c.Backend = backend
	}
	c.fill()
	return c.Validate()
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
