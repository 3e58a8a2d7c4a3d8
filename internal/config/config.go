// Package config loads the taskdeck configuration. Settings are read once
// at process start from a yaml file in the user's config directory, with
// environment and flag overrides applied on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the configuration directory name.
	AppName = "taskdeck"

	// FileName is the configuration file name inside the app directory.
	FileName = "config.yaml"

	// EnvAPIURL overrides the configured service base URL.
	EnvAPIURL = "TASKDECK_API_URL"

	// EnvSentryDSN overrides the configured error-reporting DSN.
	EnvSentryDSN = "TASKDECK_SENTRY_DSN"
)

// Config holds the settings the client reads at startup.
type Config struct {
	// APIURL is the base address of the task service.
	APIURL string `yaml:"api_url"`

	// LogLevel is the minimum diagnostic log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// SentryDSN enables error reporting when set.
	SentryDSN string `yaml:"sentry_dsn"`
}

// Store reads and writes the configuration file through an afero
// filesystem so tests can run against an in-memory fs.
type Store struct {
	fs  *afero.Afero
	dir string
}

// NewStore creates a store rooted at dir. An empty dir selects the
// default config directory.
func NewStore(fs afero.Fs, dir string) *Store {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Store{fs: &afero.Afero{Fs: fs}, dir: dir}
}

// DefaultDir returns XDG_CONFIG_HOME/taskdeck, falling back to
// ~/.config/taskdeck.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Path returns the location of the configuration file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Load reads the configuration file and applies environment overrides.
// A missing file is not an error; it yields the zero config so overrides
// and flags can still supply everything.
func (s *Store) Load() (Config, error) {
	var cfg Config

	raw, err := s.fs.ReadFile(s.Path())
	switch {
	case os.IsNotExist(err):
		// fall through to overrides
	case err != nil:
		return Config{}, fmt.Errorf("reading %s: %w", s.Path(), err)
	default:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", s.Path(), err)
		}
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(EnvSentryDSN); v != "" {
		cfg.SentryDSN = v
	}
	cfg.APIURL = strings.TrimSpace(cfg.APIURL)
	return cfg, nil
}

// Save writes the configuration file, creating the directory as needed.
func (s *Store) Save(cfg Config) error {
	if err := s.fs.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", s.dir, err)
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := s.fs.WriteFile(s.Path(), raw, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path(), err)
	}
	return nil
}
