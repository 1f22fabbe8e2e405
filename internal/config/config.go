package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// Last.fm account and API access (required)
	Lastfm LastfmConfig `koanf:"lastfm"`

	// Top tracks list settings
	Ranking RankingConfig `koanf:"ranking"`

	// Favorites strip settings
	Favorites FavoritesConfig `koanf:"favorites"`

	// Log output of the TUI
	Log LogConfig `koanf:"log"`

	Icons string `koanf:"icons"` // "nerd", "unicode" or "none" (default: "unicode")
}

// LastfmConfig holds Last.fm API configuration.
type LastfmConfig struct {
	APIKey         string `koanf:"api_key"`
	APISecret      string `koanf:"api_secret"`
	Username       string `koanf:"username"`
	BaseURL        string `koanf:"base_url"`        // default: https://ws.audioscrobbler.com/2.0/
	TimeoutSeconds int    `koanf:"timeout_seconds"` // per request (default: 30)
	MaxRetries     *int   `koanf:"max_retries"`     // transient failure retries (default: 3)
}

// RankingConfig holds top tracks configuration.
type RankingConfig struct {
	TopLimit     int `koanf:"top_limit"`     // tracks in the ranked list (1-500, default: 50)
	ArtworkCount int `koanf:"artwork_count"` // tracks with artwork resolved up front (default: 20)
}

// FavoritesConfig holds favorite tracks configuration.
type FavoritesConfig struct {
	Max int `koanf:"max"` // favorites kept before the oldest is replaced (1-10, default: 4)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/topplays/topplays.log
	Level string `koanf:"level"` // "debug", "info", "warn" or "error" (default: "info")
}

const (
	DefaultTimeoutSeconds = 30
	DefaultMaxRetries     = 3
	DefaultTopLimit       = 50
	DefaultArtworkCount   = 20
	DefaultFavoritesMax   = 4

	maxTopLimit     = 500
	maxFavoritesMax = 10
)

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads the given TOML files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Lastfm.APIKey = strings.TrimSpace(cfg.Lastfm.APIKey)
	cfg.Lastfm.Username = strings.TrimSpace(cfg.Lastfm.Username)

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/topplays/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "topplays", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasLastfmConfig returns true if an API key and a user are configured.
func (c *Config) HasLastfmConfig() bool {
	return c.Lastfm.APIKey != "" && c.Lastfm.Username != ""
}

// GetLastfmConfig returns the Last.fm configuration with defaults applied.
func (c *Config) GetLastfmConfig() LastfmConfig {
	cfg := c.Lastfm

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.MaxRetries == nil || *cfg.MaxRetries < 0 {
		retries := DefaultMaxRetries
		cfg.MaxRetries = &retries
	}

	return cfg
}

// Timeout returns the per-request timeout.
func (c LastfmConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Retries returns the retry count, or zero when unset.
func (c LastfmConfig) Retries() int {
	if c.MaxRetries == nil {
		return 0
	}
	return *c.MaxRetries
}

// GetRankingConfig returns the ranking configuration with defaults applied.
func (c *Config) GetRankingConfig() RankingConfig {
	cfg := c.Ranking

	if cfg.TopLimit <= 0 || cfg.TopLimit > maxTopLimit {
		cfg.TopLimit = DefaultTopLimit
	}
	if cfg.ArtworkCount <= 0 {
		cfg.ArtworkCount = DefaultArtworkCount
	}
	if cfg.ArtworkCount > cfg.TopLimit {
		cfg.ArtworkCount = cfg.TopLimit
	}

	return cfg
}

// GetFavoritesConfig returns the favorites configuration with defaults
// applied.
func (c *Config) GetFavoritesConfig() FavoritesConfig {
	cfg := c.Favorites

	if cfg.Max <= 0 || cfg.Max > maxFavoritesMax {
		cfg.Max = DefaultFavoritesMax
	}

	return cfg
}

// GetLogLevel returns the configured log level, info when unset or unknown.
func (c *Config) GetLogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
