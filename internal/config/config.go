package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/five82/pokeview/internal/pokeapi"
)

// Config holds everything pokeview reads at startup.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`

	// Warnings collects recoverable problems (bad values replaced by
	// defaults) so they can be logged once a logger exists.
	Warnings []string `mapstructure:"-"`
	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-"`
}

// APIConfig configures the catalog client.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CatalogConfig configures paging.
type CatalogConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// StorageConfig selects where favorites are kept.
type StorageConfig struct {
	Backend   string `mapstructure:"backend"`
	Path      string `mapstructure:"path"`
	RedisAddr string `mapstructure:"redis_addr"`
	RedisDB   int    `mapstructure:"redis_db"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

const (
	defaultConfigPath = "~/.config/pokeview/config.toml"
	defaultLogFile    = "~/.local/share/pokeview/pokeview.log"
	defaultPageSize   = 20
	envPrefix         = "POKEVIEW"
)

// BaseURLEnv is the environment variable that overrides the API base URL.
const BaseURLEnv = "POKEVIEW_BASE_API_URL"

// Load reads defaults, then the TOML config file (when present), then
// POKEVIEW_* environment variables. A missing config file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api.base_url", BaseURLEnv, "POKEVIEW_API_BASE_URL"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}
	source := ""
	if _, statErr := os.Stat(resolved); statErr == nil {
		v.SetConfigFile(resolved)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		source = resolved
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return Config{}, fmt.Errorf("open config: %w", statErr)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = source
	cfg.normalize()
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", pokeapi.DefaultBaseURL)
	v.SetDefault("api.timeout", time.Duration(0))
	v.SetDefault("catalog.page_size", defaultPageSize)
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.redis_addr", "127.0.0.1:6379")
	v.SetDefault("storage.redis_db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", defaultLogFile)
}

func (c *Config) normalize() {
	c.API.BaseURL = strings.TrimSpace(c.API.BaseURL)
	if !ValidBaseURL(c.API.BaseURL) {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid base url %q, falling back to %q", c.API.BaseURL, pokeapi.DefaultBaseURL))
		c.API.BaseURL = pokeapi.DefaultBaseURL
	}
	if c.API.Timeout < 0 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("negative api timeout %s ignored", c.API.Timeout))
		c.API.Timeout = 0
	}
	if c.Catalog.PageSize <= 0 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid page size %d, using %d", c.Catalog.PageSize, defaultPageSize))
		c.Catalog.PageSize = defaultPageSize
	}
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Path != "" {
		c.Storage.Path = mustExpand(c.Storage.Path)
	}
	if c.Log.File != "" && c.Log.File != "-" {
		c.Log.File = mustExpand(c.Log.File)
	}
}

// ValidBaseURL reports whether raw is an absolute URL with scheme and host.
func ValidBaseURL(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ against the home directory and returns an
// absolute path. Blank paths are an error.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
