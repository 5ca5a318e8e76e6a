package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/currency"
)

// Config holds all storefront client configuration
type Config struct {
	API     APIConfig
	Storage StorageConfig
	Store   StoreConfig
	Log     LogConfig
}

// APIConfig points at the remote storefront REST API
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration // zero means no client-side timeout
	UserAgent string
}

// StorageConfig selects the local persistence backend
type StorageConfig struct {
	Driver string // memory, file, sqlite
	Path   string
}

// StoreConfig holds cart settings
type StoreConfig struct {
	Currency currency.Unit
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load reads configuration with this priority (highest first):
// 1. Environment variables with STOREFRONT_ prefix (e.g. STOREFRONT_API_BASE_URL)
// 2. storefront.{yaml,toml,json} in the working directory or ~/.storefront
// 3. Built-in defaults
// A non-empty configFile replaces the search.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("storefront")
		v.AddConfigPath(".")
		if dir, err := stateDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("v.ReadInConfig: %w", err)
		}
	}

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cur, err := currency.ParseISO(v.GetString("store.currency"))
	if err != nil {
		return nil, fmt.Errorf("currency[%s] is not valid: %w", v.GetString("store.currency"), err)
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL:   v.GetString("api.base_url"),
			Timeout:   v.GetDuration("api.timeout"),
			UserAgent: v.GetString("api.user_agent"),
		},
		Storage: StorageConfig{
			Driver: v.GetString("storage.driver"),
			Path:   v.GetString("storage.path"),
		},
		Store: StoreConfig{
			Currency: cur,
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cfg.Validate: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:4000/api")
	v.SetDefault("api.timeout", 0)
	v.SetDefault("api.user_agent", "storefront/1.0")

	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.path", defaultStoragePath())

	v.SetDefault("store.currency", "PEN")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
}

// Validate checks the loaded values are usable
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is empty")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout is negative: %s", c.API.Timeout)
	}

	switch c.Storage.Driver {
	case "memory":
	case "file", "sqlite":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is empty for driver[%s]", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("storage.driver[%s] is not supported", c.Storage.Driver)
	}

	return nil
}

func stateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("os.UserHomeDir: %w", err)
	}

	return filepath.Join(home, ".storefront"), nil
}

func defaultStoragePath() string {
	dir, err := stateDir()
	if err != nil {
		return "storefront-storage.json"
	}

	return filepath.Join(dir, "storage.json")
}
