// Package config loads termfolio settings from a YAML file, TERMFOLIO_*
// environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/nathoo/termfolio/engine/store"
	"github.com/nathoo/termfolio/logging"
)

// History scopes.
const (
	ScopeDurable = "durable"
	ScopeSession = "session"
)

// Config is the full termfolio configuration.
type Config struct {
	History HistoryConfig `mapstructure:"history"`
	Store   StoreConfig   `mapstructure:"store"`
	Content ContentConfig `mapstructure:"content"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
}

type HistoryConfig struct {
	Scope    string `mapstructure:"scope"`
	Capacity int    `mapstructure:"capacity"`
	Key      string `mapstructure:"key"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"` // empty: derived from the driver
}

type ContentConfig struct {
	Dir string `mapstructure:"dir"` // empty: embedded default content
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"` // gin mode
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
	Debug      bool   `mapstructure:"debug"`
	JSON       bool   `mapstructure:"json"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("history.scope", ScopeDurable)
	v.SetDefault("history.capacity", 50)
	v.SetDefault("history.key", "portfolio.history")
	v.SetDefault("store.driver", store.DriverFile)
	v.SetDefault("store.path", "")
	v.SetDefault("content.dir", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.debug", false)
	v.SetDefault("log.json", false)
}

// Default returns the configuration used when no file or environment
// overrides anything.
func Default() *Config {
	cfg, err := load(viper.New(), "", false)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration. An explicit path must exist; otherwise
// ./termfolio.yaml and ~/.termfolio/termfolio.yaml are tried and a missing
// file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("TERMFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("termfolio")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.termfolio")
	}
	return load(v, path, true)
}

func load(v *viper.Viper, path string, read bool) (*Config, error) {
	setDefaults(v)

	if read {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if path != "" || !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	// PORT is honoured the way hosted portfolio sites expect, unless the
	// address was set explicitly.
	if port := os.Getenv("PORT"); port != "" && !v.InConfig("server.addr") && os.Getenv("TERMFOLIO_SERVER_ADDR") == "" {
		cfg.Server.Addr = ":" + port
	}

	if cfg.Store.Path == "" {
		cfg.Store.Path = defaultStorePath(cfg.Store.Driver)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultStorePath(driver string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	name := "history.json"
	if driver == store.DriverSQLite {
		name = "termfolio.db"
	}
	return filepath.Join(home, ".termfolio", name)
}

// Validate checks enumerations and ranges.
func (c *Config) Validate() error {
	var errs []error
	switch c.History.Scope {
	case ScopeDurable, ScopeSession:
	default:
		errs = append(errs, fmt.Errorf("history.scope %q: want %s or %s", c.History.Scope, ScopeDurable, ScopeSession))
	}
	if c.History.Capacity < 1 {
		errs = append(errs, fmt.Errorf("history.capacity %d: must be at least 1", c.History.Capacity))
	}
	if c.History.Key == "" {
		errs = append(errs, errors.New("history.key: must not be empty"))
	}
	switch c.Store.Driver {
	case store.DriverFile, store.DriverSQLite, store.DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("store.driver %q: want file, sqlite or memory", c.Store.Driver))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode %q: want debug, release or test", c.Server.Mode))
	}
	return errors.Join(errs...)
}

// Durable reports whether history outlives the process.
func (c *Config) Durable() bool {
	return c.History.Scope == ScopeDurable && c.Store.Driver != store.DriverMemory
}

// OpenStore opens the history backend for the configured scope.
func (c *Config) OpenStore() (store.Store, error) {
	if !c.Durable() {
		return store.NewMemory(), nil
	}
	return store.Open(c.Store.Driver, c.Store.Path)
}

// LogOptions maps the log section onto logging.Options.
func (c *Config) LogOptions() logging.Options {
	return logging.Options{
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
		Compress:   c.Log.Compress,
		Debug:      c.Log.Debug,
		JSON:       c.Log.JSON,
	}
}
