// Package config loads the application configuration from a TOML file.
// Every field is optional; a missing file yields the defaults.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/JosepEscobar/github-profile-explorer-sub000/pkg/errors"
)

// Config is the full application configuration.
type Config struct {
	BaseURL string   `toml:"base_url"`
	Timeout duration `toml:"timeout"`
	Cache   Cache    `toml:"cache"`
	Store   Store    `toml:"store"`
	Server  Server   `toml:"server"`
}

// Cache configures the result cache used by the CLI and the server.
type Cache struct {
	Backend   string   `toml:"backend"` // "file", "redis", or "none"
	Dir       string   `toml:"dir"`
	TTL       duration `toml:"ttl"`
	RedisAddr string   `toml:"redis_addr"`
}

// Store configures the favorites and history store.
type Store struct {
	Backend       string `toml:"backend"` // "file", "memory", or "mongo"
	Dir           string `toml:"dir"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// Server configures the JSON API.
type Server struct {
	Addr string `toml:"addr"`
}

// duration decodes TOML strings like "30s" into a time.Duration.
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration.
func (d duration) Duration() time.Duration { return time.Duration(d) }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL: "https://api.github.com",
		Timeout: duration(10 * time.Second),
		Cache: Cache{
			Backend:   "file",
			TTL:       duration(5 * time.Minute),
			RedisAddr: "localhost:6379",
		},
		Store: Store{
			Backend:       "file",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "ghexplorer",
		},
		Server: Server{Addr: ":8080"},
	}
}

// DefaultPath returns the default config file location,
// ~/.config/ghexplorer/config.toml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ghexplorer", "config.toml")
}

// Load reads the config file at path, falling back to DefaultPath when path
// is empty. A missing file is not an error and yields Default(); a file
// that cannot be parsed fails with INVALID_INPUT.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, nil
}
