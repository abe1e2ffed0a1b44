package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/steipete/orderview/internal/locale"
)

const (
	DefaultAddr    = ":8080"
	DefaultTimeout = 20 * time.Second
)

type Config struct {
	Version int           `json:"version"`
	Backend BackendConfig `json:"backend"`
	Locale  LocaleConfig  `json:"locale"`
	Server  ServerConfig  `json:"server"`
}

type BackendConfig struct {
	BaseURL   string   `json:"base_url,omitempty" validate:"omitempty,url"`
	Timeout   Duration `json:"timeout,omitempty" validate:"gte=0"`
	UserAgent string   `json:"user_agent,omitempty"`
}

type LocaleConfig struct {
	Locale   string `json:"locale,omitempty" validate:"omitempty,bcp47_language_tag"`
	Currency string `json:"currency,omitempty" validate:"omitempty,iso4217"`
	TimeZone string `json:"timezone,omitempty" validate:"omitempty,timezone"`
}

type ServerConfig struct {
	Addr string `json:"addr,omitempty"`
}

// Duration is a time.Duration stored as "20s" in JSON.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var n int64
		if err2 := json.Unmarshal(b, &n); err2 != nil {
			return fmt.Errorf("duration: %w", err)
		}
		*d = Duration(time.Duration(n) * time.Second)
		return nil
	}
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "orderview", "config.json"), nil
}

func Load(path string) (Config, error) {
	var cfg Config

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	if cfg.Version == 0 {
		cfg.Version = 1
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func New() Config {
	return Config{
		Version: 1,
	}
}

func (c BackendConfig) TimeoutOrDefault() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.Timeout)
}

func (c ServerConfig) AddrOrDefault() string {
	if strings.TrimSpace(c.Addr) == "" {
		return DefaultAddr
	}
	return c.Addr
}

func (c LocaleConfig) FormatterOptions() locale.Options {
	return locale.Options{
		Locale:   c.Locale,
		Currency: c.Currency,
		TimeZone: c.TimeZone,
	}
}
