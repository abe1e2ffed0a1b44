package cli

import (
	"errors"
	"log/slog"

	"github.com/steipete/orderview/internal/config"
	"github.com/steipete/orderview/internal/locale"
	"github.com/steipete/orderview/internal/orders"
	"github.com/steipete/orderview/internal/version"
)

type state struct {
	configPath string
	cfg        config.Config
	dirty      bool

	getenv func(string) string
	log    *slog.Logger
}

func (s *state) load() error {
	if s.configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		s.configPath = p
	}
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

func (s *state) save() error {
	if !s.dirty {
		return nil
	}
	if s.configPath == "" {
		return errors.New("internal: configPath unset")
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(s.configPath, s.cfg); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

func (s *state) markDirty() { s.dirty = true }

// effective is the stored config with environment overrides applied. It is
// never saved.
func (s *state) effective() (config.Config, error) {
	cfg, err := s.cfg.WithEnv(s.getenv)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (s *state) logger() *slog.Logger {
	if s.log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.log
}

func (s *state) formatter(cfg config.Config) (*locale.Formatter, error) {
	return locale.New(cfg.Locale.FormatterOptions())
}

func (s *state) ordersClient(cfg config.Config, baseURL string) (*orders.Client, error) {
	if baseURL == "" {
		baseURL = cfg.Backend.BaseURL
	}
	if baseURL == "" {
		return nil, errors.New("missing backend base URL (set --base-url, ORDERVIEW_BASE_URL or `orderview config set --base-url`)")
	}
	ua := cfg.Backend.UserAgent
	if ua == "" {
		ua = "orderview/" + version.Version
	}
	return orders.New(orders.Options{
		BaseURL:   baseURL,
		UserAgent: ua,
		Timeout:   cfg.Backend.TimeoutOrDefault(),
	})
}
