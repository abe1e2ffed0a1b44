package config

import (
	"strings"
	"time"
)

// Environment variables that override the config file. They are applied to
// a copy and never written back.
const (
	EnvBaseURL  = "ORDERVIEW_BASE_URL"
	EnvTimeout  = "ORDERVIEW_TIMEOUT"
	EnvLocale   = "ORDERVIEW_LOCALE"
	EnvCurrency = "ORDERVIEW_CURRENCY"
	EnvTimeZone = "ORDERVIEW_TIMEZONE"
	EnvAddr     = "ORDERVIEW_ADDR"
)

func (c Config) WithEnv(getenv func(string) string) (Config, error) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.Backend.BaseURL, EnvBaseURL)
	set(&c.Locale.Locale, EnvLocale)
	set(&c.Locale.Currency, EnvCurrency)
	set(&c.Locale.TimeZone, EnvTimeZone)
	set(&c.Server.Addr, EnvAddr)

	if v := strings.TrimSpace(getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return c, err
		}
		c.Backend.Timeout = Duration(d)
	}
	return c, nil
}
