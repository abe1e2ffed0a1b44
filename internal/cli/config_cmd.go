package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/steipete/orderview/internal/config"
	"github.com/steipete/orderview/internal/locale"
	"github.com/steipete/orderview/internal/orders"
)

func newConfigCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show/edit config",
	}
	cmd.AddCommand(newConfigShowCmd(st))
	cmd.AddCommand(newConfigSetCmd(st))
	return cmd
}

func newConfigShowCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective config (file + environment)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := st.effective()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path=%s\n", st.configPath)
			fmt.Fprintf(out, "base_url=%s\n", cfg.Backend.BaseURL)
			fmt.Fprintf(out, "timeout=%s\n", cfg.Backend.TimeoutOrDefault())
			if cfg.Backend.UserAgent != "" {
				fmt.Fprintf(out, "user_agent=%s\n", cfg.Backend.UserAgent)
			}
			fmt.Fprintf(out, "locale=%s\n", orDefault(cfg.Locale.Locale, locale.DefaultLocale))
			fmt.Fprintf(out, "currency=%s\n", orDefault(cfg.Locale.Currency, locale.DefaultCurrency))
			fmt.Fprintf(out, "timezone=%s\n", orDefault(cfg.Locale.TimeZone, locale.DefaultTimeZone))
			fmt.Fprintf(out, "addr=%s\n", cfg.Server.AddrOrDefault())
			return nil
		},
	}
}

func newConfigSetCmd(st *state) *cobra.Command {
	var baseURL string
	var timeout time.Duration
	var userAgent string
	var loc string
	var cur string
	var tz string
	var addr string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update backend, locale or server settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !anyChanged(cmd, "base-url", "timeout", "user-agent", "locale", "currency", "timezone", "addr") {
				return errors.New("nothing to set (use --base-url, --timeout, --user-agent, --locale, --currency, --timezone or --addr)")
			}
			next := st.cfg
			if cmd.Flags().Changed("base-url") {
				u, err := orders.NormalizeBaseURL(baseURL)
				if err != nil {
					return err
				}
				next.Backend.BaseURL = u
			}
			if cmd.Flags().Changed("timeout") {
				next.Backend.Timeout = config.Duration(timeout)
			}
			if cmd.Flags().Changed("user-agent") {
				next.Backend.UserAgent = userAgent
			}
			if cmd.Flags().Changed("locale") {
				next.Locale.Locale = loc
			}
			if cmd.Flags().Changed("currency") {
				next.Locale.Currency = cur
			}
			if cmd.Flags().Changed("timezone") {
				next.Locale.TimeZone = tz
			}
			if cmd.Flags().Changed("addr") {
				next.Server.Addr = addr
			}
			if err := next.Validate(); err != nil {
				return err
			}
			if _, err := locale.New(next.Locale.FormatterOptions()); err != nil {
				return err
			}
			st.cfg = next
			st.markDirty()
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "base-url", "", "backend base URL, e.g. http://localhost:3000")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "request timeout, e.g. 10s")
	cmd.Flags().StringVar(&userAgent, "user-agent", "", "User-Agent sent to the backend")
	cmd.Flags().StringVar(&loc, "locale", "", "BCP 47 locale, e.g. es-ES")
	cmd.Flags().StringVar(&cur, "currency", "", "ISO 4217 currency, e.g. EUR")
	cmd.Flags().StringVar(&tz, "timezone", "", "IANA time zone, e.g. Europe/Madrid")
	cmd.Flags().StringVar(&addr, "addr", "", "page server listen address")
	return cmd
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}
