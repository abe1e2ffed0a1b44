package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/steipete/orderview/internal/version"
)

func Run(ctx context.Context, args []string) error {
	root := newRoot()
	root.SetArgs(args)
	root.SetContext(ctx)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func newRoot() *cobra.Command {
	var cfgPath string
	var verbose bool
	var logFormat string

	cmd := &cobra.Command{
		Use:           "orderview",
		Short:         "order detail view: terminal and web",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config path (default: OS config dir)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text|json")

	st := &state{getenv: os.Getenv}
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd.ErrOrStderr(), logFormat, verbose)
		if err != nil {
			return err
		}
		st.log = log
		st.configPath = cfgPath
		return st.load()
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return st.save()
	}

	cmd.AddCommand(newShowCmd(st))
	cmd.AddCommand(newServeCmd(st))
	cmd.AddCommand(newMockCmd(st))
	cmd.AddCommand(newConfigCmd(st))

	return cmd
}

func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q (expected text|json)", format)
	}
}
