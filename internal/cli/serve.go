package cli

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/steipete/orderview/internal/mockapi"
	"github.com/steipete/orderview/internal/server"
)

func newServeCmd(st *state) *cobra.Command {
	var addr string
	var baseURL string
	var fixtures string
	var fixturesAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the order detail page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := st.effective()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.AddrOrDefault()
			}
			log := st.logger()

			var fx mockapi.Fixtures
			if fixtures != "" {
				fx, err = mockapi.LoadFixtures(fixtures)
				if err != nil {
					return err
				}
				baseURL = localURL(fixturesAddr)
			}

			client, err := st.ordersClient(cfg, baseURL)
			if err != nil {
				return err
			}
			f, err := st.formatter(cfg)
			if err != nil {
				return err
			}
			srv, err := server.New(server.Options{
				Addr:      addr,
				Fetcher:   client,
				Formatter: f,
				Logger:    log.With(slog.String("component", "server")),
			})
			if err != nil {
				return err
			}

			// Nothing listens before this point.
			g, ctx := errgroup.WithContext(cmd.Context())
			if fx != nil {
				mockSrv := &http.Server{
					Addr:              fixturesAddr,
					Handler:           mockapi.NewHandler(fx, log.With(slog.String("component", "mockapi"))),
					ReadHeaderTimeout: 10 * time.Second,
				}
				fmt.Fprintf(cmd.OutOrStdout(), "mock_backend=%s fixtures=%d\n", baseURL, len(fx))
				g.Go(func() error { return server.Serve(ctx, mockSrv, log) })
			}
			fmt.Fprintf(cmd.OutOrStdout(), "listening=%s backend=%s\n", localURL(addr), client.BaseURL())
			g.Go(func() error { return srv.Run(ctx) })

			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: config server.addr or :8080)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "backend base URL (overrides config)")
	cmd.Flags().StringVar(&fixtures, "fixtures", "", "YAML fixtures; also serve them as the backend")
	cmd.Flags().StringVar(&fixturesAddr, "fixtures-addr", "127.0.0.1:3001", "listen address for the fixture backend")
	return cmd
}

// localURL turns a listen address into a URL reachable from this host.
func localURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port)
}
