package cli

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/steipete/orderview/internal/mockapi"
	"github.com/steipete/orderview/internal/server"
)

func newMockCmd(st *state) *cobra.Command {
	var addr string
	var fixtures string

	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Serve YAML fixtures as the orders backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fixtures == "" {
				return errors.New("--fixtures is required")
			}
			fx, err := mockapi.LoadFixtures(fixtures)
			if err != nil {
				return err
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           mockapi.NewHandler(fx, st.logger()),
				ReadHeaderTimeout: 10 * time.Second,
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mock_backend=%s fixtures=%d\n", localURL(addr), len(fx))
			return server.Serve(cmd.Context(), srv, st.logger())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:3001", "listen address")
	cmd.Flags().StringVar(&fixtures, "fixtures", "", "YAML fixtures file")
	return cmd
}
