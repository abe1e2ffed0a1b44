package cli

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/steipete/orderview/internal/orderview"
)

func newShowCmd(st *state) *cobra.Command {
	var paid bool
	var asJSON bool
	var noColor bool
	var baseURL string

	cmd := &cobra.Command{
		Use:   "show <order-id>",
		Short: "Print the detail view of one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := st.effective()
			if err != nil {
				return err
			}
			client, err := st.ordersClient(cfg, baseURL)
			if err != nil {
				return err
			}
			f, err := st.formatter(cfg)
			if err != nil {
				return err
			}

			v := orderview.New(client, orderview.WithLogger(st.logger()))
			defer v.Deactivate()

			v.Activate(cmd.Context(), orderview.Immediate(args[0]), paid)
			s, err := v.Wait(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON && s.Phase == orderview.PhaseReady {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s.Order)
			}

			page := orderview.Build(s, v.Paid(), f)
			if err := orderview.RenderText(out, page, orderview.TextOptions{Color: !noColor && isTerminal(out)}); err != nil {
				return err
			}
			if page.Kind == orderview.PageError {
				return errors.New(page.Message)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&paid, "paid", false, "show the payment-received banner (provider redirect)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the order as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "backend base URL (overrides config)")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
