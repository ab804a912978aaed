package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/textkit/internal/httpapi"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Server
			if addr != "" {
				cfg.Addr = addr
			}

			fallback := a.catalog.DefaultLanguage()
			srv := httpapi.New(
				httpapi.WithLogger(a.logger),
				httpapi.WithProvider(a.provider),
				httpapi.WithHumanizer(a.humanizer),
				httpapi.WithClock(a.clock),
				httpapi.WithRequestTimeout(cfg.RequestTimeout),
				httpapi.WithMaxBodyBytes(cfg.MaxBodyBytes),
				httpapi.WithCORS(cfg.CORSOrigins...),
				httpapi.WithCheck("catalog", func(context.Context) error {
					if !a.catalog.Has(fallback, "interval.ago") {
						return fmt.Errorf("catalog %q has no interval messages", fallback)
					}
					return nil
				}),
			)
			return httpapi.ListenAndServe(cmd.Context(), cfg, srv, a.logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")
	return cmd
}
