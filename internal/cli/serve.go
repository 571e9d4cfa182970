package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/formcatalog/app/api"
	"github.com/dmitrymomot/formcatalog/core/catalog"
	"github.com/dmitrymomot/formcatalog/core/server"
	"github.com/dmitrymomot/formcatalog/forms"
	"github.com/dmitrymomot/formcatalog/middleware"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr        string
		syncOnStart bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalogs over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg := a.cfg.Server
			if addr != "" {
				cfg.Addr = addr
			}
			srv, err := server.NewFromConfig(cfg, server.WithLogger(a.log))
			if err != nil {
				return err
			}

			s, err := openSinks(ctx, a.cfg, a.log, sinkEntries|sinkSnapshots)
			if err != nil {
				return err
			}
			defer s.Close()

			if syncOnStart {
				if err := s.syncer.Run(ctx, forms.All()...); err != nil {
					return err
				}
			}

			opts := []api.Option{
				api.WithLogger(a.log),
				api.WithHealthChecks(s.checks...),
				api.WithDefaultLocale(a.defaultLocale()),
			}
			if len(a.cfg.CORSOrigins) > 0 {
				opts = append(opts, api.WithCORS(middleware.CORSConfig{AllowOrigins: a.cfg.CORSOrigins}))
			}
			h, err := api.New(opts...)
			if err != nil {
				return err
			}

			a.log.InfoContext(ctx, "starting api",
				"addr", cfg.Addr,
				"catalogs", len(forms.All()),
				"default_locale", a.defaultLocale(),
				"locales", catalog.Locales(),
			)

			g, ctx := errgroup.WithContext(ctx)
			g.Go(srv.Run(ctx, h))
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides SERVER_ADDR")
	cmd.Flags().BoolVar(&syncOnStart, "sync", false, "mirror catalogs into the configured databases before serving")
	return cmd
}
