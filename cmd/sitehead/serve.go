package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/sitehead/internal/logging"
	"github.com/eringen/sitehead/preview"
)

func newServeCmd() *cobra.Command {
	var (
		src sourceFlags
		cfg preview.Config
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve resolved heads over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, closeSource, err := src.open()
			if err != nil {
				return err
			}
			defer closeSource()

			app := preview.New(cfg, source, preview.WithLogger(*logging.Default()))

			errCh := make(chan error, 1)
			go func() { errCh <- app.Start() }()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := app.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			logging.Default().Info().Msg("preview server stopped")
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&cfg.Addr, "addr", ":3000", "listen address")
	cmd.Flags().StringVar(&cfg.ContentDir, "content", "content", "directory of page sources")
	cmd.Flags().DurationVar(&cfg.CacheTTL, "cache-ttl", time.Minute, "site metadata cache TTL (negative disables)")
	return cmd
}
