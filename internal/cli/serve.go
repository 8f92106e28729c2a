package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"deckflow/internal/api"
	"deckflow/pkg/cache"
	"deckflow/pkg/pipeline"
)

// serveCommand creates the serve command: run the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the deckflow HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newServeCache(cmd.Context(), redisAddr, noCache)
			if err != nil {
				return err
			}
			// Shared Redis instances get app-scoped keys so several
			// deployments can back onto one server.
			var keyer cache.Keyer
			if redisAddr != "" {
				keyer = cache.NewScopedKeyer(nil, appName+":")
			}
			runner := pipeline.NewRunner(store, keyer, c.Logger)
			defer runner.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           api.NewRouter(runner, c.Logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
				c.Logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for shared caching (e.g. localhost:6379)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// newServeCache picks the cache backend for server mode: Redis when an
// address is given, the file cache otherwise.
func (c *CLI) newServeCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		store, err := cache.NewRedisCache(ctx, redisAddr)
		if err != nil {
			return nil, err
		}
		c.Logger.Info("using redis cache", "addr", redisAddr)
		return store, nil
	}
	return newCache(false)
}
