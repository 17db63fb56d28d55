package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/labelforge/labelforge/internal/server"
)

// serveCommand creates the serve command, which runs the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve label previews over HTTP",
		Long: `Serve label previews over HTTP.

The server renders PNG previews from query parameters mirroring the CLI flags:

  GET /preview?text=hello&text=world&frame_width_px=2
  GET /preview?qr=https://example.com&justify=center
  GET /healthz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(c.Logger, newCache(noCache))

			httpServer := &http.Server{
				Addr:              addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			// Shut down gracefully when the signal context is canceled.
			ctx := cmd.Context()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = httpServer.Shutdown(shutdownCtx)
			}()

			c.Logger.Infof("Listening on %s", addr)
			if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return ctx.Err()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the preview response cache")

	return cmd
}
