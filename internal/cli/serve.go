package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"message_board/internal/api"
	"message_board/internal/service"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, repos, err := opts.bootstrap()
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Server.Address = address
			}

			if err := repos.Message.EnsureSchema(cmd.Context()); err != nil {
				return fmt.Errorf("initialize database: %w", err)
			}

			gin.SetMode(cfg.Server.Mode)
			services := service.NewServices(repos, cfg.Board)
			srv := &http.Server{
				Addr:    cfg.Server.Address,
				Handler: api.NewRouter(logger, services),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening", "address", cfg.Server.Address, "driver", cfg.DB.Driver)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("run server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&address, "addr", "", "listen address, overrides server.address")
	return cmd
}
