package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/psidex/graphed/internal/ui"
	"github.com/psidex/graphed/internal/webserver"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(ro *rootOptions) *cobra.Command {
	var address, staticDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the editor to a browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := ro.load()
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Server.Address = address
			}
			if staticDir != "" {
				cfg.Server.StaticDir = staticDir
			}

			srv, err := webserver.NewServer(cfg, log)
			if err != nil {
				return err
			}

			httpServer := &http.Server{
				Addr:              cfg.Server.Address,
				Handler:           srv,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				_ = httpServer.Shutdown(shutdownCtx)
			}()

			ui.Banner(cmd.OutOrStdout(), "editor on "+ui.Info.Sprint("http://"+cfg.Server.Address))
			log.Info("Listening", "address", cfg.Server.Address)

			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&address, "bind", "b", "", "the ip:port to bind the webserver to")
	cmd.Flags().StringVarP(&staticDir, "static", "d", "", "serve the editor page from this directory instead")
	return cmd
}
