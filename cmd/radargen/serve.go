package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/radargen/radargen/internal/config"
	"github.com/radargen/radargen/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve radar JSON over HTTP",
		Long: `serve starts an HTTP server exposing the radar builder at
GET /api/radar?sheetId=...|url=...&sheetName=...&height=..., returning the
assembled radar as JSON. Google credentials come from the configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			srcCfg, err := buildSourceConfig(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			handler := server.NewRadarHandler(srcCfg, logger)
			srv := server.New(cfg.Server, handler, logger)

			go func() {
				if err := srv.Run(); err != nil {
					logger.Fatal("server run failed", zap.Error(err))
				}
			}()

			logger.Info("server started", zap.String("addr", cfg.Server.Addr))
			printInfo("serving radar API on %s", cfg.Server.Addr)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			logger.Info("shutting down server")

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("server shutdown failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from configuration)")
	return cmd
}
