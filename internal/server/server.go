// Package server exposes the radar builder over HTTP.
package server

import (
	hzserver "github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"go.uber.org/zap"

	"github.com/radargen/radargen/internal/config"
	"github.com/radargen/radargen/internal/logging"
)

// New builds the hertz server with middleware and routes registered. The
// framework logs through the same zap logger as the application.
func New(cfg config.ServerConfig, h *RadarHandler, logger *zap.Logger) *hzserver.Hertz {
	hlog.SetLogger(logging.NewHertzZapAdapter(logger))

	srv := hzserver.Default(
		hzserver.WithHostPorts(cfg.Addr),
		hzserver.WithReadTimeout(cfg.ReadTimeout()),
		hzserver.WithWriteTimeout(cfg.WriteTimeout()),
		hzserver.WithTransport(netpoll.NewTransporter),
	)

	srv.Use(Recovery(logger))
	srv.Use(Logger(logger))

	srv.GET("/ping", Ping)

	api := srv.Group("/api")
	api.GET("/radar", h.Get)

	return srv
}
