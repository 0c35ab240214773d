package logging

import (
	"context"
	"io"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"go.uber.org/zap"
)

// HertzZapAdapter adapts zap to hertz's hlog.FullLogger interface, so the
// framework's own lines land in the same stream as ours.
type HertzZapAdapter struct {
	logger *zap.SugaredLogger
}

// NewHertzZapAdapter creates a hertz logger backed by l.
func NewHertzZapAdapter(l *zap.Logger) *HertzZapAdapter {
	// Skip one frame so call sites resolve past the adapter.
	return &HertzZapAdapter{logger: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// Trace logs at debug level; zap has no trace level.
func (h *HertzZapAdapter) Trace(v ...interface{}) {
	h.logger.Debug(v...)
}

func (h *HertzZapAdapter) Debug(v ...interface{}) {
	h.logger.Debug(v...)
}

func (h *HertzZapAdapter) Info(v ...interface{}) {
	h.logger.Info(v...)
}

// Notice logs at info level; zap has no notice level.
func (h *HertzZapAdapter) Notice(v ...interface{}) {
	h.logger.Info(v...)
}

func (h *HertzZapAdapter) Warn(v ...interface{}) {
	h.logger.Warn(v...)
}

func (h *HertzZapAdapter) Error(v ...interface{}) {
	h.logger.Error(v...)
}

func (h *HertzZapAdapter) Fatal(v ...interface{}) {
	h.logger.Fatal(v...)
}

func (h *HertzZapAdapter) Tracef(format string, v ...interface{}) {
	h.logger.Debugf(format, v...)
}

func (h *HertzZapAdapter) Debugf(format string, v ...interface{}) {
	h.logger.Debugf(format, v...)
}

func (h *HertzZapAdapter) Infof(format string, v ...interface{}) {
	h.logger.Infof(format, v...)
}

func (h *HertzZapAdapter) Noticef(format string, v ...interface{}) {
	h.logger.Infof(format, v...)
}

func (h *HertzZapAdapter) Warnf(format string, v ...interface{}) {
	h.logger.Warnf(format, v...)
}

func (h *HertzZapAdapter) Errorf(format string, v ...interface{}) {
	h.logger.Errorf(format, v...)
}

func (h *HertzZapAdapter) Fatalf(format string, v ...interface{}) {
	h.logger.Fatalf(format, v...)
}

func (h *HertzZapAdapter) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	h.logger.Debugf(format, v...)
}

func (h *HertzZapAdapter) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	h.logger.Debugf(format, v...)
}

func (h *HertzZapAdapter) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	h.logger.Infof(format, v...)
}

func (h *HertzZapAdapter) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	h.logger.Infof(format, v...)
}

func (h *HertzZapAdapter) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	h.logger.Warnf(format, v...)
}

func (h *HertzZapAdapter) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	h.logger.Errorf(format, v...)
}

func (h *HertzZapAdapter) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	h.logger.Fatalf(format, v...)
}

// SetLevel is a no-op; the level is fixed by the zap config.
func (h *HertzZapAdapter) SetLevel(level hlog.Level) {}

// SetOutput is a no-op; the output is fixed by the zap config.
func (h *HertzZapAdapter) SetOutput(w io.Writer) {}
