// Package radar builds renderer-ready technology radars from spreadsheet
// sources.
package radar

import "go.uber.org/zap"

// Options configures a build.
type Options struct {
	// Logger receives structured pipeline progress. If nil, the build is
	// silent.
	Logger *zap.Logger
}

// DefaultOptions returns default build options.
func DefaultOptions() Options {
	return Options{}
}

// logger returns the configured logger, or a no-op one.
func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
