// Package telemetry provides the engine's ambient logging and metrics:
// structured zap logging and a periodic Prometheus snapshot exporter
// over a Graph's counters. Neither is on the data-plane hot path;
// Insert/Contains/FindPattern/Validate never call into this package
// themselves.
package telemetry

import (
	"go.uber.org/zap"
)

// NewLogger builds a zap.Logger suited to the given environment name.
// "production" yields JSON output at info level; anything else
// (including the empty string) yields the human-readable development
// encoder at debug level.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		cfg := zap.NewProductionConfig()
		return cfg.Build()
	}
	cfg := zap.NewDevelopmentConfig()
	return cfg.Build()
}

// Fields is a small convenience alias so callers outside this package
// don't need their own zap import just to build log fields.
type Fields = []zap.Field
