// Package logging logs schema build and extension events with zap.
package logging

import (
	"context"
	"fmt"

	eventbus "github.com/hanpama/schemaext/internal/eventbus"
	events "github.com/hanpama/schemaext/internal/events"
	reqid "github.com/hanpama/schemaext/internal/reqid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger writing to stderr. level is a zap level name such as
// "debug" or "info"; json selects the production JSON encoder over the
// console encoder.
func New(level string, json bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	if json {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// Subscribe logs every build, validate and extend event published on the
// global bus. The returned function removes the subscriptions.
func Subscribe(logger *zap.Logger) (unsubscribe func()) {
	unsubs := []func(){
		eventbus.Subscribe(func(ctx context.Context, e events.BuildStart) {
			logger.Debug("building schema", runID(ctx), zap.Strings("sources", e.Sources))
		}),
		eventbus.Subscribe(func(ctx context.Context, e events.BuildFinish) {
			fields := []zap.Field{runID(ctx), zap.Strings("sources", e.Sources), zap.Int("types", e.Types), zap.Duration("duration", e.Duration)}
			if e.Err != nil {
				logger.Error("schema build failed", append(fields, zap.Error(e.Err))...)
				return
			}
			logger.Info("schema built", fields...)
		}),
		eventbus.Subscribe(func(ctx context.Context, e events.ValidateFinish) {
			fields := []zap.Field{runID(ctx), zap.Strings("sources", e.Sources), zap.Int("violations", e.Violations), zap.Duration("duration", e.Duration)}
			if e.Err != nil {
				logger.Warn("extension document is invalid", append(fields, zap.Error(e.Err))...)
				return
			}
			logger.Info("extension document validated", fields...)
		}),
		eventbus.Subscribe(func(ctx context.Context, e events.ExtendStart) {
			logger.Debug("extending schema", runID(ctx), zap.Strings("sources", e.Sources))
		}),
		eventbus.Subscribe(func(ctx context.Context, e events.ExtendFinish) {
			fields := []zap.Field{
				runID(ctx),
				zap.Strings("sources", e.Sources),
				zap.Int("types", e.Types),
				zap.Int("directives", e.Directives),
				zap.Bool("unchanged", e.Unchanged),
				zap.Duration("duration", e.Duration),
			}
			if e.Err != nil {
				logger.Error("schema extension failed", append(fields, zap.Error(e.Err))...)
				return
			}
			logger.Info("schema extended", fields...)
		}),
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}

func runID(ctx context.Context) zap.Field {
	id, _ := reqid.FromContext(ctx)
	return zap.String("run_id", id)
}
