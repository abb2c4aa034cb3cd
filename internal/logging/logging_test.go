package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	eventbus "github.com/hanpama/schemaext/internal/eventbus"
	events "github.com/hanpama/schemaext/internal/events"
	reqid "github.com/hanpama/schemaext/internal/reqid"
)

func TestNew(t *testing.T) {
	logger, err := New("warn", true)
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = New("loud", false)
	require.Error(t, err)
}

func TestSubscribeLogsEvents(t *testing.T) {
	eventbus.Use(eventbus.New())
	t.Cleanup(func() { eventbus.Use(nil) })

	core, logs := observer.New(zapcore.DebugLevel)
	unsubscribe := Subscribe(zap.New(core))

	ctx, id := reqid.NewContext(context.Background())
	eventbus.Publish(ctx, events.BuildStart{Sources: []string{"a.graphql"}})
	eventbus.Publish(ctx, events.BuildFinish{Sources: []string{"a.graphql"}, Types: 4})
	eventbus.Publish(ctx, events.ValidateFinish{Violations: 2, Err: errors.New("bad")})
	eventbus.Publish(ctx, events.ExtendFinish{Types: 5, Unchanged: true})

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	require.Equal(t, "building schema", entries[0].Message)
	require.Equal(t, "schema built", entries[1].Message)
	require.Equal(t, zapcore.WarnLevel, entries[2].Level)
	require.Equal(t, "schema extended", entries[3].Message)
	require.Equal(t, id, entries[3].ContextMap()["run_id"])
	require.Equal(t, true, entries[3].ContextMap()["unchanged"])

	unsubscribe()
	eventbus.Publish(ctx, events.ExtendStart{})
	require.Equal(t, 4, logs.Len())
}
