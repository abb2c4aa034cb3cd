package otel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	eventbus "github.com/hanpama/schemaext/internal/eventbus"
	events "github.com/hanpama/schemaext/internal/events"
	reqid "github.com/hanpama/schemaext/internal/reqid"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := Setup("", "schemaext")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSubscriberSpans(t *testing.T) {
	eventbus.Use(eventbus.New())
	t.Cleanup(func() { eventbus.Use(nil) })

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	sub := &subscriber{tracer: tp.Tracer("test")}
	sub.register()

	ctx, _ := reqid.NewContext(context.Background())
	eventbus.Publish(ctx, events.BuildStart{Sources: []string{"base.graphql"}})
	eventbus.Publish(ctx, events.BuildFinish{Types: 3})
	eventbus.Publish(ctx, events.ExtendStart{Sources: []string{"ext.graphql"}})
	eventbus.Publish(ctx, events.ValidateFinish{Violations: 1})
	eventbus.Publish(ctx, events.ExtendFinish{Err: errors.New("invalid")})

	ended := rec.Ended()
	require.Len(t, ended, 2)
	require.Equal(t, "schemaext.build", ended[0].Name())
	require.Equal(t, "schemaext.extend", ended[1].Name())
	require.Equal(t, codes.Error, ended[1].Status().Code)
	require.Len(t, ended[1].Events(), 2)
}
