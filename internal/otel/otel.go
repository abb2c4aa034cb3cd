package otel

import (
	"context"
	"sync"

	eventbus "github.com/hanpama/schemaext/internal/eventbus"
	events "github.com/hanpama/schemaext/internal/events"
	reqid "github.com/hanpama/schemaext/internal/reqid"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Setup configures OpenTelemetry and attaches eventbus subscribers.
// If endpoint is empty, no telemetry is configured.
func Setup(endpoint, service string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	sub := &subscriber{tracer: otel.Tracer("schemaext")}
	sub.register()

	return tp.Shutdown, nil
}

type subscriber struct {
	tracer      trace.Tracer
	buildSpans  sync.Map // rid -> trace.Span
	extendSpans sync.Map // rid -> trace.Span
}

func (s *subscriber) register() {
	eventbus.Subscribe(func(ctx context.Context, e events.BuildStart) {
		rid, _ := reqid.FromContext(ctx)
		_, span := s.tracer.Start(ctx, "schemaext.build")
		span.SetAttributes(
			attribute.String("schemaext.run_id", rid),
			attribute.StringSlice("schemaext.sources", e.Sources),
		)
		s.buildSpans.Store(rid, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.BuildFinish) {
		rid, _ := reqid.FromContext(ctx)
		v, ok := s.buildSpans.LoadAndDelete(rid)
		if !ok {
			return
		}
		span := v.(trace.Span)
		span.SetAttributes(attribute.Int("schemaext.type_count", e.Types))
		endSpan(span, e.Err)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.ExtendStart) {
		rid, _ := reqid.FromContext(ctx)
		_, span := s.tracer.Start(ctx, "schemaext.extend")
		span.SetAttributes(
			attribute.String("schemaext.run_id", rid),
			attribute.StringSlice("schemaext.sources", e.Sources),
		)
		s.extendSpans.Store(rid, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.ValidateFinish) {
		rid, _ := reqid.FromContext(ctx)
		if v, ok := s.extendSpans.Load(rid); ok {
			v.(trace.Span).AddEvent("validated", trace.WithAttributes(
				attribute.Int("schemaext.violation_count", e.Violations),
			))
		}
	})

	eventbus.Subscribe(func(ctx context.Context, e events.ExtendFinish) {
		rid, _ := reqid.FromContext(ctx)
		v, ok := s.extendSpans.LoadAndDelete(rid)
		if !ok {
			return
		}
		span := v.(trace.Span)
		span.SetAttributes(
			attribute.Int("schemaext.type_count", e.Types),
			attribute.Int("schemaext.directive_count", e.Directives),
			attribute.Bool("schemaext.unchanged", e.Unchanged),
		)
		endSpan(span, e.Err)
	})
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
