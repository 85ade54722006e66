package rabbitmq

import (
	"context"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"feedback_dashboard/internal/config"
	"feedback_dashboard/internal/metrics"
	"feedback_dashboard/internal/model"
	"feedback_dashboard/internal/notify"
)

// headerRecorder builds the headers a real publish would send.
type headerRecorder struct {
	mu      sync.Mutex
	headers []amqp.Table
}

func (r *headerRecorder) Publish(ctx context.Context, _ []byte, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.headers = append(r.headers, publishHeaders(ctx))
	return nil
}

func (r *headerRecorder) published() []amqp.Table {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]amqp.Table(nil), r.headers...)
}

func requestSpanContext(t *testing.T) trace.SpanContext {
	t.Helper()
	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
}

func TestPublishHeadersCarryTraceparent(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	sc := requestSpanContext(t)
	headers := publishHeaders(trace.ContextWithSpanContext(context.Background(), sc))

	traceparent, ok := headers["traceparent"].(string)
	require.True(t, ok)
	require.Contains(t, traceparent, sc.TraceID().String())

	extracted := otel.GetTextMapPropagator().Extract(context.Background(), amqpHeaderCarrier(headers))
	require.Equal(t, sc.TraceID(), trace.SpanContextFromContext(extracted).TraceID())
}

func TestPublishHeadersWithoutSpan(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	headers := publishHeaders(context.Background())
	require.NotContains(t, headers, "traceparent")
}

func TestDispatchedConfirmationKeepsRequestTrace(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recorder := &headerRecorder{}
	cfg := &config.Config{NotifyWorkers: 1, NotifyQueueSize: 4, NotifyTimeout: time.Second}
	d := notify.NewDispatcher(cfg, notify.NewQueueSender(recorder, "feedback.confirmation"), zap.NewNop(), metrics.New())
	go d.Run(ctx)

	// The request context is gone by the time the worker publishes.
	requestCtx, requestDone := context.WithCancel(context.Background())
	sc := requestSpanContext(t)
	require.True(t, d.Dispatch(trace.ContextWithSpanContext(requestCtx, sc),
		model.Confirmation{Email: "u1@example.com", Message: "Great experience here!"}))
	requestDone()

	require.Eventually(t, func() bool { return len(recorder.published()) == 1 }, time.Second, 5*time.Millisecond)
	traceparent, ok := recorder.published()[0]["traceparent"].(string)
	require.True(t, ok)
	require.Contains(t, traceparent, sc.TraceID().String())
}
