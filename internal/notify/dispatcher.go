package notify

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"feedback_dashboard/internal/config"
	"feedback_dashboard/internal/metrics"
	"feedback_dashboard/internal/model"
)

var tracer = otel.Tracer("feedback_dashboard/notify")

type Sender interface {
	Send(ctx context.Context, confirmation model.Confirmation) error
}

// Dispatcher runs confirmations on a pool of workers detached from the
// request that produced them. Outcomes are logged and counted, never
// reported back to the caller.
type Dispatcher struct {
	jobs    chan job
	sender  Sender
	workers int
	timeout time.Duration
	log     *zap.Logger
	metrics *metrics.Metrics
}

func NewDispatcher(cfg *config.Config, sender Sender, logger *zap.Logger, m *metrics.Metrics) *Dispatcher {
	workers := cfg.NotifyWorkers
	if workers < 1 {
		workers = 1
	}
	size := cfg.NotifyQueueSize
	if size < 1 {
		size = 1
	}
	timeout := cfg.NotifyTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{
		jobs:    make(chan job, size),
		sender:  sender,
		workers: workers,
		timeout: timeout,
		log:     logger,
		metrics: m,
	}
}

// job carries the span of the submitting request. Only the span context is
// kept so the send links to the request trace without holding its context,
// which is cancelled once the response is written.
type job struct {
	confirmation model.Confirmation
	parent       trace.SpanContext
}

// Dispatch never blocks. It returns false when the queue is full and the
// confirmation was dropped.
func (d *Dispatcher) Dispatch(ctx context.Context, confirmation model.Confirmation) bool {
	select {
	case d.jobs <- job{confirmation: confirmation, parent: trace.SpanContextFromContext(ctx)}:
		return true
	default:
		d.log.Warn("notification queue full, confirmation dropped", zap.String("email", confirmation.Email))
		d.metrics.Notification(metrics.ResultDropped)
		return false
	}
}

// Run blocks until ctx is done. Confirmations still queued at that point are
// dropped.
func (d *Dispatcher) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.work(ctx)
		}()
	}
	wg.Wait()
}

func (d *Dispatcher) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-d.jobs:
			d.deliver(ctx, j)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, j job) {
	confirmation := j.confirmation
	if j.parent.IsValid() {
		ctx = trace.ContextWithSpanContext(ctx, j.parent)
	}
	ctx, span := tracer.Start(ctx, "notify.send_confirmation",
		trace.WithAttributes(attribute.String("feedback.email", confirmation.Email)),
	)
	defer span.End()

	defer func() {
		if recovered := recover(); recovered != nil {
			d.log.Error("notification sender panicked",
				zap.Any("error", recovered),
				zap.String("email", confirmation.Email),
			)
			span.SetStatus(codes.Error, "sender panicked")
			d.metrics.Notification(metrics.ResultFailed)
		}
	}()

	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	if err := d.sender.Send(sendCtx, confirmation); err != nil {
		d.log.Warn("notification failed", zap.String("email", confirmation.Email), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		d.metrics.Notification(metrics.ResultFailed)
		return
	}
	d.metrics.Notification(metrics.ResultSent)
}
