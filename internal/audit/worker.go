package audit

import (
	"context"
	"log/slog"
	"time"
)

// timeNow is swapped in tests to make timestamps deterministic.
var timeNow = time.Now

// Sink receives drained audit events.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Worker consumes audit events from the inbox and forwards them to the
// sink. A sink failure is logged and the worker keeps running; audit is
// best-effort.
type Worker struct {
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

// NewWorker wires a sink to the inbox.
func NewWorker(sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

// Run drains the inbox until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.sink.Append(ctx, event); err != nil {
				w.logger.WarnContext(ctx, "failed to append audit event",
					"action", event.Action,
					"error", err,
				)
			}
		}
	}
}
