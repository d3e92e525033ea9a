package audit

import (
	"context"
	"log/slog"
)

// Publisher hands events to the worker's inbox without blocking the caller.
// When the inbox is full the event is dropped with a warning; audit delivery
// must never stall a decision.
type Publisher struct {
	inbox  chan<- Event
	logger *slog.Logger
}

// NewPublisher wraps the worker inbox.
func NewPublisher(inbox chan<- Event, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{inbox: inbox, logger: logger}
}

// Emit enqueues an event, stamping the time if unset.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = timeNow()
	}
	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "audit inbox full, dropping event",
			"action", event.Action,
			"decision_id", event.DecisionID,
		)
	}
	return nil
}
