package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"guardian/internal/decision"
)

// Updater is the single designated mutator of the ledger. It applies each
// finalized decision exactly once: a status transition for a matching
// subscription, and savings accrual for BLOCK and PAUSE outcomes.
type Updater struct {
	ledger *Ledger
	logger *slog.Logger
}

type UpdaterOption func(*Updater)

func WithLogger(logger *slog.Logger) UpdaterOption {
	return func(u *Updater) {
		u.logger = logger
	}
}

func NewUpdater(ledger *Ledger, opts ...UpdaterOption) (*Updater, error) {
	if ledger == nil {
		return nil, fmt.Errorf("ledger is required")
	}
	u := &Updater{
		ledger: ledger,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// Apply mutates the ledger per the decision's status mapping: BLOCK ->
// blocked, PAUSE -> paused, APPROVE -> active; ASK changes nothing. A
// decision targeting a merchant with no subscription is a no-op status
// mutation and savings still accrue. Re-applying a decision id is a no-op,
// so savings can never double-count.
func (u *Updater) Apply(ctx context.Context, d decision.Decision) error {
	if d.ID == "" {
		return fmt.Errorf("decision id is required")
	}

	u.ledger.mu.Lock()
	defer u.ledger.mu.Unlock()

	if _, done := u.ledger.applied[d.ID]; done {
		u.logger.DebugContext(ctx, "decision already applied, skipping",
			"decision_id", d.ID,
		)
		return nil
	}
	u.ledger.applied[d.ID] = struct{}{}

	if next, ok := statusFor(d.Status); ok {
		if sub := u.ledger.findLocked(d.MerchantName); sub != nil {
			sub.Status = next
		}
	}

	if d.Status == decision.StatusBlock || d.Status == decision.StatusPause {
		// Exact decimal accumulation, rounded to currency precision at
		// the accrual boundary.
		u.ledger.saved = u.ledger.saved.Add(d.Amount.Round(2))
	}

	return nil
}

// statusFor maps a decision status to the subscription transition it
// forces. ASK forces nothing: it awaits human confirmation.
func statusFor(s decision.Status) (Status, bool) {
	switch s {
	case decision.StatusApprove:
		return StatusActive, true
	case decision.StatusBlock:
		return StatusBlocked, true
	case decision.StatusPause:
		return StatusPaused, true
	default:
		return "", false
	}
}
