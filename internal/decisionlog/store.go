// Package decisionlog keeps the append-only, newest-first history of
// decisions. Entries are never mutated or deleted: audit-trail semantics.
package decisionlog

import (
	"context"

	"guardian/internal/decision"
)

// Store is interface-driven so the in-memory and Redis implementations can
// swap without touching the decision service.
type Store interface {
	// Record prepends a decision; newest-first ordering is preserved.
	Record(ctx context.Context, d decision.Decision) error

	// History returns recorded decisions, newest first.
	History(ctx context.Context) ([]decision.Decision, error)
}
