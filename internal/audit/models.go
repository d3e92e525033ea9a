// Package audit captures an append-only trail of guardian activity. Events
// are emitted from domain logic into an in-process inbox and drained by a
// worker into the configured sink, so the decision path never blocks on
// audit delivery.
package audit

import "time"

// Actions recorded in the audit trail.
const (
	ActionDecisionEvaluated = "decision_evaluated"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp  time.Time `json:"timestamp"`
	Action     string    `json:"action"`
	DecisionID string    `json:"decision_id,omitempty"`
	Merchant   string    `json:"merchant,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	Decision   string    `json:"decision,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
}
