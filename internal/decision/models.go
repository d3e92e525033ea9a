package decision

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status classifies the engine's verdict on a transaction request.
type Status string

const (
	StatusApprove Status = "APPROVE"
	StatusBlock   Status = "BLOCK"
	StatusPause   Status = "PAUSE"
	StatusAsk     Status = "ASK"
)

// Policy rule identifiers cited on blocking decisions.
const (
	ViolationMaxPerSubscription       = "maxPerSubscription"
	ViolationMonthlyCap               = "monthlyCap"
	ViolationAutoBlockTrialConversion = "autoBlockTrialConversion"
)

// ReasoningSafetyFallback is returned on an ASK when the advisory service
// was supposed to weigh in but errored or timed out. Fixed wording so the
// fail-safe path is recognizable in history and logs.
const ReasoningSafetyFallback = "Policy evaluation could not complete a merchant risk assessment. Deferring to manual approval for safety."

// TransactionRequest is one incoming recurring-payment request. It is
// ephemeral: constructed per evaluation and never persisted.
type TransactionRequest struct {
	MerchantName      string
	Amount            decimal.Decimal
	IsTrialConversion bool
}

// SubscriptionState mirrors the ledger's lifecycle status without importing
// the ledger package, keeping the engine free of state dependencies.
type SubscriptionState string

const (
	SubscriptionActive  SubscriptionState = "active"
	SubscriptionPaused  SubscriptionState = "paused"
	SubscriptionBlocked SubscriptionState = "blocked"
)

// SubscriptionMatch is the ledger's view of an existing subscription whose
// name matches the request's merchant (case-insensitive).
type SubscriptionMatch struct {
	Name   string
	Amount decimal.Decimal
	State  SubscriptionState
}

// LedgerSnapshot is the internally-consistent read the engine evaluates
// against. It is taken atomically before rule evaluation begins so a
// concurrent mutation can never straddle one evaluation.
type LedgerSnapshot struct {
	// ActiveMonthlyTotal sums the amounts of active subscriptions only.
	ActiveMonthlyTotal decimal.Decimal
	// Match is nil when no subscription carries the merchant's name.
	Match *SubscriptionMatch
}

// Outcome is the engine's raw verdict before it is stamped into a Decision.
type Outcome struct {
	Status         Status
	Reasoning      string
	PolicyViolated string

	// fallback marks the ambiguous-merchant ASK path, the only outcome
	// the advisory signal may enrich.
	fallback bool
}

// Fallback reports whether this outcome came from the ambiguity fallback
// rather than a deterministic rule.
func (o Outcome) Fallback() bool {
	return o.fallback
}

// Decision is the immutable record of one evaluation. It is created exactly
// once, appended to the decision log, and applied exactly once to the ledger.
type Decision struct {
	ID             string          `json:"id"`
	Timestamp      time.Time       `json:"timestamp"`
	MerchantName   string          `json:"merchant_name"`
	Amount         decimal.Decimal `json:"amount"`
	Status         Status          `json:"status"`
	Reasoning      string          `json:"reasoning"`
	PolicyViolated string          `json:"policy_violated,omitempty"`
}

// Advice is the optional signal from the external merchant-risk advisory
// service. It colors reasoning on ambiguous outcomes and nothing else.
type Advice struct {
	Risk string `json:"risk"`
	Note string `json:"note"`
}
