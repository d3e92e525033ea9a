// Package ledger owns the subscription roster and the wallet's derived
// statistics. It is the only mutable state in the system, and only its
// Updater mutates it, in response to already-finalized decisions.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is a subscription's lifecycle state.
type Status string

const (
	StatusActive  Status = "active"
	StatusPaused  Status = "paused"
	StatusBlocked Status = "blocked"
)

// Frequency is the billing cadence.
type Frequency string

const (
	FrequencyMonthly  Frequency = "monthly"
	FrequencyAnnually Frequency = "annually"
)

// Subscription is one recurring-payment relationship. Name doubles as the
// case-insensitive matching key for incoming requests. Subscriptions are
// never deleted; decisions only move them between statuses.
type Subscription struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Frequency  Frequency       `json:"frequency"`
	Category   string          `json:"category"`
	LastUsedAt time.Time       `json:"last_used_at"`
	Status     Status          `json:"status"`
	Icon       string          `json:"icon"`
}

// WalletStatistics are the dashboard aggregates. TotalMonthlySpent and
// ActiveSubscriptions are derived fresh from the roster on every read so
// they can never drift from it; SavedThisMonth is a monotonic accumulator.
type WalletStatistics struct {
	Balance             decimal.Decimal `json:"balance"`
	TotalMonthlySpent   decimal.Decimal `json:"total_monthly_spent"`
	ActiveSubscriptions int             `json:"active_subscriptions"`
	SavedThisMonth      decimal.Decimal `json:"saved_this_month"`
}
