package ledger

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"guardian/internal/decision"
)

// Ledger holds the subscription roster and wallet accumulators behind a
// single lock. Readers get copies; the Updater is the sole writer.
type Ledger struct {
	mu      sync.RWMutex
	subs    []*Subscription
	balance decimal.Decimal
	saved   decimal.Decimal
	applied map[string]struct{}
}

// New seeds a ledger with the roster and opening accumulators. The roster
// order is preserved for listing.
func New(seed []Subscription, balance, saved decimal.Decimal) *Ledger {
	subs := make([]*Subscription, 0, len(seed))
	for i := range seed {
		s := seed[i]
		subs = append(subs, &s)
	}
	return &Ledger{
		subs:    subs,
		balance: balance,
		saved:   saved,
		applied: make(map[string]struct{}),
	}
}

// Subscriptions returns the roster in seed order.
func (l *Ledger) Subscriptions() []Subscription {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Subscription, 0, len(l.subs))
	for _, s := range l.subs {
		out = append(out, *s)
	}
	return out
}

// FindByName looks up a subscription by its case-insensitive name. Not
// finding one is a normal outcome, not an error.
func (l *Ledger) FindByName(name string) (Subscription, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if s := l.findLocked(name); s != nil {
		return *s, true
	}
	return Subscription{}, false
}

// ActiveMonthlyTotal sums amounts over active subscriptions only, computed
// fresh on every call.
func (l *Ledger) ActiveMonthlyTotal() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.activeTotalLocked()
}

// Stats derives the wallet statistics from the current roster.
func (l *Ledger) Stats() WalletStatistics {
	l.mu.RLock()
	defer l.mu.RUnlock()

	active := 0
	for _, s := range l.subs {
		if s.Status == StatusActive {
			active++
		}
	}
	return WalletStatistics{
		Balance:             l.balance,
		TotalMonthlySpent:   l.activeTotalLocked(),
		ActiveSubscriptions: active,
		SavedThisMonth:      l.saved,
	}
}

// Snapshot captures the active monthly total and the matched subscription
// under one lock acquisition, so an evaluation never sees a half-applied
// mutation.
func (l *Ledger) Snapshot(merchant string) decision.LedgerSnapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snap := decision.LedgerSnapshot{
		ActiveMonthlyTotal: l.activeTotalLocked(),
	}
	if s := l.findLocked(merchant); s != nil {
		snap.Match = &decision.SubscriptionMatch{
			Name:   s.Name,
			Amount: s.Amount,
			State:  decision.SubscriptionState(s.Status),
		}
	}
	return snap
}

func (l *Ledger) activeTotalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, s := range l.subs {
		if s.Status == StatusActive {
			total = total.Add(s.Amount)
		}
	}
	return total
}

func (l *Ledger) findLocked(name string) *Subscription {
	name = strings.TrimSpace(name)
	for _, s := range l.subs {
		if strings.EqualFold(s.Name, name) {
			return s
		}
	}
	return nil
}
