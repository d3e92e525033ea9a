package policy

import (
	"sync"

	pstrings "guardian/pkg/platform/strings"
)

// Store exposes an immutable-per-evaluation view of the spending policy.
// Only configuration flows may replace the policy; the decision path reads
// snapshots.
type Store struct {
	mu      sync.RWMutex
	current SpendingPolicy
}

// NewStore seeds the store with an initial policy.
func NewStore(p SpendingPolicy) *Store {
	return &Store{current: normalize(p)}
}

// normalize trims and dedupes the trusted-merchant list so membership
// checks see one clean entry per merchant.
func normalize(p SpendingPolicy) SpendingPolicy {
	out := p.clone()
	out.TrustedMerchants = pstrings.DedupeAndTrim(out.TrustedMerchants)
	return out
}

// Current returns a snapshot of the active policy.
func (s *Store) Current() SpendingPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.clone()
}

// Replace swaps in a new policy. In-flight evaluations keep the snapshot
// they already took.
func (s *Store) Replace(p SpendingPolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = normalize(p)
}
