// Package policy holds the wallet's spending policy. The policy is pure data:
// evaluation logic lives in the decision engine, which receives an immutable
// snapshot per evaluation.
package policy

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SpendingPolicy constrains what recurring charges the wallet will accept.
type SpendingPolicy struct {
	// MonthlyCap is the ceiling on total active monthly subscription spend.
	MonthlyCap decimal.Decimal
	// MaxPerSubscription is the ceiling on a single recurring charge.
	MaxPerSubscription decimal.Decimal
	// TrustedMerchants are exempt from the untrusted-merchant checks.
	// Matching is case-insensitive and exact.
	TrustedMerchants []string
	// AutoBlockTrialConversion blocks trial-to-paid conversions from
	// merchants outside the trusted set.
	AutoBlockTrialConversion bool
	// InactivityThresholdDays marks a subscription as idle once its last
	// use is older than this many days.
	InactivityThresholdDays int
}

// IsTrusted reports whether the merchant is in the trusted set.
func (p SpendingPolicy) IsTrusted(merchant string) bool {
	merchant = strings.TrimSpace(merchant)
	for _, m := range p.TrustedMerchants {
		if strings.EqualFold(m, merchant) {
			return true
		}
	}
	return false
}

// clone returns a deep copy so snapshots cannot alias store state.
func (p SpendingPolicy) clone() SpendingPolicy {
	out := p
	out.TrustedMerchants = append([]string(nil), p.TrustedMerchants...)
	return out
}
