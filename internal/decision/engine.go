// Package decision implements the transaction authorization engine: a pure,
// deterministic rule cascade over a spending policy and a ledger snapshot.
package decision

import (
	"fmt"

	"guardian/internal/policy"
)

// Engine evaluates a transaction request against the spending policy and a
// consistent ledger snapshot. It is pure: no I/O, no side effects, and the
// same inputs always produce the same outcome.
type Engine struct{}

// NewEngine constructs the rule-cascade engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs the ordered rule cascade; the first matching rule wins.
//
// Rule order (the order itself resolves conflicting simultaneous matches):
//  1. Trust check - untrusted and unknown merchants are flagged; the flag
//     colors later reasoning but is not terminal on its own.
//  2. Per-subscription ceiling - amount above maxPerSubscription blocks.
//  3. Monthly cap - active total plus amount above monthlyCap blocks.
//  4. Paused reactivation - a paused matching subscription asks the user.
//     This deliberately outranks the trust fallback: a paused subscription
//     is a known relationship, so reactivation confirmation is the right
//     question even for an untrusted merchant.
//  5. Trial-conversion guard - untrusted trial conversions block when the
//     policy says so.
//  6. Default approval - trusted or known non-paused merchants within
//     limits are approved.
//  7. Fallback - an untrusted merchant with no policy breach defers to
//     human judgment.
//
// Cap comparisons are strict: equality to a cap is allowed.
func (e *Engine) Evaluate(req TransactionRequest, pol policy.SpendingPolicy, snap LedgerSnapshot) Outcome {
	trusted := pol.IsTrusted(req.MerchantName)
	known := snap.Match != nil
	untrusted := !trusted && !known

	riskNote := ""
	if untrusted {
		riskNote = fmt.Sprintf(" %s is not a trusted merchant and has no subscription on file.", req.MerchantName)
	}

	if req.Amount.GreaterThan(pol.MaxPerSubscription) {
		return Outcome{
			Status:         StatusBlock,
			PolicyViolated: ViolationMaxPerSubscription,
			Reasoning: fmt.Sprintf(
				"Blocked: the $%s charge exceeds the $%s per-subscription limit.%s",
				req.Amount.StringFixed(2), pol.MaxPerSubscription.StringFixed(2), riskNote,
			),
		}
	}

	if snap.ActiveMonthlyTotal.Add(req.Amount).GreaterThan(pol.MonthlyCap) {
		return Outcome{
			Status:         StatusBlock,
			PolicyViolated: ViolationMonthlyCap,
			Reasoning: fmt.Sprintf(
				"Blocked: approving $%s on top of the current $%s monthly spend would exceed the $%s monthly cap.%s",
				req.Amount.StringFixed(2), snap.ActiveMonthlyTotal.StringFixed(2), pol.MonthlyCap.StringFixed(2), riskNote,
			),
		}
	}

	if known && snap.Match.State == SubscriptionPaused {
		return Outcome{
			Status: StatusAsk,
			Reasoning: fmt.Sprintf(
				"%s is currently paused. Confirm whether you want to reactivate it for $%s/month before this charge goes through.",
				snap.Match.Name, req.Amount.StringFixed(2),
			),
		}
	}

	if req.IsTrialConversion && !trusted && pol.AutoBlockTrialConversion {
		return Outcome{
			Status:         StatusBlock,
			PolicyViolated: ViolationAutoBlockTrialConversion,
			Reasoning: fmt.Sprintf(
				"Blocked: %s is converting a free trial into a $%s recurring charge and is not a trusted merchant. Silent trial conversions are blocked by policy.",
				req.MerchantName, req.Amount.StringFixed(2),
			),
		}
	}

	if !untrusted {
		return Outcome{
			Status: StatusApprove,
			Reasoning: fmt.Sprintf(
				"Approved: %s is a recognized merchant and the $%s charge stays within both the per-subscription limit and the monthly cap.",
				req.MerchantName, req.Amount.StringFixed(2),
			),
		}
	}

	return Outcome{
		Status:   StatusAsk,
		fallback: true,
		Reasoning: fmt.Sprintf(
			"%s is not a trusted merchant and has no subscription on file, but the $%s charge breaks no spending rule. Deferring to you for judgment.",
			req.MerchantName, req.Amount.StringFixed(2),
		),
	}
}
