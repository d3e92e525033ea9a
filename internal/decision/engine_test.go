package decision

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardian/internal/policy"
)

// =============================================================================
// Decision Engine Tests
// =============================================================================

func testPolicy() policy.SpendingPolicy {
	return policy.SpendingPolicy{
		MonthlyCap:               decimal.NewFromInt(150),
		MaxPerSubscription:       decimal.NewFromInt(50),
		TrustedMerchants:         []string{"Netflix", "Spotify", "AWS Cloud"},
		AutoBlockTrialConversion: true,
		InactivityThresholdDays:  30,
	}
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func snap(activeTotal string, match *SubscriptionMatch) LedgerSnapshot {
	return LedgerSnapshot{
		ActiveMonthlyTotal: amt(activeTotal),
		Match:              match,
	}
}

func TestEngine_PerSubscriptionCeiling(t *testing.T) {
	engine := NewEngine()

	t.Run("blocks above the cap regardless of trust", func(t *testing.T) {
		out := engine.Evaluate(TransactionRequest{MerchantName: "Netflix", Amount: amt("60")}, testPolicy(), snap("74.98", nil))
		assert.Equal(t, StatusBlock, out.Status)
		assert.Equal(t, ViolationMaxPerSubscription, out.PolicyViolated)
	})

	t.Run("blocks untrusted unknown merchant and cites the risk", func(t *testing.T) {
		out := engine.Evaluate(TransactionRequest{MerchantName: "StreamFlix", Amount: amt("60")}, testPolicy(), snap("74.98", nil))
		assert.Equal(t, StatusBlock, out.Status)
		assert.Equal(t, ViolationMaxPerSubscription, out.PolicyViolated)
		assert.Contains(t, out.Reasoning, "not a trusted merchant")
	})

	t.Run("equality to the cap is allowed", func(t *testing.T) {
		out := engine.Evaluate(TransactionRequest{MerchantName: "Netflix", Amount: amt("50")}, testPolicy(), snap("74.98", nil))
		assert.Equal(t, StatusApprove, out.Status)
	})
}

func TestEngine_MonthlyCap(t *testing.T) {
	engine := NewEngine()

	t.Run("blocks when active total plus amount exceeds the cap", func(t *testing.T) {
		out := engine.Evaluate(TransactionRequest{MerchantName: "Netflix", Amount: amt("46")}, testPolicy(), snap("104.98", nil))
		assert.Equal(t, StatusBlock, out.Status)
		assert.Equal(t, ViolationMonthlyCap, out.PolicyViolated)
	})

	t.Run("landing exactly on the cap is allowed", func(t *testing.T) {
		out := engine.Evaluate(TransactionRequest{MerchantName: "Netflix", Amount: amt("50")}, testPolicy(), snap("100", nil))
		assert.Equal(t, StatusApprove, out.Status)
	})

	t.Run("per-subscription ceiling outranks the monthly cap", func(t *testing.T) {
		out := engine.Evaluate(TransactionRequest{MerchantName: "Netflix", Amount: amt("60")}, testPolicy(), snap("149", nil))
		assert.Equal(t, ViolationMaxPerSubscription, out.PolicyViolated)
	})
}

func TestEngine_PausedReactivation(t *testing.T) {
	engine := NewEngine()

	// Midjourney is untrusted and paused. Reactivation outranks the trust
	// fallback, so the answer is a reactivation ASK.
	t.Run("paused subscription asks for reactivation", func(t *testing.T) {
		match := &SubscriptionMatch{Name: "Midjourney", Amount: amt("30.00"), State: SubscriptionPaused}
		out := engine.Evaluate(TransactionRequest{MerchantName: "Midjourney", Amount: amt("30")}, testPolicy(), snap("74.98", match))
		assert.Equal(t, StatusAsk, out.Status)
		assert.Empty(t, out.PolicyViolated)
		assert.Contains(t, out.Reasoning, "paused")
		assert.False(t, out.Fallback())
	})

	t.Run("cap breaches still outrank reactivation", func(t *testing.T) {
		match := &SubscriptionMatch{Name: "Midjourney", Amount: amt("30.00"), State: SubscriptionPaused}
		out := engine.Evaluate(TransactionRequest{MerchantName: "Midjourney", Amount: amt("80")}, testPolicy(), snap("74.98", match))
		assert.Equal(t, StatusBlock, out.Status)
		assert.Equal(t, ViolationMaxPerSubscription, out.PolicyViolated)
	})
}

func TestEngine_TrialConversionGuard(t *testing.T) {
	engine := NewEngine()

	t.Run("untrusted trial conversion blocks when the policy says so", func(t *testing.T) {
		out := engine.Evaluate(TransactionRequest{MerchantName: "SketchyApp", Amount: amt("9.99"), IsTrialConversion: true}, testPolicy(), snap("74.98", nil))
		assert.Equal(t, StatusBlock, out.Status)
		assert.Equal(t, ViolationAutoBlockTrialConversion, out.PolicyViolated)
	})

	t.Run("trusted trial conversion approves", func(t *testing.T) {
		out := engine.Evaluate(TransactionRequest{MerchantName: "Spotify", Amount: amt("9.99"), IsTrialConversion: true}, testPolicy(), snap("74.98", nil))
		assert.Equal(t, StatusApprove, out.Status)
	})

	t.Run("guard is off when the policy disables it", func(t *testing.T) {
		pol := testPolicy()
		pol.AutoBlockTrialConversion = false
		out := engine.Evaluate(TransactionRequest{MerchantName: "SketchyApp", Amount: amt("9.99"), IsTrialConversion: true}, pol, snap("74.98", nil))
		assert.Equal(t, StatusAsk, out.Status)
		assert.True(t, out.Fallback())
	})
}

func TestEngine_DefaultApproval(t *testing.T) {
	engine := NewEngine()

	t.Run("trusted merchant within limits approves", func(t *testing.T) {
		out := engine.Evaluate(TransactionRequest{MerchantName: "Netflix", Amount: amt("19.99")}, testPolicy(), snap("74.98", nil))
		assert.Equal(t, StatusApprove, out.Status)
		assert.Empty(t, out.PolicyViolated)
	})

	t.Run("trust matching is case-insensitive", func(t *testing.T) {
		out := engine.Evaluate(TransactionRequest{MerchantName: "netflix", Amount: amt("19.99")}, testPolicy(), snap("74.98", nil))
		assert.Equal(t, StatusApprove, out.Status)
	})

	t.Run("known active subscription approves even when untrusted", func(t *testing.T) {
		match := &SubscriptionMatch{Name: "Notion", Amount: amt("8.00"), State: SubscriptionActive}
		out := engine.Evaluate(TransactionRequest{MerchantName: "Notion", Amount: amt("8.00")}, testPolicy(), snap("74.98", match))
		assert.Equal(t, StatusApprove, out.Status)
	})

	t.Run("known blocked subscription within limits approves and reactivates", func(t *testing.T) {
		match := &SubscriptionMatch{Name: "Notion", Amount: amt("8.00"), State: SubscriptionBlocked}
		out := engine.Evaluate(TransactionRequest{MerchantName: "Notion", Amount: amt("8.00")}, testPolicy(), snap("74.98", match))
		assert.Equal(t, StatusApprove, out.Status)
	})
}

func TestEngine_Fallback(t *testing.T) {
	engine := NewEngine()

	t.Run("untrusted unknown merchant within limits defers to the user", func(t *testing.T) {
		out := engine.Evaluate(TransactionRequest{MerchantName: "Midjourney", Amount: amt("30")}, testPolicy(), snap("74.98", nil))
		assert.Equal(t, StatusAsk, out.Status)
		assert.Empty(t, out.PolicyViolated)
		assert.True(t, out.Fallback())
	})
}

func TestEngine_Deterministic(t *testing.T) {
	engine := NewEngine()
	req := TransactionRequest{MerchantName: "Midjourney", Amount: amt("30")}
	match := &SubscriptionMatch{Name: "Midjourney", Amount: amt("30.00"), State: SubscriptionPaused}

	first := engine.Evaluate(req, testPolicy(), snap("74.98", match))
	for i := 0; i < 10; i++ {
		again := engine.Evaluate(req, testPolicy(), snap("74.98", match))
		require.Equal(t, first, again)
	}
}
