package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultRoster returns the seed subscriptions used when no roster is
// supplied at startup.
func DefaultRoster(now time.Time) []Subscription {
	return []Subscription{
		{
			ID:         "sub-netflix",
			Name:       "Netflix",
			Amount:     decimal.RequireFromString("19.99"),
			Frequency:  FrequencyMonthly,
			Category:   "Entertainment",
			LastUsedAt: now.AddDate(0, 0, -2),
			Status:     StatusActive,
			Icon:       "📺",
		},
		{
			ID:         "sub-spotify",
			Name:       "Spotify",
			Amount:     decimal.RequireFromString("9.99"),
			Frequency:  FrequencyMonthly,
			Category:   "Music",
			LastUsedAt: now,
			Status:     StatusActive,
			Icon:       "🎵",
		},
		{
			ID:         "sub-aws-cloud",
			Name:       "AWS Cloud",
			Amount:     decimal.RequireFromString("45.00"),
			Frequency:  FrequencyMonthly,
			Category:   "DevOps",
			LastUsedAt: now.AddDate(0, 0, -14),
			Status:     StatusActive,
			Icon:       "☁️",
		},
		{
			ID:         "sub-midjourney",
			Name:       "Midjourney",
			Amount:     decimal.RequireFromString("30.00"),
			Frequency:  FrequencyMonthly,
			Category:   "AI Tools",
			LastUsedAt: now.AddDate(0, 0, -32),
			Status:     StatusPaused,
			Icon:       "🎨",
		},
	}
}

// DefaultBalance is the seed wallet balance. The balance is opaque to the
// engine; decisions never touch it.
func DefaultBalance() decimal.Decimal {
	return decimal.RequireFromString("4250.75")
}

// DefaultSaved is the seed savings accumulator.
func DefaultSaved() decimal.Decimal {
	return decimal.RequireFromString("30.00")
}
