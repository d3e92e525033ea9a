package handler

import (
	"time"

	"guardian/internal/ledger"
)

// SubscriptionsResponse is the JSON envelope for GET /subscriptions.
type SubscriptionsResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

// SubscriptionResponse is one roster entry on the wire.
type SubscriptionResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Amount     string    `json:"amount"`
	Frequency  string    `json:"frequency"`
	Category   string    `json:"category"`
	LastUsedAt time.Time `json:"last_used_at"`
	Status     string    `json:"status"`
	Icon       string    `json:"icon"`
}

// StatsResponse is the JSON body for GET /wallet/stats.
type StatsResponse struct {
	Balance             string `json:"balance"`
	TotalMonthlySpent   string `json:"total_monthly_spent"`
	ActiveSubscriptions int    `json:"active_subscriptions"`
	SavedThisMonth      string `json:"saved_this_month"`
}

func FromSubscription(s ledger.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:         s.ID,
		Name:       s.Name,
		Amount:     s.Amount.StringFixed(2),
		Frequency:  string(s.Frequency),
		Category:   s.Category,
		LastUsedAt: s.LastUsedAt,
		Status:     string(s.Status),
		Icon:       s.Icon,
	}
}

func FromStatistics(stats ledger.WalletStatistics) StatsResponse {
	return StatsResponse{
		Balance:             stats.Balance.StringFixed(2),
		TotalMonthlySpent:   stats.TotalMonthlySpent.StringFixed(2),
		ActiveSubscriptions: stats.ActiveSubscriptions,
		SavedThisMonth:      stats.SavedThisMonth.StringFixed(2),
	}
}
