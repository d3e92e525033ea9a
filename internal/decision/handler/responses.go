package handler

import (
	"time"

	"guardian/internal/decision"
)

// EvaluateResponse is the HTTP response for POST /decision/evaluate.
type EvaluateResponse struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	MerchantName   string    `json:"merchant_name"`
	Amount         string    `json:"amount"`
	Status         string    `json:"status"`
	Reasoning      string    `json:"reasoning"`
	PolicyViolated string    `json:"policy_violated,omitempty"`
}

// FromDecision converts a domain decision to an HTTP response. Amounts are
// rendered with two decimal places.
func FromDecision(d *decision.Decision) *EvaluateResponse {
	return &EvaluateResponse{
		ID:             d.ID,
		Timestamp:      d.Timestamp,
		MerchantName:   d.MerchantName,
		Amount:         d.Amount.StringFixed(2),
		Status:         string(d.Status),
		Reasoning:      d.Reasoning,
		PolicyViolated: d.PolicyViolated,
	}
}
