package handler

import (
	"strings"

	"github.com/shopspring/decimal"

	"guardian/internal/decision"
	dErrors "guardian/pkg/domain-errors"
)

const maxMerchantNameLength = 100

// EvaluateRequest is the HTTP request body for POST /decision/evaluate.
type EvaluateRequest struct {
	MerchantName      string          `json:"merchant_name"`
	Amount            decimal.Decimal `json:"amount"`
	IsTrialConversion bool            `json:"is_trial_conversion"`
}

// Validate rejects malformed requests before the engine is ever consulted.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *EvaluateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.MerchantName = strings.TrimSpace(r.MerchantName)
	if r.MerchantName == "" {
		return dErrors.New(dErrors.CodeValidation, "merchant_name is required")
	}
	if len(r.MerchantName) > maxMerchantNameLength {
		return dErrors.New(dErrors.CodeValidation, "merchant_name must be at most 100 characters")
	}
	if !r.Amount.IsPositive() {
		return dErrors.New(dErrors.CodeValidation, "amount must be positive")
	}

	return nil
}

// ToDomain builds the domain request from the validated body.
func (r *EvaluateRequest) ToDomain() decision.TransactionRequest {
	return decision.TransactionRequest{
		MerchantName:      r.MerchantName,
		Amount:            r.Amount,
		IsTrialConversion: r.IsTrialConversion,
	}
}
