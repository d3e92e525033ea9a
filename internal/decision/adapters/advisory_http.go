// Package adapters bridges the decision service to external collaborators.
package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"guardian/internal/decision"
	"guardian/pkg/platform/circuit"
)

// AdvisoryClient calls the external merchant-risk advisory service. The
// decision service treats it as strictly advisory, so every failure mode
// here surfaces as an error the caller maps to its safety fallback. A
// circuit breaker skips calls entirely while the service is misbehaving.
type AdvisoryClient struct {
	baseURL string
	client  *http.Client
	breaker *circuit.Breaker
	logger  *slog.Logger
}

// NewAdvisoryClient targets the advisory endpoint with a bounded timeout.
func NewAdvisoryClient(baseURL string, timeout time.Duration, logger *slog.Logger) *AdvisoryClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdvisoryClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		breaker: circuit.New("advisory"),
		logger:  logger,
	}
}

type assessRequest struct {
	MerchantName string `json:"merchant_name"`
	Amount       string `json:"amount"`
}

// Assess asks the advisory service for a risk read on the merchant.
func (c *AdvisoryClient) Assess(ctx context.Context, merchant string, amount decimal.Decimal) (*decision.Advice, error) {
	if c.breaker.IsOpen() {
		return nil, fmt.Errorf("advisory circuit open")
	}

	payload, err := json.Marshal(assessRequest{
		MerchantName: merchant,
		Amount:       amount.StringFixed(2),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal advisory request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/assess", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build advisory request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.recordFailure(err)
		return nil, fmt.Errorf("advisory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("advisory returned status %d", resp.StatusCode)
		c.recordFailure(err)
		return nil, err
	}

	var advice decision.Advice
	if err := json.NewDecoder(resp.Body).Decode(&advice); err != nil {
		c.recordFailure(err)
		return nil, fmt.Errorf("decode advisory response: %w", err)
	}

	if _, change := c.breaker.RecordSuccess(); change.Closed {
		c.logger.Info("advisory circuit closed", "breaker", c.breaker.Name())
	}
	return &advice, nil
}

func (c *AdvisoryClient) recordFailure(err error) {
	if _, change := c.breaker.RecordFailure(); change.Opened {
		c.logger.Warn("advisory circuit opened",
			"breaker", c.breaker.Name(),
			"error", err,
		)
	}
}
