package decision

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// enrichWithAdvice consults the advisory service for the ambiguous-merchant
// fallback. The advisory signal only colors reasoning: a failure or timeout
// swaps in the fixed safety-fallback wording and the outcome stays ASK.
// Deterministic outcomes never reach this path.
func (s *Service) enrichWithAdvice(ctx context.Context, req TransactionRequest, outcome Outcome) Outcome {
	ctx, cancel := context.WithTimeout(ctx, s.advisoryTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	var advice *Advice
	g.Go(func() error {
		start := time.Now()
		a, err := s.advisor.Assess(ctx, req.MerchantName, req.Amount)
		if s.metrics != nil {
			s.metrics.ObserveAdvisoryLatency(time.Since(start))
		}
		if err != nil {
			return err
		}
		advice = a
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.WarnContext(ctx, "advisory assessment failed, using safety fallback",
			"merchant", req.MerchantName,
			"error", err,
		)
		outcome.Reasoning = ReasoningSafetyFallback
		return outcome
	}

	if advice != nil && advice.Risk != "" {
		note := ""
		if advice.Note != "" {
			note = " " + advice.Note
		}
		outcome.Reasoning = fmt.Sprintf("%s Advisory assessment: %s risk.%s", outcome.Reasoning, advice.Risk, note)
	}
	return outcome
}
