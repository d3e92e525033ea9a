package decision

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks PolicySource,LedgerReader,LedgerUpdater,Log,AuditPublisher,Advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"guardian/internal/audit"
	"guardian/internal/decision/metrics"
	"guardian/internal/policy"
	dErrors "guardian/pkg/domain-errors"
	"guardian/pkg/requestcontext"
)

const defaultAdvisoryTimeout = 1500 * time.Millisecond

// PolicySource provides the immutable-per-evaluation spending policy.
type PolicySource interface {
	Current() policy.SpendingPolicy
}

// LedgerReader provides a consistent snapshot of the subscription ledger.
type LedgerReader interface {
	Snapshot(merchant string) LedgerSnapshot
}

// LedgerUpdater applies a finalized decision to the ledger. It must be
// idempotent per decision id.
type LedgerUpdater interface {
	Apply(ctx context.Context, d Decision) error
}

// Log is the append-only decision history.
type Log interface {
	Record(ctx context.Context, d Decision) error
}

// AuditPublisher emits audit events for evaluated decisions.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Advisor is the optional external merchant-risk assessment.
type Advisor interface {
	Assess(ctx context.Context, merchant string, amount decimal.Decimal) (*Advice, error)
}

// Service orchestrates one evaluation end to end: snapshot, rule cascade,
// optional advisory enrichment, ledger application, and history append.
// Evaluations are serialized so every decision reads a consistent snapshot
// and is applied atomically.
type Service struct {
	mu sync.Mutex

	engine   *Engine
	policies PolicySource
	ledger   LedgerReader
	updater  LedgerUpdater
	log      Log

	auditPublisher  AuditPublisher
	advisor         Advisor
	advisoryTimeout time.Duration
	metrics         *metrics.Metrics
	logger          *slog.Logger
	tracer          trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithAdvisor enables advisory enrichment with a bounded timeout.
func WithAdvisor(advisor Advisor, timeout time.Duration) Option {
	return func(s *Service) {
		s.advisor = advisor
		if timeout > 0 {
			s.advisoryTimeout = timeout
		}
	}
}

func New(engine *Engine, policies PolicySource, ledger LedgerReader, updater LedgerUpdater, log Log, opts ...Option) (*Service, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if policies == nil {
		return nil, fmt.Errorf("policy source is required")
	}
	if ledger == nil {
		return nil, fmt.Errorf("ledger reader is required")
	}
	if updater == nil {
		return nil, fmt.Errorf("ledger updater is required")
	}
	if log == nil {
		return nil, fmt.Errorf("decision log is required")
	}

	svc := &Service{
		engine:          engine,
		policies:        policies,
		ledger:          ledger,
		updater:         updater,
		log:             log,
		advisoryTimeout: defaultAdvisoryTimeout,
		logger:          slog.Default(),
		tracer:          otel.Tracer("guardian/decision"),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// Evaluate authorizes one transaction request and applies the result.
func (s *Service) Evaluate(ctx context.Context, req TransactionRequest) (*Decision, error) {
	if strings.TrimSpace(req.MerchantName) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "merchant name is required")
	}
	if !req.Amount.IsPositive() {
		return nil, dErrors.New(dErrors.CodeValidation, "amount must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, span := s.tracer.Start(ctx, "decision.evaluate", trace.WithAttributes(
		attribute.String("merchant", req.MerchantName),
		attribute.String("amount", req.Amount.StringFixed(2)),
		attribute.Bool("trial_conversion", req.IsTrialConversion),
	))
	defer span.End()

	start := time.Now()
	pol := s.policies.Current()
	snap := s.ledger.Snapshot(req.MerchantName)

	outcome := s.engine.Evaluate(req, pol, snap)
	if outcome.Fallback() && s.advisor != nil {
		outcome = s.enrichWithAdvice(ctx, req, outcome)
	}

	d := &Decision{
		ID:             uuid.NewString(),
		Timestamp:      requestcontext.Now(ctx).UTC(),
		MerchantName:   req.MerchantName,
		Amount:         req.Amount,
		Status:         outcome.Status,
		Reasoning:      outcome.Reasoning,
		PolicyViolated: outcome.PolicyViolated,
	}
	span.SetAttributes(attribute.String("decision.status", string(d.Status)))

	// Ledger mutation and history append form one logical transaction:
	// the evaluation lock serializes them and the updater is idempotent
	// per decision id, so a decision is never half-applied.
	if err := s.updater.Apply(ctx, *d); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to apply decision to ledger")
	}
	if err := s.log.Record(ctx, *d); err != nil {
		// The wallet state is already correct; a history gap is logged
		// rather than failing a finalized decision.
		s.logger.WarnContext(ctx, "failed to record decision",
			"decision_id", d.ID,
			"error", err,
		)
	}

	s.emitAudit(ctx, d)
	if s.metrics != nil {
		s.metrics.IncrementOutcome(string(d.Status), d.PolicyViolated)
		s.metrics.ObserveEvaluateLatency(time.Since(start))
	}

	s.logger.InfoContext(ctx, "decision evaluated",
		"request_id", requestcontext.RequestID(ctx),
		"decision_id", d.ID,
		"merchant", d.MerchantName,
		"amount", d.Amount.StringFixed(2),
		"status", d.Status,
		"policy_violated", d.PolicyViolated,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return d, nil
}

func (s *Service) emitAudit(ctx context.Context, d *Decision) {
	if s.auditPublisher == nil {
		return
	}
	event := audit.Event{
		Action:     audit.ActionDecisionEvaluated,
		DecisionID: d.ID,
		Merchant:   d.MerchantName,
		Amount:     d.Amount.StringFixed(2),
		Decision:   string(d.Status),
		Reason:     d.PolicyViolated,
		RequestID:  requestcontext.RequestID(ctx),
	}
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"decision_id", d.ID,
			"error", err,
		)
	}
}
