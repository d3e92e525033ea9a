package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guardian/internal/audit"
	"guardian/internal/decision"
	"guardian/internal/decision/adapters"
	decisionhandler "guardian/internal/decision/handler"
	decisionmetrics "guardian/internal/decision/metrics"
	"guardian/internal/decisionlog"
	loghandler "guardian/internal/decisionlog/handler"
	httpapi "guardian/internal/http"
	"guardian/internal/ledger"
	ledgerhandler "guardian/internal/ledger/handler"
	"guardian/internal/platform/config"
	"guardian/internal/platform/httpserver"
	"guardian/internal/platform/logger"
	platformredis "guardian/internal/platform/redis"
	"guardian/internal/policy"
	policyhandler "guardian/internal/policy/handler"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Wallet state
	policyStore := policy.NewStore(policy.Default())
	walletLedger := ledger.New(ledger.DefaultRoster(time.Now()), ledger.DefaultBalance(), ledger.DefaultSaved())
	updater, err := ledger.NewUpdater(walletLedger, ledger.WithLogger(log))
	if err != nil {
		log.Error("failed to build updater", "error", err)
		os.Exit(1)
	}

	// Decision log: Redis when configured, in-process otherwise
	var decisionLog decisionlog.Store = decisionlog.NewInMemoryStore()
	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		decisionLog = decisionlog.NewRedisStore(redisClient.Client)
		log.Info("decision log backed by redis")
	}

	// Audit pipeline: Kafka sink when brokers are configured
	var sink audit.Sink = audit.NewInMemoryStore()
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := audit.NewKafkaSink(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			log.Error("failed to connect to kafka", "error", err)
			os.Exit(1)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := kafkaSink.Close(flushCtx); err != nil {
				log.Warn("failed to flush kafka sink", "error", err)
			}
		}()
		sink = kafkaSink
		log.Info("audit trail backed by kafka", "topic", cfg.Kafka.Topic)
	}

	inbox := make(chan audit.Event, 256)
	publisher := audit.NewPublisher(inbox, log)
	worker := audit.NewWorker(sink, inbox, log)
	go func() {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	// Decision service
	opts := []decision.Option{
		decision.WithLogger(log),
		decision.WithAuditPublisher(publisher),
		decision.WithMetrics(decisionmetrics.New()),
	}
	if cfg.Advisory.URL != "" {
		advisor := adapters.NewAdvisoryClient(cfg.Advisory.URL, cfg.Advisory.Timeout, log)
		opts = append(opts, decision.WithAdvisor(advisor, cfg.Advisory.Timeout))
		log.Info("advisory enrichment enabled", "url", cfg.Advisory.URL)
	}

	service, err := decision.New(decision.NewEngine(), policyStore, walletLedger, updater, decisionLog, opts...)
	if err != nil {
		log.Error("failed to build decision service", "error", err)
		os.Exit(1)
	}

	router := httpapi.NewRouter(httpapi.Handlers{
		Decision: decisionhandler.New(service, log),
		History:  loghandler.New(decisionLog, log),
		Wallet:   ledgerhandler.New(walletLedger),
		Policy:   policyhandler.New(policyStore),
	}, cfg.AllowedOrigins)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting guardian", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
