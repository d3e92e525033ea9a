// Package config builds runtime configuration from the environment so main
// stays lean. Optional integrations (Redis, Kafka, the advisory service)
// activate only when their settings are present.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures everything the server needs at startup.
type Config struct {
	Addr           string
	AllowedOrigins []string
	LogLevel       string
	Redis          RedisConfig
	Kafka          KafkaConfig
	Advisory       AdvisoryConfig
}

// RedisConfig configures the optional Redis-backed decision log.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the optional Kafka audit sink.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// AdvisoryConfig configures the optional merchant-risk advisory service.
type AdvisoryConfig struct {
	URL     string
	Timeout time.Duration
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	return Config{
		Addr:           envOr("GUARDIAN_ADDR", ":8080"),
		AllowedOrigins: splitCSV(envOr("GUARDIAN_ALLOWED_ORIGINS", "*")),
		LogLevel:       envOr("GUARDIAN_LOG_LEVEL", "info"),
		Redis: RedisConfig{
			URL:          os.Getenv("GUARDIAN_REDIS_URL"),
			PoolSize:     envIntOr("GUARDIAN_REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("GUARDIAN_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDurationOr("GUARDIAN_REDIS_DIAL_TIMEOUT_MS", 5*time.Second),
			ReadTimeout:  envDurationOr("GUARDIAN_REDIS_READ_TIMEOUT_MS", 3*time.Second),
			WriteTimeout: envDurationOr("GUARDIAN_REDIS_WRITE_TIMEOUT_MS", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: splitCSV(os.Getenv("GUARDIAN_KAFKA_BROKERS")),
			Topic:   envOr("GUARDIAN_KAFKA_TOPIC", "guardian.decisions"),
		},
		Advisory: AdvisoryConfig{
			URL:     os.Getenv("GUARDIAN_ADVISORY_URL"),
			Timeout: envDurationOr("GUARDIAN_ADVISORY_TIMEOUT_MS", 1500*time.Millisecond),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return fallback
}

func splitCSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
