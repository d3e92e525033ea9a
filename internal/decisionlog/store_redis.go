package decisionlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"guardian/internal/decision"
)

const historyKey = "guardian:decisions"

// RedisStore keeps the history in a Redis list. LPUSH preserves the
// newest-first ordering; history reads the whole list. Use this when
// multiple instances or restarts need to share one audit trail.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Record(ctx context.Context, d decision.Decision) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}
	if err := s.client.LPush(ctx, historyKey, payload).Err(); err != nil {
		return fmt.Errorf("record decision: %w", err)
	}
	return nil
}

func (s *RedisStore) History(ctx context.Context) ([]decision.Decision, error) {
	raw, err := s.client.LRange(ctx, historyKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read decision history: %w", err)
	}

	out := make([]decision.Decision, 0, len(raw))
	for _, entry := range raw {
		var d decision.Decision
		if err := json.Unmarshal([]byte(entry), &d); err != nil {
			return nil, fmt.Errorf("unmarshal decision: %w", err)
		}
		out = append(out, d)
	}
	return out, nil
}
