package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/agenda-pro/internal/events"
)

const defaultRecentLimit = 50

// RedisSink entrega eventos por PUBLISH (push) e guarda os últimos de
// cada loja numa lista limitada (poll).
type RedisSink struct {
	rdb   redis.Cmdable
	limit int64
}

func NewRedisSink(rdb redis.Cmdable, recentLimit int) *RedisSink {
	if recentLimit <= 0 {
		recentLimit = defaultRecentLimit
	}
	return &RedisSink{rdb: rdb, limit: int64(recentLimit)}
}

func Channel(tenantID uint) string {
	return fmt.Sprintf("tenant:%d:appointments", tenantID)
}

func recentKey(tenantID uint) string {
	return fmt.Sprintf("tenant:%d:recent_events", tenantID)
}

func (s *RedisSink) Publish(ctx context.Context, ev events.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Publish(ctx, Channel(ev.TenantID), payload)
		pipe.LPush(ctx, recentKey(ev.TenantID), payload)
		pipe.LTrim(ctx, recentKey(ev.TenantID), 0, s.limit-1)
		return nil
	})
	return err
}

// Recent devolve os eventos mais novos primeiro.
func (s *RedisSink) Recent(ctx context.Context, tenantID uint, n int) ([]events.Event, error) {
	if n <= 0 || int64(n) > s.limit {
		n = int(s.limit)
	}

	raw, err := s.rdb.LRange(ctx, recentKey(tenantID), 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	out := make([]events.Event, 0, len(raw))
	for _, item := range raw {
		var ev events.Event
		if err := json.Unmarshal([]byte(item), &ev); err != nil {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}
