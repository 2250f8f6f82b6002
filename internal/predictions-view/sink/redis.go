package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/football-predictions-view/internal/predictions-view/view"
)

// SnapshotKey guarda o último snapshot aplicado
const SnapshotKey = "predictions:snapshot:latest"

// redisClient é o subconjunto de *redis.Client usado pelo sink
type redisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisSink grava o snapshot com TTL e anuncia a carga no canal pub/sub
type RedisSink struct {
	R       redisClient
	TTL     time.Duration
	Channel string
}

func NewRedisSink(r redisClient, ttl time.Duration, channel string) *RedisSink {
	return &RedisSink{R: r, TTL: ttl, Channel: channel}
}

func (s *RedisSink) Name() string { return "redis" }

// Publish ignora cargas que não foram aplicadas
func (s *RedisSink) Publish(ctx context.Context, out view.Outcome) error {
	if !out.Applied {
		return nil
	}

	snap, err := json.Marshal(out.Snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.R.Set(ctx, SnapshotKey, snap, s.TTL).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", SnapshotKey, err)
	}

	if s.Channel == "" {
		return nil
	}
	ev, err := json.Marshal(event(out))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := s.R.Publish(ctx, s.Channel, ev).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", s.Channel, err)
	}
	return nil
}
