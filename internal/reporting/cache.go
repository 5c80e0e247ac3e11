package reporting

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsKey = "tracker:dashboard:stats"

// Service serves dashboard stats through a Redis cache. Misses fall through
// to the source and repopulate the key.
type Service struct {
	source StatsSource
	client *redis.Client
	ttl    time.Duration
}

func NewService(source StatsSource, client *redis.Client, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Service{source: source, client: client, ttl: ttl}
}

// Get returns the cached snapshot, computing and caching a fresh one on miss.
func (s *Service) Get(ctx context.Context) (*DashboardStats, error) {
	raw, err := s.client.Get(ctx, statsKey).Bytes()
	if err == nil {
		var stats DashboardStats
		if err := json.Unmarshal(raw, &stats); err == nil {
			return &stats, nil
		}
		// A corrupt cache entry is recomputed, not returned.
	} else if err != redis.Nil {
		return nil, fmt.Errorf("stats cache read: %w", err)
	}

	return s.Refresh(ctx)
}

// Refresh recomputes the snapshot from the source and rewrites the cache.
func (s *Service) Refresh(ctx context.Context) (*DashboardStats, error) {
	stats, err := s.source.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, statsKey, raw, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("stats cache write: %w", err)
	}
	return stats, nil
}
