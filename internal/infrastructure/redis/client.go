package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/redis/go-redis/v9"

	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/domain/repository/kvstore"
)

// Store reads structure values kept as JSON strings in Redis.
type Store struct {
	redis   *redis.Client
	timeout time.Duration
}

func NewStore(cfg Config) (*Store, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	logger.Info("connecting to redis", "addr", opt.Addr)

	return &Store{
		redis:   redis.NewClient(opt),
		timeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}, nil
}

func (s *Store) Get(ctx context.Context, key string) (json.RawMessage, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	val, err := s.redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return kvstore.Value(val), nil
}

func (s *Store) Close() error {
	return s.redis.Close()
}
