package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis returns a client for REDIS_URL. The admin rate limiter is the
// only consumer; a nil client disables it.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	redisURL := GetEnv("REDIS_URL", "")
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		Logger.Warn("⚠️  REDIS_URL not set, using local Redis", zap.String("url", redisURL))
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)

	res, err := client.Ping(ctx).Result()
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to Redis: %w", err)
	}
	Logger.Info("✅ Connected to Redis", zap.String("ping", res))
	return client, nil
}
