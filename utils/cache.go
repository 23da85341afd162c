package utils

import (
	"context"
	"fmt"
	"time"

	"tutormatch/config"

	"github.com/go-redis/redis/v8"
)

// NewAuthCacheClient connects to the Redis database holding session state and
// verifies the connection with a ping.
func NewAuthCacheClient(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (auth cache): %w", err)
	}
	return client, nil
}
