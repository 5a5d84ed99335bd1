package database

import (
	"context"
	"log"

	appconfig "commerce_engine/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when REDIS_ADDR is unset or the server does not answer;
// callers fall back to process-local state.
func ConnectRedis(ctx context.Context, cfg appconfig.Redis) *redis.Client {
	if cfg.Addr == "" {
		log.Printf("[database][redis] REDIS_ADDR not set; redis disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[database][redis] ping failed addr=%s err=%v", cfg.Addr, err)
		_ = rdb.Close()
		return nil
	}
	log.Printf("[database][redis] connected addr=%s db=%d", cfg.Addr, cfg.DB)
	return rdb
}
