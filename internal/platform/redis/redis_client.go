// Package redis はRedisクライアントの初期化を提供します。
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"academy_backend/internal/platform/config"
)

// NewRedisClient は設定からRedisクライアントを生成し、接続を確認します。
func NewRedisClient(cfg config.Redis) (*redis.Client, error) {
	addr := cfg.Host + ":" + cfg.Port

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
