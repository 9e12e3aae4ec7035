package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"moodfeed/internal/config"
)

// NewRedisClient abre el cliente de Redis y verifica la conexion. Si el ping falla
// el cliente se cierra antes de devolver el error.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
