package loginlimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "undangan:login_attempts:"

// RedisLimiter sayaçları Redis'te tutar; birden fazla uygulama örneği aynı limiti paylaşır.
type RedisLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, max int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, max: max, window: window}
}

// Allow sayaç ve süresi tek MULTI içinde yazılır; anahtar TTL'siz kalamaz.
// Pencere ilk denemede başlar, sonraki denemeler süreyi uzatmaz.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	cacheKey := keyPrefix + key
	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, cacheKey, 0, l.window)
		incr = pipe.Incr(ctx, cacheKey)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("giriş sayacı artırılamadı: %w", err)
	}
	return incr.Val() <= int64(l.max), nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, keyPrefix+key).Err()
}
