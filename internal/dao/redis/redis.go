// Package redis wraps the cache operations used by the service layer:
// string get/set with expiry, pattern deletes and an async invalidation
// worker pool.
package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gather_server/internal/config"
	"gather_server/pkg/errorx"

	"github.com/redis/go-redis/v9"
)

// Package-level client.
var redisClient *redis.Client

var ctx = context.Background()

// Init connects to redis and starts the cache worker pool.
func Init() {
	conf := config.GetConfig()
	addr := conf.RedisConfig.Host + ":" + strconv.Itoa(conf.RedisConfig.Port)

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.RedisConfig.Password,
		DB:       conf.RedisConfig.Db,

		PoolSize:     50,
		MinIdleConns: 10,
	})

	InitCacheWorker(10, 2000)
}

// SetKeyEx sets a key with an expiry. A nil client (cache disabled) is a
// no-op.
func SetKeyEx(key string, value string, timeout time.Duration) error {
	if redisClient == nil {
		return nil
	}
	if err := redisClient.Set(ctx, key, value, timeout).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis set key %s", key)
	}
	return nil
}

// GetKey reads a key. A missing key returns an empty string and no error.
func GetKey(key string) (string, error) {
	if redisClient == nil {
		return "", nil
	}
	value, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}

// DelKeysWithPattern removes all keys matching a pattern.
// SCAN in batches plus UNLINK keeps the deletes non-blocking.
func DelKeysWithPattern(pattern string) error {
	if redisClient == nil {
		return nil
	}
	var cursor uint64
	for {
		var keys []string
		var err error
		keys, cursor, err = redisClient.Scan(ctx, cursor, pattern, 500).Result()
		if err != nil {
			return errorx.Wrapf(err, errorx.CodeCacheError, "redis scan pattern %s", pattern)
		}

		if len(keys) > 0 {
			if err := redisClient.Unlink(ctx, keys...).Err(); err != nil {
				return errorx.Wrapf(err, errorx.CodeCacheError, "redis unlink keys with pattern %s", pattern)
			}
		}
		if cursor == 0 {
			break
		}
	}
	return nil
}
