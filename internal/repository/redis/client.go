package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var RedisClient *redis.Client
var redisEnabled bool

// InitRedis initializes the Redis connection. An unreachable server is not
// fatal: carried data still works, only the server-side cache is off.
func InitRedis(addr, password string) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("component", "redis").Str("addr", addr).Msg("redis-unavailable-cache-disabled")
		redisEnabled = false
		return nil
	}

	redisEnabled = true
	log.Info().Str("component", "redis").Str("addr", addr).Msg("redis-connected")
	return nil
}

// IsRedisEnabled returns whether Redis is available
func IsRedisEnabled() bool {
	return redisEnabled
}

// CloseRedis closes the Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

const paramKeyPrefix = "anticonnect4:params:"

// ParamCache keeps the carried search depth per match.
type ParamCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewParamCache(client *redis.Client, ttl time.Duration) *ParamCache {
	return &ParamCache{client: client, ttl: ttl}
}

func paramKey(matchID string) string {
	return paramKeyPrefix + matchID
}

// GetDepth returns false when nothing is cached for the match.
func (c *ParamCache) GetDepth(ctx context.Context, matchID string) (int, bool, error) {
	raw, err := c.client.HGet(ctx, paramKey(matchID), "depth").Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrapf(err, "read params for match %s", matchID)
	}

	depth, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, errors.Wrapf(err, "corrupt depth %q for match %s", raw, matchID)
	}
	return depth, true, nil
}

func (c *ParamCache) SetDepth(ctx context.Context, matchID string, depth int) error {
	key := paramKey(matchID)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, "depth", depth)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "write params for match %s", matchID)
	}
	return nil
}

// Forget drops the cached params of a match.
func (c *ParamCache) Forget(ctx context.Context, matchID string) error {
	return c.client.Del(ctx, paramKey(matchID)).Err()
}
