package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/lshigami/testhub/config"
	"github.com/lshigami/testhub/internal/dto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	keyPrefix       = "testhub:test:"
	tombstoneSuffix = ":deleted"
)

// setUnlessDeleted writes KEYS[1] only while the tombstone KEYS[2] is absent.
// ARGV[2] is the TTL in milliseconds, 0 for none.
var setUnlessDeleted = redis.NewScript(`
if redis.call("EXISTS", KEYS[2]) == 1 then
	return 0
end
if tonumber(ARGV[2]) > 0 then
	redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
else
	redis.call("SET", KEYS[1], ARGV[1])
end
return 1
`)

// TestCache keeps rendered test details. Tests never change after creation,
// so an entry only has to be dropped when the test is deleted. Delete leaves
// a tombstone for one TTL so that a reader who loaded the test before the
// delete cannot write it back.
type TestCache interface {
	Get(ctx context.Context, testID string) (*dto.TestDetailDTO, bool)
	Set(ctx context.Context, detail *dto.TestDetailDTO)
	Delete(ctx context.Context, testID string)
}

// NewTestCache returns a redis-backed cache, or a no-op cache when REDIS_ADDR
// is empty.
func NewTestCache(cfg *config.Config) TestCache {
	if cfg.Redis.Addr == "" {
		log.Warn().Msg("REDIS_ADDR is not set, test detail caching is disabled")
		return noopTestCache{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis ping failed, cache calls will fail open")
	}
	return NewRedisTestCache(client, cfg.Redis.TTL)
}

type redisTestCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTestCache(client *redis.Client, ttl time.Duration) TestCache {
	return &redisTestCache{client: client, ttl: ttl}
}

func (c *redisTestCache) Get(ctx context.Context, testID string) (*dto.TestDetailDTO, bool) {
	raw, err := c.client.Get(ctx, keyPrefix+testID).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("testID", testID).Msg("Cache read failed")
		}
		return nil, false
	}
	var detail dto.TestDetailDTO
	if err := json.Unmarshal(raw, &detail); err != nil {
		log.Warn().Err(err).Str("testID", testID).Msg("Dropping undecodable cache entry")
		c.client.Del(ctx, keyPrefix+testID)
		return nil, false
	}
	return &detail, true
}

func (c *redisTestCache) Set(ctx context.Context, detail *dto.TestDetailDTO) {
	raw, err := json.Marshal(detail)
	if err != nil {
		log.Warn().Err(err).Str("testID", detail.ID).Msg("Cache encode failed")
		return
	}
	keys := []string{keyPrefix + detail.ID, tombstoneKey(detail.ID)}
	written, err := setUnlessDeleted.Run(ctx, c.client, keys, raw, c.ttl.Milliseconds()).Int()
	if err != nil {
		log.Warn().Err(err).Str("testID", detail.ID).Msg("Cache write failed")
		return
	}
	if written == 0 {
		log.Debug().Str("testID", detail.ID).Msg("Skipping cache write for deleted test")
	}
}

func (c *redisTestCache) Delete(ctx context.Context, testID string) {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, tombstoneKey(testID), 1, c.ttl)
		pipe.Del(ctx, keyPrefix+testID)
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("testID", testID).Msg("Cache invalidation failed")
	}
}

func tombstoneKey(testID string) string {
	return keyPrefix + testID + tombstoneSuffix
}

type noopTestCache struct{}

func (noopTestCache) Get(context.Context, string) (*dto.TestDetailDTO, bool) { return nil, false }
func (noopTestCache) Set(context.Context, *dto.TestDetailDTO)                {}
func (noopTestCache) Delete(context.Context, string)                         {}
