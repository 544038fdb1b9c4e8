package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/lshigami/admission/config"
	"github.com/lshigami/admission/internal/dto"
	"github.com/rs/zerolog/log"
)

// PreviewCache holds rendered preview payloads per user.
type PreviewCache interface {
	Get(ctx context.Context, userID uint) (*dto.PreviewData, bool)
	Set(ctx context.Context, userID uint, data *dto.PreviewData)
	Invalidate(ctx context.Context, userID uint)
}

type redisPreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache connects to redis when REDIS_ADDR is set. Without it, or when
// the server is unreachable, a cache that never hits is returned.
func NewPreviewCache(cfg *config.Config) PreviewCache {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("Redis not configured, preview cache disabled")
		return NopPreviewCache{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis connection failed, continuing without preview cache")
		_ = client.Close()
		return NopPreviewCache{}
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connected")
	return NewRedisPreviewCache(client, cfg.Redis.PreviewTTL)
}

func NewRedisPreviewCache(client *redis.Client, ttl time.Duration) PreviewCache {
	return &redisPreviewCache{client: client, ttl: ttl}
}

func previewKey(userID uint) string {
	return fmt.Sprintf("admission:preview:%d", userID)
}

func (c *redisPreviewCache) Get(ctx context.Context, userID uint) (*dto.PreviewData, bool) {
	raw, err := c.client.Get(ctx, previewKey(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Uint("user_id", userID).Msg("Preview cache read failed")
		}
		return nil, false
	}
	var data dto.PreviewData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Msg("Preview cache entry is corrupt")
		return nil, false
	}
	return &data, true
}

func (c *redisPreviewCache) Set(ctx context.Context, userID uint, data *dto.PreviewData) {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Msg("Preview cache encode failed")
		return
	}
	if err := c.client.Set(ctx, previewKey(userID), raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Msg("Preview cache write failed")
	}
}

func (c *redisPreviewCache) Invalidate(ctx context.Context, userID uint) {
	if err := c.client.Del(ctx, previewKey(userID)).Err(); err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Msg("Preview cache invalidation failed")
	}
}

// NopPreviewCache never stores anything.
type NopPreviewCache struct{}

func (NopPreviewCache) Get(context.Context, uint) (*dto.PreviewData, bool) { return nil, false }
func (NopPreviewCache) Set(context.Context, uint, *dto.PreviewData)       {}
func (NopPreviewCache) Invalidate(context.Context, uint)                  {}
