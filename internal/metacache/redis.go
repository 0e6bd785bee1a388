package metacache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/orgball2608/mindlink/internal/domain"
	"github.com/orgball2608/mindlink/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "mindlink:metadata:"

// Redis shares cached metadata between service instances.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

var _ Cache = (*Redis)(nil)

func NewRedis(client *redis.Client, ttl time.Duration, log logger.Logger) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
		logger: log.WithComponent("MetadataRedisCache"),
	}
}

// makeKey hashes the raw URL; two URLs share a key only if they are byte-identical.
func (r *Redis) makeKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%s%x", redisKeyPrefix, hash)
}

func (r *Redis) Get(ctx context.Context, key string) (*domain.Metadata, bool) {
	data, err := r.client.Get(ctx, r.makeKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		r.logger.Warn("Redis cache get failed", "url", key, "error", err)
		return nil, false
	}

	var md domain.Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		r.logger.Warn("Failed to unmarshal cached metadata", "url", key, "error", err)
		return nil, false
	}
	return &md, true
}

func (r *Redis) Set(ctx context.Context, key string, value *domain.Metadata) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := r.client.Set(ctx, r.makeKey(key), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set metadata in redis: %w", err)
	}
	return nil
}
