package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys for the read-through listing cache. Every property mutation
// invalidates both, which is what guarantees the admin UI sees fresh
// data on its post-mutation re-fetch.
const (
	PropertiesCacheKey = "properties:all"
	FeaturedCacheKey   = "properties:featured"

	ListingCacheTTL = 60 * time.Minute
)

// GetFromRedis loads a cached JSON value into target. A missing key is
// not an error; target is simply left untouched.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cached, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(cached), target)
}

// SetToRedis stores value as JSON under key with the given TTL.
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, data, ttl).Err()
}

// DeleteFromRedis drops the given keys.
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, keys ...string) error {
	return rdb.Del(ctx, keys...).Err()
}
