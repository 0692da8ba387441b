package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wanderai/wanderai-backend/logger"
	"github.com/wanderai/wanderai-backend/types"
)

// PlaceCache caches live place lookups per destination. Every failure is
// logged and swallowed; the cache only ever makes requests faster, never
// makes them fail.
type PlaceCache struct {
	client *redis.Client
	ttl    time.Duration
}

type cachedPlaces struct {
	Places  []types.Place `json:"places"`
	Country string        `json:"country"`
}

func NewPlaceCache(client *redis.Client, ttl time.Duration) *PlaceCache {
	return &PlaceCache{client: client, ttl: ttl}
}

func placeCacheKey(city string) string {
	return "places:" + strings.ToLower(strings.TrimSpace(city))
}

// Get returns the cached places and country for a destination, or ok=false on
// a miss or any cache error.
func (pc *PlaceCache) Get(ctx context.Context, city string) ([]types.Place, string, bool) {
	if pc == nil || pc.client == nil {
		return nil, "", false
	}
	log := logger.GetLogger()

	raw, err := pc.client.Get(ctx, placeCacheKey(city)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warnw("Place cache read failed", "city", city, "error", err)
		}
		return nil, "", false
	}

	var entry cachedPlaces
	if err := json.Unmarshal(raw, &entry); err != nil {
		log.Warnw("Place cache entry corrupt, ignoring", "city", city, "error", err)
		return nil, "", false
	}
	if len(entry.Places) == 0 {
		return nil, "", false
	}

	log.Debugw("Place cache hit", "city", city, "count", len(entry.Places))
	return entry.Places, entry.Country, true
}

// Set stores a live lookup result for a destination.
func (pc *PlaceCache) Set(ctx context.Context, city string, places []types.Place, country string) {
	if pc == nil || pc.client == nil || len(places) == 0 {
		return
	}
	log := logger.GetLogger()

	raw, err := json.Marshal(cachedPlaces{Places: places, Country: country})
	if err != nil {
		log.Warnw("Place cache marshal failed", "city", city, "error", err)
		return
	}
	if err := pc.client.Set(ctx, placeCacheKey(city), raw, pc.ttl).Err(); err != nil {
		log.Warnw("Place cache write failed", "city", city, "error", err)
	}
}

// Ping reports cache reachability for health checks.
func (pc *PlaceCache) Ping(ctx context.Context) error {
	if pc == nil || pc.client == nil {
		return fmt.Errorf("place cache not configured")
	}
	return pc.client.Ping(ctx).Err()
}
