package estimate

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"movebot/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

// DistanceCache caches one-way mileage lookups keyed by origin/destination
// pair, to cut down on external Maps calls.
type DistanceCache interface {
	Get(ctx context.Context, key string) (float64, bool)
	Set(ctx context.Context, key string, miles float64)
}

// MemoryDistanceCache is the process-local fallback when Redis is not
// configured.
type MemoryDistanceCache struct {
	mu    sync.RWMutex
	miles map[string]float64
}

func NewMemoryDistanceCache() *MemoryDistanceCache {
	return &MemoryDistanceCache{miles: make(map[string]float64)}
}

func (c *MemoryDistanceCache) Get(ctx context.Context, key string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.miles[key]
	return m, ok
}

func (c *MemoryDistanceCache) Set(ctx context.Context, key string, miles float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.miles[key] = miles
}

const distanceCachePrefix = "dist:"

// RedisDistanceCache shares distance lookups across instances.
type RedisDistanceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDistanceCache(client *redis.Client, ttl time.Duration) *RedisDistanceCache {
	return &RedisDistanceCache{client: client, ttl: ttl}
}

func (c *RedisDistanceCache) Get(ctx context.Context, key string) (float64, bool) {
	val, err := c.client.Get(ctx, distanceCachePrefix+key).Result()
	if err != nil {
		return 0, false
	}
	miles, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return miles, true
}

func (c *RedisDistanceCache) Set(ctx context.Context, key string, miles float64) {
	if err := c.client.Set(ctx, distanceCachePrefix+key, strconv.FormatFloat(miles, 'f', -1, 64), c.ttl).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache distance", zap.Error(err))
	}
}

// DistanceClient looks up driving distance between two addresses using the
// Google Maps Distance Matrix API.
type DistanceClient struct {
	client *maps.Client
	Cache  DistanceCache
}

func NewDistanceClient(apiKey string, cache DistanceCache, opts ...maps.ClientOption) (*DistanceClient, error) {
	opts = append([]maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}),
	}, opts...)
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("maps client init failed: %w", err)
	}
	return &DistanceClient{client: client, Cache: cache}, nil
}

func cacheKey(origin, destination string) string {
	return strings.ToLower(strings.TrimSpace(origin)) + "|" + strings.ToLower(strings.TrimSpace(destination))
}

// parseMilesText converts a Distance Matrix distance text like "1,234.5 mi"
// into a float.
func parseMilesText(text string) (float64, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty distance text")
	}
	miles, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("unparsable distance text %q: %w", text, err)
	}
	return miles, nil
}

// Miles returns the one-way driving distance in miles between two addresses.
func (dc *DistanceClient) Miles(ctx context.Context, origin, destination string) (float64, error) {
	key := cacheKey(origin, destination)
	if dc.Cache != nil {
		if miles, ok := dc.Cache.Get(ctx, key); ok {
			return miles, nil
		}
	}

	resp, err := dc.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Units:        maps.UnitsImperial,
	})
	if err != nil {
		return 0, fmt.Errorf("distance matrix request failed: %w", err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("distance matrix returned no elements")
	}
	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("distance matrix element status %s", element.Status)
	}
	miles, err := parseMilesText(element.Distance.HumanReadable)
	if err != nil {
		return 0, err
	}

	if dc.Cache != nil {
		dc.Cache.Set(ctx, key, miles)
	}
	return miles, nil
}

// TotalRouteMiles sums the three legs a crew drives: office to pickup, pickup
// to drop-off, drop-off back to the office. Rounded to one decimal.
func (dc *DistanceClient) TotalRouteMiles(ctx context.Context, office, pickup, drop string) (float64, error) {
	legs := [][2]string{{office, pickup}, {pickup, drop}, {drop, office}}
	total := 0.0
	for _, leg := range legs {
		miles, err := dc.Miles(ctx, leg[0], leg[1])
		if err != nil {
			return 0, err
		}
		total += miles
	}
	return float64(int(total*10+0.5)) / 10, nil
}
