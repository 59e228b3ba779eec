package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"sendmo/models"

	"github.com/redis/go-redis/v9"
)

// QuoteCache stores normalized live quotes in Redis keyed by the request
// (addresses + parcel), so repeated quoting of the same shipment within the
// TTL skips the aggregator round trip.
type QuoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQuoteCache creates a new QuoteCache.
func NewQuoteCache(client *redis.Client, ttl time.Duration) *QuoteCache {
	return &QuoteCache{client: client, ttl: ttl}
}

func (c *QuoteCache) key(req *models.LiveRatesRequest) string {
	b, _ := json.Marshal(req)
	sum := sha256.Sum256(b)
	return fmt.Sprintf("quotes:%s", hex.EncodeToString(sum[:]))
}

// Get returns the cached quotes for a request, or nil on a miss.
func (c *QuoteCache) Get(ctx context.Context, req *models.LiveRatesRequest) ([]models.NormalizedRate, error) {
	data, err := c.client.Get(ctx, c.key(req)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var quotes []models.NormalizedRate
	if err := json.Unmarshal([]byte(data), &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// Set stores the quotes for a request with the configured TTL.
func (c *QuoteCache) Set(ctx context.Context, req *models.LiveRatesRequest, quotes []models.NormalizedRate) error {
	data, err := json.Marshal(quotes)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(req), data, c.ttl).Err()
}
