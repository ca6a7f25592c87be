package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/spendwatch/internal/domain"
	"github.com/davidbz/spendwatch/internal/observability"
)

// Ensure interface conformance.
var _ domain.RowCache = (*RowCache)(nil)

// StringStore is the subset of redis.Cmdable the row cache uses.
type StringStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RowCache stores fetched cost rows for a date range as a JSON string.
type RowCache struct {
	client    StringStore
	keyPrefix string
}

// NewClient creates a Redis client from config.
func NewClient(config Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})
}

// NewRowCache creates a row cache on top of an existing client.
func NewRowCache(client StringStore, keyPrefix string) *RowCache {
	return &RowCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Key returns the cache key for a date range.
func (c *RowCache) Key(dateRange domain.DateRange) string {
	prefix := c.keyPrefix
	if prefix == "" {
		prefix = "spendwatch"
	}
	return fmt.Sprintf("%s:rows:%s:%s", prefix, dateRange.StartString(), dateRange.EndString())
}

// Get returns cached rows for the range or domain.ErrCacheMiss.
func (c *RowCache) Get(ctx context.Context, dateRange domain.DateRange) ([]domain.CostRow, error) {
	logger := observability.FromContext(ctx)
	key := c.Key(dateRange)

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Debug("row cache miss", observability.String("key", key))
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached rows: %w", err)
	}

	rows, err := DecodeRows(data)
	if err != nil {
		return nil, err
	}

	logger.Debug("row cache hit",
		observability.String("key", key),
		observability.Int("rows", len(rows)))

	return rows, nil
}

// Set stores rows for the range. A non-positive ttl stores without expiry.
func (c *RowCache) Set(
	ctx context.Context,
	dateRange domain.DateRange,
	rows []domain.CostRow,
	ttl time.Duration,
) error {
	data, err := EncodeRows(rows)
	if err != nil {
		return err
	}

	if ttl < 0 {
		ttl = 0
	}

	if err := c.client.Set(ctx, c.Key(dateRange), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache rows: %w", err)
	}

	return nil
}

// EncodeRows serializes rows for storage.
func EncodeRows(rows []domain.CostRow) ([]byte, error) {
	if rows == nil {
		rows = []domain.CostRow{}
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rows: %w", err)
	}
	return data, nil
}

// DecodeRows parses rows written by EncodeRows. Rows without a currency are
// rejected so a corrupt entry never reaches the aggregator.
func DecodeRows(data []byte) ([]domain.CostRow, error) {
	var rows []domain.CostRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode cached rows: %w", err)
	}

	for i, row := range rows {
		if row.Currency == "" {
			return nil, fmt.Errorf("%w: cached row %d has no currency", domain.ErrMalformedRow, i)
		}
	}

	return rows, nil
}
