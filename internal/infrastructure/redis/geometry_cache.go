package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"docstamp/internal/config"
	"docstamp/internal/domain/entity"
)

const geometryKeyPrefix = "docstamp:geometry:"

// GeometryCache stores extracted page geometry per document/page so repeated
// preview calls for the same page skip re-parsing the PDF. Entries expire
// with the configured TTL; a stale entry is at worst a re-extraction.
type GeometryCache struct {
	client *RedisClient
	ttl    time.Duration
	logger *zap.Logger
}

func NewGeometryCache(cfg *config.Config, client *RedisClient, logger *zap.Logger) *GeometryCache {
	return &GeometryCache{
		client: client,
		ttl:    cfg.Placement.GeometryCacheTTL,
		logger: logger,
	}
}

func geometryKey(documentID string, page int) string {
	return fmt.Sprintf("%s%s:%d", geometryKeyPrefix, documentID, page)
}

// Get returns the cached geometry, or nil on a miss. Cache failures are
// logged and treated as misses.
func (c *GeometryCache) Get(ctx context.Context, documentID string, page int) (*entity.PageGeometry, error) {
	raw, err := c.client.Get(ctx, geometryKey(documentID, page))
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		c.logger.Warn("Geometry cache read failed",
			zap.String("document_id", documentID),
			zap.Int("page", page),
			zap.Error(err),
		)
		return nil, nil
	}

	var geom entity.PageGeometry
	if err := json.Unmarshal([]byte(raw), &geom); err != nil {
		c.logger.Warn("Geometry cache entry corrupt, dropping",
			zap.String("document_id", documentID),
			zap.Int("page", page),
			zap.Error(err),
		)
		_ = c.client.Del(ctx, geometryKey(documentID, page))
		return nil, nil
	}

	return &geom, nil
}

func (c *GeometryCache) Put(ctx context.Context, documentID string, geom entity.PageGeometry) error {
	data, err := json.Marshal(geom)
	if err != nil {
		return fmt.Errorf("failed to marshal page geometry: %w", err)
	}

	return c.client.Set(ctx, geometryKey(documentID, geom.PageNumber), data, c.ttl)
}

// Invalidate drops all cached pages of a document, called after stamping
// writes a new file.
func (c *GeometryCache) Invalidate(ctx context.Context, documentID string, pageCount int) error {
	keys := make([]string, 0, pageCount)
	for page := 1; page <= pageCount; page++ {
		keys = append(keys, geometryKey(documentID, page))
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...)
}
