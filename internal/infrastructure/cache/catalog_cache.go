package cache

import (
	"context"
	"os"
	"strconv"
	"sync"
	"time"

	"campo_direto/internal/domain/entities"
	"campo_direto/internal/usecase/interfaces"
)

const defaultCatalogCacheTTL = 60 * time.Second

type catalogEntry struct {
	catalog   entities.Catalog
	expiresAt time.Time
}

type bundleEntry struct {
	bundles   []entities.Bundle
	expiresAt time.Time
}

// CatalogCache decorates a catalog repository with a short-TTL snapshot
// cache. Catalogs and bundles are reference data owned by another service,
// so stale reads inside the TTL window are acceptable.
type CatalogCache struct {
	next interfaces.ICatalogRepository
	ttl  time.Duration
	now  func() time.Time

	mu       sync.RWMutex
	catalogs map[string]catalogEntry
	bundles  map[string]bundleEntry
}

var _ interfaces.ICatalogRepository = (*CatalogCache)(nil)

// NewCatalogCache wraps next with a TTL read from CATALOG_CACHE_TTL
// (seconds). Invalid or absent values fall back to one minute.
func NewCatalogCache(next interfaces.ICatalogRepository) *CatalogCache {
	ttl := defaultCatalogCacheTTL
	if raw := os.Getenv("CATALOG_CACHE_TTL"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			ttl = time.Duration(seconds) * time.Second
		}
	}
	return newCatalogCache(next, ttl, time.Now)
}

func newCatalogCache(next interfaces.ICatalogRepository, ttl time.Duration, now func() time.Time) *CatalogCache {
	return &CatalogCache{
		next:     next,
		ttl:      ttl,
		now:      now,
		catalogs: make(map[string]catalogEntry),
		bundles:  make(map[string]bundleEntry),
	}
}

func (c *CatalogCache) GetCatalog(ctx context.Context, id string) (entities.Catalog, error) {
	c.mu.RLock()
	entry, ok := c.catalogs[id]
	c.mu.RUnlock()
	if ok && c.now().Before(entry.expiresAt) {
		return entry.catalog, nil
	}

	cat, err := c.next.GetCatalog(ctx, id)
	if err != nil {
		return entities.Catalog{}, err
	}
	if cat.ID != "" {
		c.mu.Lock()
		c.catalogs[id] = catalogEntry{catalog: cat, expiresAt: c.now().Add(c.ttl)}
		c.mu.Unlock()
	}
	return cat, nil
}

func (c *CatalogCache) ListBundlesBySupplier(ctx context.Context, supplierID string) ([]entities.Bundle, error) {
	c.mu.RLock()
	entry, ok := c.bundles[supplierID]
	c.mu.RUnlock()
	if ok && c.now().Before(entry.expiresAt) {
		return entry.bundles, nil
	}

	bundles, err := c.next.ListBundlesBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.bundles[supplierID] = bundleEntry{bundles: bundles, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return bundles, nil
}
