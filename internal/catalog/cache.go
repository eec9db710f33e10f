package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Du7chy/Seedlings/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

const snapshotKey = "content"

// snapshot is one fully indexed view of the content tables. Content only
// changes through authoring, so a single TTL-bound snapshot serves all
// catalog reads.
type snapshot struct {
	seeds  []domain.Seed
	plants []domain.Plant

	seedsByID    map[int]*domain.Seed
	seedsByName  map[string]*domain.Seed
	plantsByID   map[int]*domain.Plant
	plantsByName map[string]*domain.Plant
}

// cachedSnapshotEntry wraps a snapshot with version metadata for cache invalidation
type cachedSnapshotEntry struct {
	Version  string
	Snapshot *snapshot
	CachedAt time.Time
}

// contentCache provides an in-memory cache for the content snapshot
// with time-based expiration and version-based invalidation to prevent stale data.
type contentCache struct {
	lru *expirable.LRU[string, *cachedSnapshotEntry]
}

// newContentCache creates a new content cache with the specified TTL.
func newContentCache(ttl time.Duration) *contentCache {
	return &contentCache{
		lru: expirable.NewLRU[string, *cachedSnapshotEntry](1, nil, ttl),
	}
}

// Get retrieves the snapshot from the cache.
// Returns (snapshot, true) if found and version matches.
// Returns (nil, false) if not in cache, expired, or version mismatch.
func (c *contentCache) Get() (*snapshot, bool) {
	entry, found := c.lru.Get(snapshotKey)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(snapshotKey)
		return nil, false
	}

	return entry.Snapshot, true
}

// Set stores a snapshot in the cache with current schema version.
func (c *contentCache) Set(s *snapshot) {
	c.lru.Add(snapshotKey, &cachedSnapshotEntry{
		Version:  CacheSchemaVersion,
		Snapshot: s,
		CachedAt: time.Now(),
	})
}

// Clear removes all entries from the cache.
func (c *contentCache) Clear() {
	c.lru.Purge()
}

func newSnapshot(seeds []domain.Seed, plants []domain.Plant) *snapshot {
	s := &snapshot{
		seeds:        seeds,
		plants:       plants,
		seedsByID:    make(map[int]*domain.Seed, len(seeds)),
		seedsByName:  make(map[string]*domain.Seed, len(seeds)),
		plantsByID:   make(map[int]*domain.Plant, len(plants)),
		plantsByName: make(map[string]*domain.Plant, len(plants)),
	}
	for i := range seeds {
		s.seedsByID[seeds[i].ID] = &seeds[i]
		s.seedsByName[seeds[i].Name] = &seeds[i]
	}
	for i := range plants {
		s.plantsByID[plants[i].ID] = &plants[i]
		s.plantsByName[plants[i].Name] = &plants[i]
	}
	return s
}
