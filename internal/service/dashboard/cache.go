package dashboard

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/workboardhq/workboard-backend/internal/domain"
)

// cacheKey identifies one user's view of one workspace.
type cacheKey struct {
	userID      uuid.UUID
	workspaceID uuid.UUID
}

type cacheEntry struct {
	dashboard   domain.ResolvedDashboard
	prefVersion time.Time
	expiresAt   time.Time
}

// Cache holds short-lived resolved dashboards. An entry is only served
// while its TTL has not elapsed AND the stored preference version still
// matches; customization writes invalidate the key eagerly on top of that.
//
// Plain mutex-guarded map; the entry count is bounded by active
// (user, workspace) pairs and expired entries are dropped on read.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[cacheKey]cacheEntry
}

// NewCache creates a resolved-dashboard cache with the given TTL.
// A non-positive TTL disables caching.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[cacheKey]cacheEntry),
	}
}

// get returns the cached dashboard for the key if it is fresh and was
// resolved from the same preference version.
func (c *Cache) get(userID, workspaceID uuid.UUID, prefVersion time.Time, now time.Time) (domain.ResolvedDashboard, bool) {
	if c == nil || c.ttl <= 0 {
		return domain.ResolvedDashboard{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{userID: userID, workspaceID: workspaceID}
	entry, ok := c.entries[key]
	if !ok {
		return domain.ResolvedDashboard{}, false
	}
	if now.After(entry.expiresAt) || !entry.prefVersion.Equal(prefVersion) {
		delete(c.entries, key)
		return domain.ResolvedDashboard{}, false
	}
	return entry.dashboard, true
}

// set stores a resolved dashboard under the key.
func (c *Cache) set(userID, workspaceID uuid.UUID, prefVersion time.Time, dash domain.ResolvedDashboard, now time.Time) {
	if c == nil || c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey{userID: userID, workspaceID: workspaceID}] = cacheEntry{
		dashboard:   dash,
		prefVersion: prefVersion,
		expiresAt:   now.Add(c.ttl),
	}
}

// Invalidate drops the cached dashboard for one (user, workspace) pair.
// Called by the customization service after every successful write.
func (c *Cache) Invalidate(userID, workspaceID uuid.UUID) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, cacheKey{userID: userID, workspaceID: workspaceID})
}
