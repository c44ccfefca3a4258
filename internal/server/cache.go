package server

import (
	"sync"
	"time"
)

// cachedPage is one rendered page plus the metadata needed for
// stale-while-revalidate decisions. Not-found renders are cached too, so an
// unknown slug does not hit the database on every request.
type cachedPage struct {
	html       []byte
	status     int
	renderedAt time.Time
}

// pageCache holds rendered detail pages keyed by slug. A page older than
// ttl is still served, but the caller is told to revalidate it in the
// background.
type pageCache struct {
	mu      sync.RWMutex
	entries map[string]cachedPage
	ttl     time.Duration
}

func newPageCache(ttl time.Duration) *pageCache {
	return &pageCache{
		entries: make(map[string]cachedPage),
		ttl:     ttl,
	}
}

// get returns the cached page and whether it is still fresh.
func (c *pageCache) get(key string) (page cachedPage, ok, fresh bool) {
	c.mu.RLock()
	page, ok = c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return cachedPage{}, false, false
	}
	return page, true, time.Since(page.renderedAt) < c.ttl
}

func (c *pageCache) set(key string, html []byte, status int) {
	c.mu.Lock()
	c.entries[key] = cachedPage{html: html, status: status, renderedAt: time.Now()}
	c.mu.Unlock()
}
