package sitedata

import (
	"context"
	"sync"
	"time"

	"github.com/eringen/sitehead"
)

// Cache is a Source that keeps the result of another Source for a TTL.
// Long-running processes use it so every request does not hit the config
// file or database.
type Cache struct {
	mu      sync.RWMutex
	md      *sitehead.SiteMetadata
	loaded  bool
	fetched time.Time
	ttl     time.Duration
	src     Source
	now     func() time.Time
}

// NewCache creates a Cache in front of src.
func NewCache(src Source, ttl time.Duration) *Cache {
	return &Cache{src: src, ttl: ttl, now: time.Now}
}

func (c *Cache) valid() bool {
	return c.loaded && c.now().Sub(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.md = nil
	c.loaded = false
	c.mu.Unlock()
}

// SiteMetadata implements Source. It takes a read lock first and only
// takes the write lock when a reload is needed.
func (c *Cache) SiteMetadata(ctx context.Context) (*sitehead.SiteMetadata, error) {
	c.mu.RLock()
	if c.valid() {
		md := c.md
		c.mu.RUnlock()
		return copyMetadata(md), nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid() {
		md, err := c.src.SiteMetadata(ctx)
		if err != nil {
			return nil, err
		}
		c.md = md
		c.loaded = true
		c.fetched = c.now()
	}
	return copyMetadata(c.md), nil
}

func copyMetadata(md *sitehead.SiteMetadata) *sitehead.SiteMetadata {
	if md == nil {
		return nil
	}
	cp := *md
	return &cp
}
