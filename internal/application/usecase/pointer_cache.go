package usecase

import (
	"encoding/json"
	"sync"
	"time"
)

// pointerCache keeps the last resolved char url pointer for a short while.
type pointerCache struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	value    json.RawMessage
	expireAt time.Time
}

func newPointerCache(ttl time.Duration) *pointerCache {
	return &pointerCache{
		ttl: ttl,
		now: time.Now,
	}
}

func (c *pointerCache) get() (json.RawMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.value == nil || !c.now().Before(c.expireAt) {
		return nil, false
	}

	return c.value, true
}

func (c *pointerCache) set(v json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = v
	c.expireAt = c.now().Add(c.ttl)
}
