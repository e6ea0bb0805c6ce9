package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
)

// Memory is an in-process Cache with the same semantics as the Redis
// implementation. It backs package tests and local runs without Redis.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

var _ Cache = (*Memory)(nil)

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (c *Memory) Get(_ context.Context, key string, dest any) bool {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()

	if !ok {
		return false
	}
	return json.Unmarshal(entry.data, dest) == nil
}

func (c *Memory) Set(_ context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.mu.Lock()
	c.entries[key] = memoryEntry{data: data, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *Memory) Invalidate(_ context.Context, prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				delete(c.entries, key)
				break
			}
		}
	}
}

// Len reports the number of live entries. Test helper.
func (c *Memory) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
