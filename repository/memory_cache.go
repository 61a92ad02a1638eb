package repository

import (
	"context"
	"sync"
	"time"
)

const minSweepInterval = time.Minute

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is an in-process CacheRepository. A zero ttl keeps entries
// forever; otherwise expired entries are swept in the background until
// Stop is called.
type MemoryCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	data      map[string]memoryEntry
	now       func() time.Time
	stopSweep chan struct{}
	stopOnce  sync.Once
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return newMemoryCache(ttl, max(ttl, minSweepInterval), time.Now)
}

func newMemoryCache(ttl, sweepInterval time.Duration, now func() time.Time) *MemoryCache {
	m := &MemoryCache{
		ttl:       ttl,
		data:      make(map[string]memoryEntry),
		now:       now,
		stopSweep: make(chan struct{}),
	}
	if ttl > 0 {
		go m.sweepLoop(sweepInterval)
	}
	return m
}

func (m *MemoryCache) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stopSweep:
			return
		}
	}
}

// sweep drops every expired entry.
func (m *MemoryCache) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, entry := range m.data {
		if m.expired(entry) {
			delete(m.data, key)
		}
	}
}

// Stop ends the background sweep. It is safe to call more than once.
func (m *MemoryCache) Stop() {
	m.stopOnce.Do(func() { close(m.stopSweep) })
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return "", false
	}
	if m.expired(entry) {
		m.mu.Lock()
		if current, ok := m.data[key]; ok && m.expired(current) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt)
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	entry := memoryEntry{value: value}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	m.data[key] = entry
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones not yet swept
// included.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
