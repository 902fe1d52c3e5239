package memory

import (
	"context"
	"sync"
	"time"

	"github.com/timeline-visualizer/internal/domain/repository"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// cacheRepository - кеш в памяти процесса, используется без Redis
type cacheRepository struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewCacheRepository() repository.CacheRepository {
	return newCacheRepository(time.Now)
}

func newCacheRepository(now func() time.Time) *cacheRepository {
	return &cacheRepository{
		entries: make(map[string]entry),
		now:     now,
	}
}

func (r *cacheRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	e, ok := r.entries[key]
	r.mu.RUnlock()

	if !ok || e.expired(r.now()) {
		return nil, nil
	}

	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

func (r *cacheRepository) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = r.now().Add(ttl)
	}

	r.mu.Lock()
	r.entries[key] = e
	r.mu.Unlock()
	return nil
}

func (r *cacheRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	delete(r.entries, key)
	r.mu.Unlock()
	return nil
}
