package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ignatzorin/portfolio-backend/internal/goroutine"
)

// SiteCacheKey — ключ собранной публичной страницы.
const SiteCacheKey = "public:site"

const cacheCleanupInterval = 5 * time.Minute

// CacheService хранит значения в памяти с TTL.
// generation растёт при каждой инвалидации; GetOrSet не кладёт значение,
// посчитанное до неё.
type CacheService struct {
	mu         sync.RWMutex
	cache      map[string]cacheEntry
	generation uint64
	now        func() time.Time
}

type cacheEntry struct {
	data      any
	expiresAt time.Time
}

// NewCacheService создаёт кэш. Фоновая очистка завершается вместе с ctx.
func NewCacheService(ctx context.Context) *CacheService {
	cs := &CacheService{
		cache: make(map[string]cacheEntry),
		now:   time.Now,
	}
	goroutine.SafeGoWithContext(ctx, "cache-cleanup", cs.cleanup)
	return cs
}

// Get возвращает значение, если оно есть и не истекло.
func (cs *CacheService) Get(key string) (any, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	entry, exists := cs.cache[key]
	if !exists || cs.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.data, true
}

func (cs *CacheService) Set(key string, value any, ttl time.Duration) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.cache[key] = cacheEntry{data: value, expiresAt: cs.now().Add(ttl)}
}

func (cs *CacheService) Delete(key string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	delete(cs.cache, key)
	cs.generation++
}

// InvalidateByPrefix удаляет все ключи с заданным префиксом.
func (cs *CacheService) InvalidateByPrefix(prefix string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for key := range cs.cache {
		if strings.HasPrefix(key, prefix) {
			delete(cs.cache, key)
		}
	}
	cs.generation++
}

// InvalidatePublic сбрасывает всё, что отдаётся публичному сайту.
func (cs *CacheService) InvalidatePublic() {
	cs.InvalidateByPrefix("public:")
}

func (cs *CacheService) cleanup(ctx context.Context) {
	ticker := time.NewTicker(cacheCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cs.mu.Lock()
			now := cs.now()
			for key, entry := range cs.cache {
				if now.After(entry.expiresAt) {
					delete(cs.cache, key)
				}
			}
			cs.mu.Unlock()
		}
	}
}

func (cs *CacheService) currentGeneration() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.generation
}

// setIfGeneration кладёт значение, только если с момента gen не было инвалидаций.
func (cs *CacheService) setIfGeneration(key string, value any, ttl time.Duration, gen uint64) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.generation != gen {
		return false
	}
	cs.cache[key] = cacheEntry{data: value, expiresAt: cs.now().Add(ttl)}
	return true
}

// GetOrSet достаёт значение из кэша или вычисляет его. Ошибки не кэшируются.
// Если во время fn кэш инвалидировали, результат отдаётся, но не сохраняется.
func GetOrSet[T any](cs *CacheService, key string, ttl time.Duration, fn func() (T, error)) (T, error) {
	if cs == nil {
		return fn()
	}
	if value, found := cs.Get(key); found {
		if typed, ok := value.(T); ok {
			return typed, nil
		}
	}

	gen := cs.currentGeneration()
	value, err := fn()
	if err != nil {
		return value, err
	}
	cs.setIfGeneration(key, value, ttl, gen)
	return value, nil
}
