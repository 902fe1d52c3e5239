package repository

import (
	"context"
	"time"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу. Промах - nil, nil
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL. Нулевой TTL - без истечения
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error
}
