package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/timeline-visualizer/internal/domain"
	"github.com/timeline-visualizer/internal/domain/repository"
)

// preferencesRepository хранит настройки одним JSON-значением под фиксированным ключом
type preferencesRepository struct {
	cache  repository.CacheRepository
	key    string
	ttl    time.Duration
	logger *zap.Logger
}

// NewPreferencesRepository создает репозиторий настроек поверх любого CacheRepository
func NewPreferencesRepository(cache repository.CacheRepository, key string, ttl time.Duration, logger *zap.Logger) repository.PreferencesRepository {
	return &preferencesRepository{
		cache:  cache,
		key:    key,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *preferencesRepository) Get(ctx context.Context) (*domain.Preferences, error) {
	data, err := r.cache.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		r.logger.Error("Failed to unmarshal preferences", zap.String("key", r.key), zap.Error(err))
		return nil, fmt.Errorf("unmarshal preferences: %w", err)
	}

	return &prefs, nil
}

func (r *preferencesRepository) Save(ctx context.Context, prefs *domain.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	return r.cache.Set(ctx, r.key, data, r.ttl)
}

func (r *preferencesRepository) Delete(ctx context.Context) error {
	return r.cache.Delete(ctx, r.key)
}
