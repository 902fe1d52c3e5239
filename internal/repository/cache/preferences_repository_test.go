package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/timeline-visualizer/internal/domain"
	"github.com/timeline-visualizer/internal/repository/cache"
	"github.com/timeline-visualizer/internal/repository/memory"
)

func TestPreferencesRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCacheRepository()
	repo := cache.NewPreferencesRepository(store, "test:preferences", 0, zap.NewNop())

	prefs, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, prefs, "nothing saved yet")

	saved := domain.DefaultPreferences()
	saved.Theme = domain.ThemeDark
	saved.Heatmap.Radius = 40
	saved.UpdatedAt = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, saved))

	prefs, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.Equal(t, *saved, *prefs)

	require.NoError(t, repo.Delete(ctx))
	prefs, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, prefs)
}

func TestPreferencesRepository_CorruptValue(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCacheRepository()
	require.NoError(t, store.Set(ctx, "test:preferences", []byte("{not json"), 0))

	repo := cache.NewPreferencesRepository(store, "test:preferences", 0, zap.NewNop())
	_, err := repo.Get(ctx)
	assert.Error(t, err)
}
