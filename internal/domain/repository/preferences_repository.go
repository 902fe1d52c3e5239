package repository

import (
	"context"

	"github.com/timeline-visualizer/internal/domain"
)

// PreferencesRepository хранит настройки отображения
type PreferencesRepository interface {
	// Get возвращает сохраненные настройки или nil, nil, если их нет
	Get(ctx context.Context) (*domain.Preferences, error)

	// Save сохраняет настройки целиком
	Save(ctx context.Context, prefs *domain.Preferences) error

	// Delete удаляет сохраненные настройки
	Delete(ctx context.Context) error
}
