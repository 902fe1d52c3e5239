package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/timeline-visualizer/internal/domain"
	"github.com/timeline-visualizer/internal/domain/repository"
	"github.com/timeline-visualizer/internal/pkg/errors"
	"github.com/timeline-visualizer/internal/pkg/validator"
	"github.com/timeline-visualizer/internal/usecase/dto"
)

type PreferencesUseCase struct {
	repo   repository.PreferencesRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewPreferencesUseCase(
	repo repository.PreferencesRepository,
	logger *zap.Logger,
) *PreferencesUseCase {
	return &PreferencesUseCase{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Get возвращает сохраненные настройки. Отсутствующие или нечитаемые
// настройки заменяются значениями по умолчанию.
func (uc *PreferencesUseCase) Get(ctx context.Context) (*domain.Preferences, error) {
	prefs, err := uc.repo.Get(ctx)
	if err != nil {
		uc.logger.Warn("Failed to load preferences, using defaults", zap.Error(err))
		return domain.DefaultPreferences(), nil
	}
	if prefs == nil {
		return domain.DefaultPreferences(), nil
	}
	return sanitizePreferences(prefs), nil
}

// Update применяет заданные поля поверх текущих настроек и сохраняет результат
func (uc *PreferencesUseCase) Update(ctx context.Context, req dto.PreferencesRequest) (*domain.Preferences, error) {
	if err := validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	prefs, err := uc.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.Theme != nil {
		prefs.Theme = *req.Theme
	}
	if req.HeatmapRadius != nil {
		prefs.Heatmap.Radius = *req.HeatmapRadius
	}
	if req.HeatmapBlur != nil {
		prefs.Heatmap.Blur = *req.HeatmapBlur
	}
	if req.HeatmapMaxIntensity != nil {
		prefs.Heatmap.MaxIntensity = *req.HeatmapMaxIntensity
	}
	if req.HeatmapMinOpacity != nil {
		prefs.Heatmap.MinOpacity = *req.HeatmapMinOpacity
	}
	if req.ShowMarkers != nil {
		prefs.ShowMarkers = *req.ShowMarkers
	}
	if req.ShowPaths != nil {
		prefs.ShowPaths = *req.ShowPaths
	}
	prefs.UpdatedAt = uc.now().UTC()

	if err := uc.repo.Save(ctx, prefs); err != nil {
		uc.logger.Error("Failed to save preferences", zap.Error(err))
		return nil, errors.ErrPreferencesError
	}

	return prefs, nil
}

// Reset удаляет сохраненные настройки и возвращает значения по умолчанию
func (uc *PreferencesUseCase) Reset(ctx context.Context) (*domain.Preferences, error) {
	if err := uc.repo.Delete(ctx); err != nil {
		uc.logger.Error("Failed to reset preferences", zap.Error(err))
		return nil, errors.ErrPreferencesError
	}
	return domain.DefaultPreferences(), nil
}

// sanitizePreferences заменяет неизвестные значения значениями по умолчанию
func sanitizePreferences(p *domain.Preferences) *domain.Preferences {
	def := domain.DefaultPreferences()
	if p.Theme != domain.ThemeLight && p.Theme != domain.ThemeDark {
		p.Theme = def.Theme
	}
	if p.Heatmap.Radius <= 0 {
		p.Heatmap.Radius = def.Heatmap.Radius
	}
	if p.Heatmap.Blur < 0 {
		p.Heatmap.Blur = def.Heatmap.Blur
	}
	if p.Heatmap.MaxIntensity <= 0 {
		p.Heatmap.MaxIntensity = def.Heatmap.MaxIntensity
	}
	if p.Heatmap.MinOpacity < 0 || p.Heatmap.MinOpacity > 1 {
		p.Heatmap.MinOpacity = def.Heatmap.MinOpacity
	}
	return p
}
