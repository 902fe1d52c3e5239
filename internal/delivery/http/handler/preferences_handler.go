package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/timeline-visualizer/internal/pkg/errors"
	"github.com/timeline-visualizer/internal/pkg/utils"
	"github.com/timeline-visualizer/internal/usecase"
	"github.com/timeline-visualizer/internal/usecase/dto"
)

// PreferencesHandler - обработчик настроек отображения
type PreferencesHandler struct {
	preferencesUC *usecase.PreferencesUseCase
	logger        *zap.Logger
}

// NewPreferencesHandler - создание нового PreferencesHandler
func NewPreferencesHandler(preferencesUC *usecase.PreferencesUseCase, logger *zap.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		preferencesUC: preferencesUC,
		logger:        logger,
	}
}

// Get godoc
// @Summary Настройки отображения
// @Tags Preferences
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Preferences}
// @Router /api/v1/preferences [get]
func (h *PreferencesHandler) Get(c *fiber.Ctx) error {
	prefs, err := h.preferencesUC.Get(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, prefs, nil)
}

// Update godoc
// @Summary Изменение настроек отображения
// @Description Меняет только переданные поля
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body dto.PreferencesRequest true "Изменяемые настройки"
// @Success 200 {object} utils.SuccessResponse{data=domain.Preferences}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/preferences [put]
func (h *PreferencesHandler) Update(c *fiber.Ctx) error {
	var req dto.PreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	prefs, err := h.preferencesUC.Update(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, prefs, nil)
}

// Reset godoc
// @Summary Сброс настроек отображения
// @Tags Preferences
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Preferences}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/preferences [delete]
func (h *PreferencesHandler) Reset(c *fiber.Ctx) error {
	prefs, err := h.preferencesUC.Reset(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, prefs, nil)
}
