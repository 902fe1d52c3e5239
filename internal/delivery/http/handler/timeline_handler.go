package handler

import (
	"bytes"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/timeline-visualizer/internal/pkg/errors"
	"github.com/timeline-visualizer/internal/pkg/utils"
	"github.com/timeline-visualizer/internal/usecase"
	"github.com/timeline-visualizer/internal/usecase/dto"
)

// uploadField - имя поля multipart-формы с файлом
const uploadField = "file"

// TimelineHandler - обработчик загрузки и просмотра истории местоположений
type TimelineHandler struct {
	timelineUC *usecase.TimelineUseCase
	logger     *zap.Logger
}

// NewTimelineHandler - создание нового TimelineHandler
func NewTimelineHandler(timelineUC *usecase.TimelineUseCase, logger *zap.Logger) *TimelineHandler {
	return &TimelineHandler{
		timelineUC: timelineUC,
		logger:     logger,
	}
}

// Upload godoc
// @Summary Загрузка файла истории местоположений
// @Description Принимает JSON-экспорт Google Timeline (поле формы "file" или тело запроса) и делает его текущим набором данных. Примененный фильтр сбрасывается. При ошибке текущий набор не меняется.
// @Tags Timeline
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param file formData file false "Файл Timeline.json"
// @Success 201 {object} utils.SuccessResponse{data=dto.UploadResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 413 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/timeline [post]
func (h *TimelineHandler) Upload(c *fiber.Ctx) error {
	body, name, err := h.uploadBody(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	defer body.Close()

	result, err := h.timelineUC.Upload(c.Context(), body, name)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result, nil)
}

// uploadBody возвращает файл из multipart-формы или тело запроса целиком
func (h *TimelineHandler) uploadBody(c *fiber.Ctx) (io.ReadCloser, string, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		fh, err := c.FormFile(uploadField)
		if err != nil {
			return nil, "", errors.ErrInvalidRequest.WithMessage("multipart field \"file\" is required")
		}
		f, err := fh.Open()
		if err != nil {
			h.logger.Warn("Failed to open uploaded file", zap.String("file", fh.Filename), zap.Error(err))
			return nil, "", errors.ErrFileUnreadable
		}
		return f, fh.Filename, nil
	}

	if len(c.Body()) == 0 {
		return nil, "", errors.ErrInvalidRequest.WithMessage("request body is empty")
	}
	return io.NopCloser(bytes.NewReader(c.Body())), c.Query("name"), nil
}

// Summary godoc
// @Summary Сводка по текущему набору
// @Description Возвращает счетчики набора и текущего представления, примененный фильтр и границы представления
// @Tags Timeline
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SummaryResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/timeline [get]
func (h *TimelineHandler) Summary(c *fiber.Ctx) error {
	result, err := h.timelineUC.Summary(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Filtered: result.Filter != nil})
}

// View godoc
// @Summary Записи текущего представления
// @Description Возвращает точки трека, визиты и перемещения с учетом примененного фильтра
// @Tags Timeline
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ViewResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/timeline/view [get]
func (h *TimelineHandler) View(c *fiber.Ctx) error {
	result, err := h.timelineUC.View(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    len(result.TrackPoints) + len(result.Visits) + len(result.Activities),
		Filtered: result.Filter != nil,
	})
}

// Bounds godoc
// @Summary Границы представления
// @Description Минимальный прямоугольник [[south, west], [north, east]], содержащий все точки представления
// @Tags Timeline
// @Produce json
// @Param pad query number false "Доля размеров для расширения с каждой стороны (0..1)"
// @Success 200 {object} utils.SuccessResponse{data=dto.BoundsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/timeline/bounds [get]
func (h *TimelineHandler) Bounds(c *fiber.Ctx) error {
	var req dto.BoundsRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.timelineUC.Bounds(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Heatmap godoc
// @Summary Тепловая карта
// @Description Тройки [lat, lng, weight] по точкам трека представления. С aggregate=true точки группируются по ячейкам S2.
// @Tags Timeline
// @Produce json
// @Param aggregate query bool false "Группировать по ячейкам S2"
// @Param level query int false "Уровень ячеек S2 (0..30)"
// @Success 200 {object} utils.SuccessResponse{data=dto.HeatmapResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/timeline/heatmap [get]
func (h *TimelineHandler) Heatmap(c *fiber.Ctx) error {
	var req dto.HeatmapRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.timelineUC.Heatmap(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Points)})
}

// Events godoc
// @Summary Последние события
// @Description Визиты и перемещения представления, от новых к старым
// @Tags Timeline
// @Produce json
// @Param limit query int false "Количество событий (1..500)" default(50)
// @Success 200 {object} utils.SuccessResponse{data=dto.EventsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/timeline/events [get]
func (h *TimelineHandler) Events(c *fiber.Ctx) error {
	var req dto.EventsRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.timelineUC.Events(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Limit: len(result.Events),
	})
}

// ApplyFilter godoc
// @Summary Фильтр по датам
// @Description Ограничивает представление календарными датами from..to включительно (YYYY-MM-DD). Пустые границы не ограничивают.
// @Tags Timeline
// @Accept json
// @Produce json
// @Param request body dto.FilterRequest true "Окно дат"
// @Success 200 {object} utils.SuccessResponse{data=dto.SummaryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/timeline/filter [post]
func (h *TimelineHandler) ApplyFilter(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.timelineUC.ApplyFilter(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Filtered: result.Filter != nil})
}

// ClearFilter godoc
// @Summary Сброс фильтра
// @Description Возвращает представление ко всему набору
// @Tags Timeline
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SummaryResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/timeline/filter [delete]
func (h *TimelineHandler) ClearFilter(c *fiber.Ctx) error {
	result, err := h.timelineUC.ClearFilter(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
