package usecase

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/timeline-visualizer/internal/config"
	"github.com/timeline-visualizer/internal/domain"
	"github.com/timeline-visualizer/internal/pkg/errors"
	"github.com/timeline-visualizer/internal/pkg/validator"
	"github.com/timeline-visualizer/internal/session"
	"github.com/timeline-visualizer/internal/timeline"
	"github.com/timeline-visualizer/internal/usecase/dto"
)

type TimelineUseCase struct {
	session *session.Session
	builder *timeline.Builder
	cfg     config.TimelineConfig
	logger  *zap.Logger
}

func NewTimelineUseCase(
	sess *session.Session,
	cfg config.TimelineConfig,
	logger *zap.Logger,
) *TimelineUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &TimelineUseCase{
		session: sess,
		builder: timeline.NewBuilder(cfg.Sampling(), cfg.Location),
		cfg:     cfg,
		logger:  logger,
	}
}

// Upload строит новый набор из документа и делает его текущим.
// При любой ошибке текущий набор не меняется.
func (uc *TimelineUseCase) Upload(ctx context.Context, r io.Reader, fileName string) (*dto.UploadResponse, error) {
	ticket := uc.session.Begin()
	started := time.Now()

	ds, stats, err := uc.builder.Build(timeline.LimitReader(contextReader{ctx: ctx, r: r}, uc.cfg.MaxUploadBytes))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		uc.logger.Warn("Failed to build timeline",
			zap.String("file", fileName),
			zap.Error(err),
		)
		return nil, uc.buildError(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, ok := uc.session.Replace(ticket, ds, fileName)
	if !ok {
		uc.logger.Info("Discarding upload superseded by a newer one", zap.String("file", fileName))
		return nil, errors.ErrStaleDataset
	}

	summary := ds.Summarize()
	uc.logger.Info("Timeline loaded",
		zap.String("dataset_id", snap.DatasetID.String()),
		zap.String("file", fileName),
		zap.Int("segments", stats.Segments),
		zap.Int("empty_segments", stats.EmptySegments),
		zap.Int("track_points", summary.TrackPoints),
		zap.Int("visits", summary.Visits),
		zap.Int("activities", summary.Activities),
		zap.Int("capped_points", stats.CappedPoints),
		zap.Int("inverted_spans", stats.InvertedSpans),
		zap.Duration("took", time.Since(started)),
	)

	return &dto.UploadResponse{
		DatasetID: snap.DatasetID.String(),
		FileName:  snap.FileName,
		LoadedAt:  snap.LoadedAt,
		Summary:   summary,
		Stats:     stats,
		Bounds:    boundsArray(ds),
	}, nil
}

func (uc *TimelineUseCase) buildError(err error) error {
	switch {
	case stderrors.Is(err, timeline.ErrInvalidFormat):
		return errors.ErrInvalidFormat
	case stderrors.Is(err, timeline.ErrDocumentTooLarge):
		return errors.ErrFileTooLarge.WithDetails(map[string]interface{}{
			"max_bytes": uc.cfg.MaxUploadBytes,
		})
	case stderrors.Is(err, timeline.ErrMalformedJSON):
		return errors.ErrMalformedJSON.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	default:
		return errors.ErrFileUnreadable
	}
}

// Summary возвращает сводку по набору и текущему представлению
func (uc *TimelineUseCase) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	snap, err := uc.session.Current()
	if err != nil {
		return nil, sessionError(err)
	}
	return summaryResponse(snap), nil
}

// View возвращает записи текущего представления
func (uc *TimelineUseCase) View(ctx context.Context) (*dto.ViewResponse, error) {
	snap, err := uc.session.Current()
	if err != nil {
		return nil, sessionError(err)
	}

	return &dto.ViewResponse{
		DatasetID:   snap.DatasetID.String(),
		Filter:      dto.NewDateFilter(snap.Window),
		TrackPoints: snap.View.TrackPoints,
		Visits:      snap.View.Visits,
		Activities:  snap.View.Activities,
		DateRange:   snap.View.DateRange,
	}, nil
}

// ApplyFilter заменяет представление записями, попавшими в окно дат.
// Пустые from и to дают весь набор.
func (uc *TimelineUseCase) ApplyFilter(ctx context.Context, req dto.FilterRequest) (*dto.SummaryResponse, error) {
	if err := validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	snap, err := uc.session.Current()
	if err != nil {
		return nil, sessionError(err)
	}
	if req.DatasetID != "" {
		id, err := uuid.Parse(req.DatasetID)
		if err != nil {
			return nil, errors.ErrInvalidRequest
		}
		if id != snap.DatasetID {
			return nil, errors.ErrStaleDataset
		}
	}

	window, err := timeline.ParseDateWindow(req.From, req.To, uc.cfg.Location)
	if err != nil {
		return nil, errors.ErrInvalidDateRange.WithMessage(err.Error())
	}

	view := timeline.FilterByDate(snap.Dataset, window)
	next, err := uc.session.SetView(snap.DatasetID, window, view)
	if err != nil {
		return nil, sessionError(err)
	}

	uc.logger.Debug("Filter applied",
		zap.String("dataset_id", next.DatasetID.String()),
		zap.String("from", window.FromDate()),
		zap.String("to", window.ToDate()),
		zap.Int("track_points", len(view.TrackPoints)),
		zap.Int("visits", len(view.Visits)),
		zap.Int("activities", len(view.Activities)),
	)

	return summaryResponse(next), nil
}

// ClearFilter возвращает представление ко всему набору
func (uc *TimelineUseCase) ClearFilter(ctx context.Context) (*dto.SummaryResponse, error) {
	snap, err := uc.session.ClearView()
	if err != nil {
		return nil, sessionError(err)
	}
	return summaryResponse(snap), nil
}

// Bounds возвращает прямоугольник, охватывающий все точки представления
func (uc *TimelineUseCase) Bounds(ctx context.Context, req dto.BoundsRequest) (*dto.BoundsResponse, error) {
	if err := validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	snap, err := uc.session.Current()
	if err != nil {
		return nil, sessionError(err)
	}

	b, err := timeline.ComputeBounds(snap.View)
	if err != nil {
		return nil, errors.ErrNoData
	}
	b = b.Pad(req.Pad)

	return &dto.BoundsResponse{
		Bounds: b.Array(),
		Center: b.Center(),
	}, nil
}

// Heatmap возвращает тройки для слоя тепловой карты по точкам трека представления
func (uc *TimelineUseCase) Heatmap(ctx context.Context, req dto.HeatmapRequest) (*dto.HeatmapResponse, error) {
	if err := validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	snap, err := uc.session.Current()
	if err != nil {
		return nil, sessionError(err)
	}

	if !req.Aggregate {
		return &dto.HeatmapResponse{Points: timeline.HeatmapPoints(snap.View)}, nil
	}

	level := uc.cfg.HeatmapLevel
	if req.Level != nil {
		level = *req.Level
	}
	return &dto.HeatmapResponse{
		Points:     timeline.AggregateHeatmap(snap.View, level),
		Aggregated: true,
		Level:      &level,
	}, nil
}

// Events возвращает последние визиты и перемещения представления
func (uc *TimelineUseCase) Events(ctx context.Context, req dto.EventsRequest) (*dto.EventsResponse, error) {
	if err := validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	snap, err := uc.session.Current()
	if err != nil {
		return nil, sessionError(err)
	}

	limit := req.Limit
	if limit == 0 {
		limit = uc.cfg.EventsLimit
	}

	return &dto.EventsResponse{
		Events: timeline.RecentEvents(snap.View, limit),
		Total:  len(snap.View.Visits) + len(snap.View.Activities),
	}, nil
}

func summaryResponse(snap session.Snapshot) *dto.SummaryResponse {
	return &dto.SummaryResponse{
		DatasetID: snap.DatasetID.String(),
		FileName:  snap.FileName,
		LoadedAt:  snap.LoadedAt,
		Dataset:   snap.Dataset.Summarize(),
		View:      snap.View.Summarize(),
		Filter:    dto.NewDateFilter(snap.Window),
		Empty:     snap.View.IsEmpty(),
		Bounds:    boundsArray(snap.View),
	}
}

func boundsArray(ds *domain.Dataset) *[2][2]float64 {
	b, err := timeline.ComputeBounds(ds)
	if err != nil {
		return nil
	}
	arr := b.Array()
	return &arr
}

func sessionError(err error) error {
	switch {
	case stderrors.Is(err, session.ErrNoDataset):
		return errors.ErrNoDataset
	case stderrors.Is(err, session.ErrStaleDataset):
		return errors.ErrStaleDataset
	default:
		return err
	}
}

// contextReader прерывает чтение загружаемого файла при отмене запроса
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
