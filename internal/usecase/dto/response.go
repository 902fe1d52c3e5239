package dto

import (
	"time"

	"github.com/timeline-visualizer/internal/domain"
	"github.com/timeline-visualizer/internal/timeline"
)

// DateFilter - примененное окно фильтра
type DateFilter struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// NewDateFilter возвращает nil для пустого окна
func NewDateFilter(w timeline.DateWindow) *DateFilter {
	if w.IsZero() {
		return nil
	}
	return &DateFilter{From: w.FromDate(), To: w.ToDate()}
}

// UploadResponse - результат загрузки файла
type UploadResponse struct {
	DatasetID string               `json:"dataset_id"`
	FileName  string               `json:"file_name,omitempty"`
	LoadedAt  time.Time            `json:"loaded_at"`
	Summary   domain.Summary       `json:"summary"`
	Stats     *timeline.BuildStats `json:"stats"`
	Bounds    *[2][2]float64       `json:"bounds,omitempty"`
}

// SummaryResponse - сводка по текущему набору и его представлению
type SummaryResponse struct {
	DatasetID string         `json:"dataset_id"`
	FileName  string         `json:"file_name,omitempty"`
	LoadedAt  time.Time      `json:"loaded_at"`
	Dataset   domain.Summary `json:"dataset"`
	View      domain.Summary `json:"view"`
	Filter    *DateFilter    `json:"filter,omitempty"`
	Empty     bool           `json:"empty"`
	Bounds    *[2][2]float64 `json:"bounds,omitempty"`
}

// ViewResponse - записи текущего представления для отрисовки
type ViewResponse struct {
	DatasetID   string              `json:"dataset_id"`
	Filter      *DateFilter         `json:"filter,omitempty"`
	TrackPoints []domain.TrackPoint `json:"track_points"`
	Visits      []domain.Visit      `json:"visits"`
	Activities  []domain.Activity   `json:"activities"`
	DateRange   domain.DateRange    `json:"date_range"`
}

// BoundsResponse - прямоугольник [[south, west], [north, east]] и его центр
type BoundsResponse struct {
	Bounds [2][2]float64   `json:"bounds"`
	Center domain.GeoPoint `json:"center"`
}

// HeatmapResponse - тройки [lat, lng, weight]
type HeatmapResponse struct {
	Points     []timeline.HeatPoint `json:"points"`
	Aggregated bool                 `json:"aggregated"`
	Level      *int                 `json:"level,omitempty"`
}

// EventsResponse - последние события, от новых к старым
type EventsResponse struct {
	Events []timeline.Event `json:"events"`
	Total  int              `json:"total"`
}
