package dto

// FilterRequest - запрос на фильтрацию по календарным датам (YYYY-MM-DD, границы включаются).
// DatasetID, если указан, должен совпадать с текущим набором.
type FilterRequest struct {
	DatasetID string `json:"dataset_id,omitempty" validate:"omitempty,uuid"`
	From      string `json:"from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	To        string `json:"to,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// BoundsRequest - запрос границ представления
type BoundsRequest struct {
	Pad float64 `query:"pad" validate:"omitempty,min=0,max=1"`
}

// HeatmapRequest - запрос тепловой карты. Level не задан - уровень из конфигурации
type HeatmapRequest struct {
	Aggregate bool `query:"aggregate"`
	Level     *int `query:"level" validate:"omitempty,min=0,max=30"`
}

// EventsRequest - запрос ленты последних событий
type EventsRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=500"`
}

// PreferencesRequest - частичное обновление настроек, nil-поля не меняются
type PreferencesRequest struct {
	Theme               *string  `json:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	HeatmapRadius       *int     `json:"heatmap_radius,omitempty" validate:"omitempty,min=1,max=100"`
	HeatmapBlur         *int     `json:"heatmap_blur,omitempty" validate:"omitempty,min=0,max=100"`
	HeatmapMaxIntensity *float64 `json:"heatmap_max_intensity,omitempty" validate:"omitempty,gt=0,max=100"`
	HeatmapMinOpacity   *float64 `json:"heatmap_min_opacity,omitempty" validate:"omitempty,min=0,max=1"`
	ShowMarkers         *bool    `json:"show_markers,omitempty"`
	ShowPaths           *bool    `json:"show_paths,omitempty"`
}
