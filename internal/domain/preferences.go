package domain

import "time"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// HeatmapSettings - параметры отрисовки тепловой карты
type HeatmapSettings struct {
	Radius       int     `json:"radius"`
	Blur         int     `json:"blur"`
	MaxIntensity float64 `json:"max_intensity"`
	MinOpacity   float64 `json:"min_opacity"`
}

// Preferences - сохраняемые настройки интерфейса.
// Единственное состояние, которое переживает перезапуск.
type Preferences struct {
	Theme       string          `json:"theme"`
	Heatmap     HeatmapSettings `json:"heatmap"`
	ShowMarkers bool            `json:"show_markers"`
	ShowPaths   bool            `json:"show_paths"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DefaultPreferences возвращает настройки по умолчанию
func DefaultPreferences() *Preferences {
	return &Preferences{
		Theme: ThemeLight,
		Heatmap: HeatmapSettings{
			Radius:       25,
			Blur:         15,
			MaxIntensity: 1.0,
			MinOpacity:   0.05,
		},
		ShowMarkers: true,
		ShowPaths:   true,
	}
}
