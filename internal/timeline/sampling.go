package timeline

import "github.com/timeline-visualizer/internal/domain"

// SamplingConfig - параметры прореживания точек трека.
// Значения подобраны под производительность отрисовки и вынесены в конфигурацию.
type SamplingConfig struct {
	// PathStride - шаг для путей длиной не больше LargePathThreshold
	PathStride int
	// LargePathStride - шаг для путей длиннее LargePathThreshold
	LargePathStride int
	// LargePathThreshold - граница между обычным и длинным путем
	LargePathThreshold int
	// MaxTrackPoints - общий предел точек трека в наборе
	MaxTrackPoints int
}

// DefaultSamplingConfig возвращает значения по умолчанию
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		PathStride:         10,
		LargePathStride:    50,
		LargePathThreshold: 1000,
		MaxTrackPoints:     50000,
	}
}

// withDefaults заменяет неположительные значения значениями по умолчанию
func (c SamplingConfig) withDefaults() SamplingConfig {
	def := DefaultSamplingConfig()
	if c.PathStride <= 0 {
		c.PathStride = def.PathStride
	}
	if c.LargePathStride <= 0 {
		c.LargePathStride = def.LargePathStride
	}
	if c.LargePathThreshold <= 0 {
		c.LargePathThreshold = def.LargePathThreshold
	}
	if c.MaxTrackPoints <= 0 {
		c.MaxTrackPoints = def.MaxTrackPoints
	}
	return c
}

// pathStride выбирает шаг для пути из n точек
func (c SamplingConfig) pathStride(n int) int {
	if n > c.LargePathThreshold {
		return c.LargePathStride
	}
	return c.PathStride
}

// strideIndices возвращает индексы, оставляемые прореживанием:
// каждый k-й элемент и всегда последний.
func strideIndices(n, k int) []int {
	if n <= 0 {
		return nil
	}
	if k < 1 {
		k = 1
	}

	indices := make([]int, 0, n/k+2)
	for i := 0; i < n; i += k {
		indices = append(indices, i)
	}
	if (n-1)%k != 0 {
		indices = append(indices, n-1)
	}
	return indices
}

// capTrackPoints равномерно прореживает точки до limit, сохраняя порядок.
// Берется каждая ceil(n/limit)-я точка; первая и последняя точки сохраняются всегда.
func capTrackPoints(points []domain.TrackPoint, limit int) []domain.TrackPoint {
	n := len(points)
	if limit <= 0 || n <= limit {
		return points
	}

	stride := (n + limit - 1) / limit
	out := make([]domain.TrackPoint, 0, limit)
	for i := 0; i < n; i += stride {
		out = append(out, points[i])
	}

	if (n-1)%stride != 0 {
		if len(out) < limit {
			out = append(out, points[n-1])
		} else {
			out[len(out)-1] = points[n-1]
		}
	}

	return out
}
