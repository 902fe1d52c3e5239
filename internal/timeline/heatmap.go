package timeline

import (
	"sort"

	"github.com/golang/geo/s2"
	"github.com/timeline-visualizer/internal/domain"
)

// HeatPoint - тройка [lat, lng, weight] для слоя тепловой карты
type HeatPoint [3]float64

// HeatmapPoints возвращает по одной тройке с весом 1 на каждую точку трека
func HeatmapPoints(ds *domain.Dataset) []HeatPoint {
	if ds == nil {
		return []HeatPoint{}
	}
	points := make([]HeatPoint, 0, len(ds.TrackPoints))
	for _, tp := range ds.TrackPoints {
		points = append(points, HeatPoint{tp.Position.Lat, tp.Position.Lng, 1})
	}
	return points
}

// AggregateHeatmap группирует точки трека по ячейкам S2 заданного уровня.
// Каждая ячейка дает одну тройку в своем центре с весом, равным числу точек.
// Результат упорядочен по идентификатору ячейки.
func AggregateHeatmap(ds *domain.Dataset, level int) []HeatPoint {
	if ds == nil || len(ds.TrackPoints) == 0 {
		return []HeatPoint{}
	}
	level = max(0, min(level, s2.MaxLevel))

	counts := make(map[s2.CellID]int)
	for _, tp := range ds.TrackPoints {
		ll := s2.LatLngFromDegrees(tp.Position.Lat, tp.Position.Lng)
		counts[s2.CellIDFromLatLng(ll).Parent(level)]++
	}

	cells := make([]s2.CellID, 0, len(counts))
	for id := range counts {
		cells = append(cells, id)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i] < cells[j] })

	points := make([]HeatPoint, 0, len(cells))
	for _, id := range cells {
		center := id.LatLng()
		points = append(points, HeatPoint{center.Lat.Degrees(), center.Lng.Degrees(), float64(counts[id])})
	}
	return points
}
