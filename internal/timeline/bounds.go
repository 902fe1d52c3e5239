package timeline

import (
	"errors"

	"github.com/timeline-visualizer/internal/domain"
)

// ErrNoData - в представлении нет ни одной точки
var ErrNoData = errors.New("no data to display")

// ComputeBounds вычисляет минимальный прямоугольник, содержащий все точки представления
func ComputeBounds(ds *domain.Dataset) (domain.Bounds, error) {
	points := ds.Points()
	if len(points) == 0 {
		return domain.Bounds{}, ErrNoData
	}

	b := domain.Bounds{SouthWest: points[0], NorthEast: points[0]}
	for _, p := range points[1:] {
		b.SouthWest.Lat = min(b.SouthWest.Lat, p.Lat)
		b.SouthWest.Lng = min(b.SouthWest.Lng, p.Lng)
		b.NorthEast.Lat = max(b.NorthEast.Lat, p.Lat)
		b.NorthEast.Lng = max(b.NorthEast.Lng, p.Lng)
	}
	return b, nil
}
