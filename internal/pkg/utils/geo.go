package utils

import (
	"math"

	"github.com/golang/geo/s2"
)

const earthRadiusMeters = 6371008.8

// DistanceMeters вычисляет расстояние по дуге большого круга между двумя точками в метрах
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * earthRadiusMeters
}

// ValidateCoordinates проверяет валидность координат; NaN не проходит проверку
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// IsFinite сообщает, что число не NaN и не бесконечность
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
