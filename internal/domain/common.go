package domain

import "math"

// Bounds - минимальный прямоугольник, содержащий все точки представления
type Bounds struct {
	SouthWest GeoPoint `json:"south_west"`
	NorthEast GeoPoint `json:"north_east"`
}

// Array возвращает границы в виде [[minLat, minLng], [maxLat, maxLng]]
func (b Bounds) Array() [2][2]float64 {
	return [2][2]float64{
		{b.SouthWest.Lat, b.SouthWest.Lng},
		{b.NorthEast.Lat, b.NorthEast.Lng},
	}
}

// Center возвращает центр прямоугольника
func (b Bounds) Center() GeoPoint {
	return GeoPoint{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}

// Pad расширяет прямоугольник на долю его размеров с каждой стороны,
// не выходя за допустимые диапазоны координат.
func (b Bounds) Pad(ratio float64) Bounds {
	if ratio <= 0 {
		return b
	}
	dLat := (b.NorthEast.Lat - b.SouthWest.Lat) * ratio
	dLng := (b.NorthEast.Lng - b.SouthWest.Lng) * ratio
	return Bounds{
		SouthWest: GeoPoint{
			Lat: math.Max(b.SouthWest.Lat-dLat, -90),
			Lng: math.Max(b.SouthWest.Lng-dLng, -180),
		},
		NorthEast: GeoPoint{
			Lat: math.Min(b.NorthEast.Lat+dLat, 90),
			Lng: math.Min(b.NorthEast.Lng+dLng, 180),
		},
	}
}

// Summary - счетчики набора данных для панели статистики
type Summary struct {
	TrackPoints int       `json:"track_points"`
	Visits      int       `json:"visits"`
	Activities  int       `json:"activities"`
	DateRange   DateRange `json:"date_range"`
}
