package timeline

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/timeline-visualizer/internal/domain"
	"github.com/timeline-visualizer/internal/pkg/utils"
)

const (
	degreeSign = "°"
	geoScheme  = "geo:"
)

// ParseCoordinate разбирает значение вида "lat°, lng°" или "lat, lng".
// Принимает произвольное значение: строку или неразобранный JSON.
// Любой некорректный ввод дает ok=false, паники и ошибки наружу не выходят.
func ParseCoordinate(v any) (domain.GeoPoint, bool) {
	switch s := v.(type) {
	case string:
		return ParseCoordinateString(s)
	case json.RawMessage:
		str, ok := decodeString(s)
		if !ok {
			return domain.GeoPoint{}, false
		}
		return ParseCoordinateString(str)
	default:
		return domain.GeoPoint{}, false
	}
}

// ParseCoordinateString разбирает строку координат.
// iOS-экспорт пишет координаты как "geo:30.123456,-105.987654", префикс отбрасывается.
func ParseCoordinateString(s string) (domain.GeoPoint, bool) {
	if s == "" {
		return domain.GeoPoint{}, false
	}

	clean := strings.TrimSpace(strings.ReplaceAll(s, degreeSign, ""))
	clean = strings.TrimPrefix(clean, geoScheme)

	parts := strings.Split(clean, ",")
	if len(parts) != 2 {
		return domain.GeoPoint{}, false
	}

	lat, ok := parseDegrees(parts[0])
	if !ok {
		return domain.GeoPoint{}, false
	}
	lng, ok := parseDegrees(parts[1])
	if !ok {
		return domain.GeoPoint{}, false
	}

	if !utils.ValidateCoordinates(lat, lng) {
		return domain.GeoPoint{}, false
	}

	return domain.GeoPoint{Lat: lat, Lng: lng}, true
}

func parseDegrees(part string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
