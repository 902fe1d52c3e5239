package timeline

import (
	"encoding/json"
	"math"
	"time"

	"github.com/timeline-visualizer/internal/domain"
)

const (
	DefaultVisitCategory = "UNKNOWN"
	DefaultPlaceID       = "unknown"
	DefaultActivityType  = "UNKNOWN_ACTIVITY_TYPE"
)

const maxOffsetMinutes = float64(math.MaxInt64) / float64(time.Minute)

// Normalizer преобразует один сырой семантический сегмент в нормализованные записи.
// Ошибка в любой части сегмента отбрасывает только эту часть.
type Normalizer struct {
	sampling SamplingConfig
	loc      *time.Location
}

// NewNormalizer создает Normalizer. loc используется для меток времени без часового пояса.
func NewNormalizer(sampling SamplingConfig, loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{
		sampling: sampling.withDefaults(),
		loc:      loc,
	}
}

// Normalize разбирает один сегмент. Никогда не паникует и не возвращает ошибку:
// все проблемы отражаются в SegmentResult как пропуски.
func (n *Normalizer) Normalize(raw json.RawMessage) SegmentResult {
	var res SegmentResult

	seg, ok := decodeObject(raw)
	if !ok {
		if !isNull(raw) {
			res.skip(SkipSegmentNotObject)
		}
		return res
	}

	res.Start = n.segmentTime(seg, "startTime", SkipStartTime)
	res.End = n.segmentTime(seg, "endTime", SkipEndTime)
	for _, r := range []Result[time.Time]{res.Start, res.End} {
		if r.Skipped() {
			res.skip(r.Reason())
		}
	}

	if pathRaw, ok := seg.get("timelinePath"); ok {
		n.path(pathRaw, res.Start, &res)
	}

	if visitRaw, ok := seg.get("visit"); ok {
		res.Visit = n.visit(visitRaw, res.Start, res.End)
		if res.Visit.Skipped() {
			res.skip(res.Visit.Reason())
		}
	}

	if activityRaw, ok := seg.get("activity"); ok {
		res.Activity = n.activity(activityRaw, res.Start, res.End)
		if res.Activity.Skipped() {
			res.skip(res.Activity.Reason())
		}
	}

	return res
}

func (n *Normalizer) segmentTime(seg object, key string, reason SkipReason) Result[time.Time] {
	t, _, present, ok := seg.timestamp(key, n.loc)
	switch {
	case ok:
		return Ok(t)
	case present:
		return Skipped[time.Time](reason)
	default:
		return Result[time.Time]{}
	}
}

// path прореживает сырой путь до разбора координат: каждая k-я точка плюс последняя
func (n *Normalizer) path(raw json.RawMessage, start Result[time.Time], res *SegmentResult) {
	points, ok := decodeArray(raw)
	if !ok {
		res.skip(SkipPathNotArray)
		return
	}

	res.PathPointsSeen = len(points)
	indices := strideIndices(len(points), n.sampling.pathStride(len(points)))
	res.TrackPoints = make([]domain.TrackPoint, 0, len(indices))

	for _, i := range indices {
		tp, reason := n.pathPoint(points[i], start)
		if reason != "" {
			res.PathPointsDropped++
			res.skip(reason)
			continue
		}
		res.TrackPoints = append(res.TrackPoints, tp)
	}
}

func (n *Normalizer) pathPoint(raw json.RawMessage, start Result[time.Time]) (domain.TrackPoint, SkipReason) {
	point, ok := decodeObject(raw)
	if !ok {
		return domain.TrackPoint{}, SkipPathPoint
	}

	coordRaw, _ := point.get("point")
	pos, ok := ParseCoordinate(coordRaw)
	if !ok {
		return domain.TrackPoint{}, SkipPathPoint
	}

	ts, text, present, ok := point.timestamp("time", n.loc)
	if !ok {
		if present {
			return domain.TrackPoint{}, SkipPathTime
		}
		// iOS-экспорт хранит смещение в минутах от начала сегмента
		ts, ok = n.offsetTime(point, start)
		if !ok {
			return domain.TrackPoint{}, SkipPathTime
		}
		text = ts.Format(time.RFC3339Nano)
	}

	return domain.TrackPoint{
		Position:     pos,
		Timestamp:    ts,
		RawTimestamp: text,
	}, ""
}

func (n *Normalizer) offsetTime(point object, start Result[time.Time]) (time.Time, bool) {
	base, ok := start.Get()
	if !ok {
		return time.Time{}, false
	}
	minutes, present, ok := point.number("durationMinutesOffsetFromStartTime")
	if !present || !ok {
		return time.Time{}, false
	}
	// смещение должно помещаться в time.Duration
	if math.Abs(minutes) >= maxOffsetMinutes {
		return time.Time{}, false
	}
	return base.Add(time.Duration(minutes * float64(time.Minute))), true
}

func (n *Normalizer) visit(raw json.RawMessage, start, end Result[time.Time]) Result[domain.Visit] {
	visit, ok := decodeObject(raw)
	if !ok {
		return Skipped[domain.Visit](SkipVisitLocation)
	}
	candidate, _ := visit.object("topCandidate")

	pos, ok := locationOf(candidate, "placeLocation")
	if !ok {
		return Skipped[domain.Visit](SkipVisitLocation)
	}

	s, okStart := start.Get()
	e, okEnd := end.Get()
	if !okStart || !okEnd {
		return Skipped[domain.Visit](SkipVisitTimespan)
	}

	confidence, present, ok := candidate.number("probability")
	if !present {
		confidence, present, ok = visit.number("probability")
	}
	switch {
	case !present:
		confidence = 0
	case !ok || confidence < 0 || confidence > 1:
		return Skipped[domain.Visit](SkipVisitConfidence)
	}

	return Ok(domain.Visit{
		Position:   pos,
		Start:      s,
		End:        e,
		Category:   candidate.strOr(DefaultVisitCategory, "semanticType"),
		PlaceID:    candidate.strOr(DefaultPlaceID, "placeId", "placeID"),
		Confidence: confidence,
	})
}

func (n *Normalizer) activity(raw json.RawMessage, start, end Result[time.Time]) Result[domain.Activity] {
	activity, ok := decodeObject(raw)
	if !ok {
		return Skipped[domain.Activity](SkipActivityEndpoint)
	}

	from, okFrom := locationOf(activity, "start")
	to, okTo := locationOf(activity, "end")
	if !okFrom || !okTo {
		return Skipped[domain.Activity](SkipActivityEndpoint)
	}

	s, okStart := start.Get()
	e, okEnd := end.Get()
	if !okStart || !okEnd {
		return Skipped[domain.Activity](SkipActivityTimespan)
	}

	distance, present, ok := activity.number("distanceMeters")
	switch {
	case !present:
		distance = 0
	case !ok || distance < 0:
		return Skipped[domain.Activity](SkipActivityDistance)
	}

	candidate, _ := activity.object("topCandidate")

	return Ok(domain.Activity{
		From:           from,
		To:             to,
		Start:          s,
		End:            e,
		DistanceMeters: distance,
		ActivityType:   candidate.strOr(DefaultActivityType, "type"),
	})
}

// locationOf читает координату поля, записанную как {"latLng": "..."} (Android)
// или как строка "geo:lat,lng" (iOS)
func locationOf(obj object, key string) (domain.GeoPoint, bool) {
	raw, ok := obj.get(key)
	if !ok {
		return domain.GeoPoint{}, false
	}
	if nested, ok := decodeObject(raw); ok {
		latLng, _ := nested.get("latLng")
		return ParseCoordinate(latLng)
	}
	return ParseCoordinate(raw)
}
