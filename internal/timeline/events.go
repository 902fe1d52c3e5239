package timeline

import (
	"sort"
	"time"

	"github.com/timeline-visualizer/internal/domain"
	"github.com/timeline-visualizer/internal/pkg/utils"
)

// DefaultEventsLimit - сколько последних событий показывать по умолчанию
const DefaultEventsLimit = 50

// EventKind - тип события в ленте: визит или перемещение
type EventKind string

const (
	EventVisit    EventKind = "visit"
	EventActivity EventKind = "activity"
)

// Event - визит или перемещение в ленте последних событий
type Event struct {
	Kind            EventKind        `json:"kind"`
	Title           string           `json:"title"`
	Start           time.Time        `json:"start"`
	End             time.Time        `json:"end"`
	DurationSeconds float64          `json:"duration_seconds"`
	Inverted        bool             `json:"inverted,omitempty"`
	DistanceKm      float64          `json:"distance_km,omitempty"`
	DirectKm        float64          `json:"direct_km,omitempty"`
	Visit           *domain.Visit    `json:"visit,omitempty"`
	Activity        *domain.Activity `json:"activity,omitempty"`
}

// RecentEvents объединяет визиты и перемещения, сортирует по началу от новых
// к старым и обрезает до limit. Отрицательная длительность отдается как 0
// с флагом Inverted.
func RecentEvents(ds *domain.Dataset, limit int) []Event {
	if ds == nil {
		return []Event{}
	}
	if limit <= 0 {
		limit = DefaultEventsLimit
	}

	events := make([]Event, 0, len(ds.Visits)+len(ds.Activities))
	for i := range ds.Visits {
		v := ds.Visits[i]
		events = append(events, Event{
			Kind:            EventVisit,
			Title:           v.Category,
			Start:           v.Start,
			End:             v.End,
			DurationSeconds: v.Duration().Seconds(),
			Inverted:        v.Inverted(),
			Visit:           &v,
		})
	}
	for i := range ds.Activities {
		a := ds.Activities[i]
		events = append(events, Event{
			Kind:            EventActivity,
			Title:           a.ActivityType,
			Start:           a.Start,
			End:             a.End,
			DurationSeconds: a.Duration().Seconds(),
			Inverted:        a.Inverted(),
			DistanceKm:      a.DistanceMeters / 1000,
			DirectKm:        utils.DistanceMeters(a.From.Lat, a.From.Lng, a.To.Lat, a.To.Lng) / 1000,
			Activity:        &a,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.After(events[j].Start)
	})

	if len(events) > limit {
		events = events[:limit]
	}
	return events
}
