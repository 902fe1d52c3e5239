package timeline

import (
	"time"

	"github.com/timeline-visualizer/internal/domain"
)

// SkipReason - причина, по которой запись была отброшена
type SkipReason string

const (
	SkipSegmentNotObject SkipReason = "segment_not_object"
	SkipStartTime        SkipReason = "invalid_start_time"
	SkipEndTime          SkipReason = "invalid_end_time"
	SkipPathNotArray     SkipReason = "path_not_array"
	SkipPathPoint        SkipReason = "invalid_path_point"
	SkipPathTime         SkipReason = "invalid_path_time"
	SkipVisitLocation    SkipReason = "invalid_visit_location"
	SkipVisitTimespan    SkipReason = "visit_without_timespan"
	SkipVisitConfidence  SkipReason = "invalid_visit_confidence"
	SkipActivityEndpoint SkipReason = "invalid_activity_endpoint"
	SkipActivityDistance SkipReason = "invalid_activity_distance"
	SkipActivityTimespan SkipReason = "activity_without_timespan"
)

// Result - исход разбора одной записи: значение, пропуск с причиной
// или отсутствие записи во входных данных (нулевое значение).
type Result[T any] struct {
	value  T
	ok     bool
	reason SkipReason
}

// Ok оборачивает успешно разобранную запись
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Skipped помечает запись как отброшенную
func Skipped[T any](reason SkipReason) Result[T] {
	return Result[T]{reason: reason}
}

// Get возвращает значение и признак успеха
func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

// Skipped сообщает, что запись была во входных данных, но отброшена
func (r Result[T]) Skipped() bool {
	return !r.ok && r.reason != ""
}

// Reason возвращает причину пропуска
func (r Result[T]) Reason() SkipReason {
	return r.reason
}

// SegmentResult - вклад одного сегмента в набор данных
type SegmentResult struct {
	Start       Result[time.Time]
	End         Result[time.Time]
	TrackPoints []domain.TrackPoint
	Visit       Result[domain.Visit]
	Activity    Result[domain.Activity]

	// PathPointsSeen - длина сырого пути до прореживания
	PathPointsSeen int
	// PathPointsDropped - точки, выбранные прореживанием, но не разобранные
	PathPointsDropped int

	Skips []SkipReason
}

// Contributed сообщает, что сегмент добавил хотя бы одну запись
func (r *SegmentResult) Contributed() bool {
	_, visit := r.Visit.Get()
	_, activity := r.Activity.Get()
	return len(r.TrackPoints) > 0 || visit || activity
}

func (r *SegmentResult) skip(reason SkipReason) {
	r.Skips = append(r.Skips, reason)
}
