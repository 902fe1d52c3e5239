package timeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/timeline-visualizer/internal/domain"
)

// DateLayout - формат календарной даты фильтра
const DateLayout = "2006-01-02"

// ErrInvalidDateRange - границы фильтра не разбираются или from позже to
var ErrInvalidDateRange = errors.New("invalid date range")

// DateWindow - включительное временное окно фильтра. nil означает отсутствие границы.
type DateWindow struct {
	From *time.Time
	To   *time.Time
}

// IsZero сообщает, что обе границы отсутствуют
func (w DateWindow) IsZero() bool {
	return w.From == nil && w.To == nil
}

// Contains проверяет попадание момента в окно, границы включаются
func (w DateWindow) Contains(t time.Time) bool {
	if w.From != nil && t.Before(*w.From) {
		return false
	}
	if w.To != nil && t.After(*w.To) {
		return false
	}
	return true
}

// FromDate возвращает нижнюю границу в формате YYYY-MM-DD или пустую строку
func (w DateWindow) FromDate() string {
	if w.From == nil {
		return ""
	}
	return w.From.Format(DateLayout)
}

// ToDate возвращает верхнюю границу в формате YYYY-MM-DD или пустую строку
func (w DateWindow) ToDate() string {
	if w.To == nil {
		return ""
	}
	return w.To.Format(DateLayout)
}

// ParseDateWindow разбирает календарные даты YYYY-MM-DD; пустая строка - нет границы.
// from - начало дня, to - 23:59:59.999 указанного дня в локации loc.
func ParseDateWindow(from, to string, loc *time.Location) (DateWindow, error) {
	if loc == nil {
		loc = time.UTC
	}

	var w DateWindow
	if from = strings.TrimSpace(from); from != "" {
		t, err := time.ParseInLocation(DateLayout, from, loc)
		if err != nil {
			return DateWindow{}, fmt.Errorf("%w: from %q: %v", ErrInvalidDateRange, from, err)
		}
		w.From = &t
	}
	if to = strings.TrimSpace(to); to != "" {
		t, err := time.ParseInLocation(DateLayout, to, loc)
		if err != nil {
			return DateWindow{}, fmt.Errorf("%w: to %q: %v", ErrInvalidDateRange, to, err)
		}
		end := endOfDay(t)
		w.To = &end
	}

	if w.From != nil && w.To != nil && w.From.After(*w.To) {
		return DateWindow{}, fmt.Errorf("%w: from %s is after to %s", ErrInvalidDateRange, from, to)
	}
	return w, nil
}

// endOfDay возвращает 23:59:59.999 того же календарного дня
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// FilterByDate возвращает представление набора, ограниченное окном.
// Без границ возвращается сам набор, его нельзя изменять.
// Точки трека отбираются по своей метке, визиты и перемещения по началу.
// DateRange копируется из исходного набора без пересчета.
func FilterByDate(ds *domain.Dataset, w DateWindow) *domain.Dataset {
	if ds == nil || w.IsZero() {
		return ds
	}

	return &domain.Dataset{
		TrackPoints: filter(ds.TrackPoints, func(tp domain.TrackPoint) bool { return w.Contains(tp.Timestamp) }),
		Visits:      filter(ds.Visits, func(v domain.Visit) bool { return w.Contains(v.Start) }),
		Activities:  filter(ds.Activities, func(a domain.Activity) bool { return w.Contains(a.Start) }),
		DateRange:   ds.DateRange,
	}
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
