package domain

import "time"

// GeoPoint - проверенная географическая точка в десятичных градусах
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TrackPoint - точка сырого GPS-трека, пережившая прореживание
type TrackPoint struct {
	Position     GeoPoint  `json:"position"`
	Timestamp    time.Time `json:"timestamp"`
	RawTimestamp string    `json:"raw_timestamp"`
}

// Visit - пребывание в месте
type Visit struct {
	Position   GeoPoint  `json:"position"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Category   string    `json:"category"`
	PlaceID    string    `json:"place_id"`
	Confidence float64   `json:"confidence"`
}

// Duration возвращает длительность визита; отрицательные интервалы дают 0
func (v Visit) Duration() time.Duration {
	return clampDuration(v.End.Sub(v.Start))
}

// Inverted сообщает, что конец визита раньше начала
func (v Visit) Inverted() bool {
	return v.End.Before(v.Start)
}

// Activity - перемещение между двумя точками
type Activity struct {
	From           GeoPoint  `json:"from"`
	To             GeoPoint  `json:"to"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	DistanceMeters float64   `json:"distance_meters"`
	ActivityType   string    `json:"activity_type"`
}

// Duration возвращает длительность перемещения; отрицательные интервалы дают 0
func (a Activity) Duration() time.Duration {
	return clampDuration(a.End.Sub(a.Start))
}

// Inverted сообщает, что конец перемещения раньше начала
func (a Activity) Inverted() bool {
	return a.End.Before(a.Start)
}

func clampDuration(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

// DateRange - полный временной охват загруженных данных
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Widen расширяет диапазон: минимум по началу, максимум по концу.
// Диапазон никогда не сужается.
func (r *DateRange) Widen(start, end *time.Time) {
	if start != nil && (r.Start == nil || start.Before(*r.Start)) {
		s := *start
		r.Start = &s
	}
	if end != nil && (r.End == nil || end.After(*r.End)) {
		e := *end
		r.End = &e
	}
}

// IsSet сообщает, что обе границы известны
func (r DateRange) IsSet() bool {
	return r.Start != nil && r.End != nil
}

// Dataset - нормализованный результат разбора одного файла истории.
// После построения не изменяется; отфильтрованные представления создаются заново.
type Dataset struct {
	TrackPoints []TrackPoint `json:"track_points"`
	Visits      []Visit      `json:"visits"`
	Activities  []Activity   `json:"activities"`
	DateRange   DateRange    `json:"date_range"`
}

// NewDataset создает пустой Dataset с ненулевыми срезами
func NewDataset() *Dataset {
	return &Dataset{
		TrackPoints: []TrackPoint{},
		Visits:      []Visit{},
		Activities:  []Activity{},
	}
}

// IsEmpty сообщает, что в наборе нет ни одной записи
func (d *Dataset) IsEmpty() bool {
	return d == nil || len(d.TrackPoints)+len(d.Visits)+len(d.Activities) == 0
}

// Points возвращает все точки набора плоским списком:
// точки трека, места визитов и оба конца каждого перемещения.
func (d *Dataset) Points() []GeoPoint {
	if d == nil {
		return nil
	}
	points := make([]GeoPoint, 0, len(d.TrackPoints)+len(d.Visits)+2*len(d.Activities))
	for _, tp := range d.TrackPoints {
		points = append(points, tp.Position)
	}
	for _, v := range d.Visits {
		points = append(points, v.Position)
	}
	for _, a := range d.Activities {
		points = append(points, a.From, a.To)
	}
	return points
}

// Summarize возвращает счетчики набора
func (d *Dataset) Summarize() Summary {
	if d == nil {
		return Summary{}
	}
	return Summary{
		TrackPoints: len(d.TrackPoints),
		Visits:      len(d.Visits),
		Activities:  len(d.Activities),
		DateRange:   d.DateRange,
	}
}
