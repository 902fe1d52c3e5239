package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisit_Duration(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		visit    Visit
		expected time.Duration
		inverted bool
	}{
		{
			name:     "regular visit",
			visit:    Visit{Start: base, End: base.Add(90 * time.Minute)},
			expected: 90 * time.Minute,
		},
		{
			name:     "zero length visit",
			visit:    Visit{Start: base, End: base},
			expected: 0,
		},
		{
			name:     "end before start is clamped",
			visit:    Visit{Start: base, End: base.Add(-time.Hour)},
			expected: 0,
			inverted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.visit.Duration())
			assert.Equal(t, tt.inverted, tt.visit.Inverted())
		})
	}
}

func TestActivity_Duration(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	a := Activity{Start: base, End: base.Add(25 * time.Minute)}
	assert.Equal(t, 25*time.Minute, a.Duration())
	assert.False(t, a.Inverted())

	a.End = base.Add(-time.Second)
	assert.Equal(t, time.Duration(0), a.Duration())
	assert.True(t, a.Inverted())
}

func TestDateRange_Widen(t *testing.T) {
	t1 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	var r DateRange
	assert.False(t, r.IsSet())

	r.Widen(&t3, &t3)
	require.True(t, r.IsSet())
	assert.Equal(t, t3, *r.Start)
	assert.Equal(t, t3, *r.End)

	r.Widen(&t1, &t2)
	assert.Equal(t, t1, *r.Start)
	assert.Equal(t, t2, *r.End)

	// never narrows
	r.Widen(&t3, &t3)
	assert.Equal(t, t1, *r.Start)
	assert.Equal(t, t2, *r.End)

	// nil bounds are ignored
	r.Widen(nil, nil)
	assert.Equal(t, t1, *r.Start)
	assert.Equal(t, t2, *r.End)
}

func TestDateRange_WidenCopiesValues(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	var r DateRange
	r.Widen(&start, nil)

	start = start.Add(time.Hour)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), *r.Start)
	assert.Nil(t, r.End)
}

func TestDataset_Points(t *testing.T) {
	ds := &Dataset{
		TrackPoints: []TrackPoint{{Position: GeoPoint{Lat: 1, Lng: 2}}},
		Visits:      []Visit{{Position: GeoPoint{Lat: 3, Lng: 4}}},
		Activities: []Activity{{
			From: GeoPoint{Lat: 5, Lng: 6},
			To:   GeoPoint{Lat: 7, Lng: 8},
		}},
	}

	assert.Equal(t, []GeoPoint{
		{Lat: 1, Lng: 2},
		{Lat: 3, Lng: 4},
		{Lat: 5, Lng: 6},
		{Lat: 7, Lng: 8},
	}, ds.Points())

	var nilDataset *Dataset
	assert.Nil(t, nilDataset.Points())
	assert.True(t, nilDataset.IsEmpty())
	assert.True(t, NewDataset().IsEmpty())
	assert.False(t, ds.IsEmpty())
}

func TestDataset_Summarize(t *testing.T) {
	ds := NewDataset()
	ds.Visits = append(ds.Visits, Visit{}, Visit{})
	ds.TrackPoints = append(ds.TrackPoints, TrackPoint{})

	s := ds.Summarize()
	assert.Equal(t, 1, s.TrackPoints)
	assert.Equal(t, 2, s.Visits)
	assert.Equal(t, 0, s.Activities)
}

func TestBounds_Pad(t *testing.T) {
	b := Bounds{
		SouthWest: GeoPoint{Lat: 10, Lng: 20},
		NorthEast: GeoPoint{Lat: 20, Lng: 40},
	}

	padded := b.Pad(0.1)
	assert.InDelta(t, 9.0, padded.SouthWest.Lat, 1e-9)
	assert.InDelta(t, 18.0, padded.SouthWest.Lng, 1e-9)
	assert.InDelta(t, 21.0, padded.NorthEast.Lat, 1e-9)
	assert.InDelta(t, 42.0, padded.NorthEast.Lng, 1e-9)

	assert.Equal(t, b, b.Pad(0))

	edge := Bounds{
		SouthWest: GeoPoint{Lat: -89, Lng: -179},
		NorthEast: GeoPoint{Lat: 89, Lng: 179},
	}.Pad(0.5)
	assert.Equal(t, -90.0, edge.SouthWest.Lat)
	assert.Equal(t, -180.0, edge.SouthWest.Lng)
	assert.Equal(t, 90.0, edge.NorthEast.Lat)
	assert.Equal(t, 180.0, edge.NorthEast.Lng)
}

func TestBounds_ArrayAndCenter(t *testing.T) {
	b := Bounds{
		SouthWest: GeoPoint{Lat: 10, Lng: 20},
		NorthEast: GeoPoint{Lat: 12, Lng: 24},
	}
	assert.Equal(t, [2][2]float64{{10, 20}, {12, 24}}, b.Array())
	assert.Equal(t, GeoPoint{Lat: 11, Lng: 22}, b.Center())
}
