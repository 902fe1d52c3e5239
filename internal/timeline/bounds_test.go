package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeline-visualizer/internal/domain"
	"github.com/timeline-visualizer/internal/timeline"
)

func TestComputeBounds_SinglePoint(t *testing.T) {
	ds := domain.NewDataset()
	ds.TrackPoints = append(ds.TrackPoints, domain.TrackPoint{Position: domain.GeoPoint{Lat: 10, Lng: 20}})

	b, err := timeline.ComputeBounds(ds)
	require.NoError(t, err)
	assert.Equal(t, [2][2]float64{{10, 20}, {10, 20}}, b.Array())
}

func TestComputeBounds_AllRecordKinds(t *testing.T) {
	ds := &domain.Dataset{
		TrackPoints: []domain.TrackPoint{{Position: domain.GeoPoint{Lat: 1, Lng: 2}}},
		Visits:      []domain.Visit{{Position: domain.GeoPoint{Lat: -5, Lng: 30}}},
		Activities: []domain.Activity{
			{From: domain.GeoPoint{Lat: 3, Lng: -40}, To: domain.GeoPoint{Lat: 60, Lng: 0}},
		},
	}

	b, err := timeline.ComputeBounds(ds)
	require.NoError(t, err)
	assert.Equal(t, domain.GeoPoint{Lat: -5, Lng: -40}, b.SouthWest)
	assert.Equal(t, domain.GeoPoint{Lat: 60, Lng: 30}, b.NorthEast)

	for _, p := range ds.Points() {
		assert.GreaterOrEqual(t, p.Lat, b.SouthWest.Lat)
		assert.LessOrEqual(t, p.Lat, b.NorthEast.Lat)
		assert.GreaterOrEqual(t, p.Lng, b.SouthWest.Lng)
		assert.LessOrEqual(t, p.Lng, b.NorthEast.Lng)
	}
}

func TestComputeBounds_VisitsOnly(t *testing.T) {
	ds := domain.NewDataset()
	ds.Visits = append(ds.Visits,
		domain.Visit{Position: domain.GeoPoint{Lat: 48.85, Lng: 2.35}},
		domain.Visit{Position: domain.GeoPoint{Lat: 51.5, Lng: -0.12}},
	)

	b, err := timeline.ComputeBounds(ds)
	require.NoError(t, err)
	assert.Equal(t, [2][2]float64{{48.85, -0.12}, {51.5, 2.35}}, b.Array())
}

func TestComputeBounds_NoData(t *testing.T) {
	_, err := timeline.ComputeBounds(domain.NewDataset())
	assert.ErrorIs(t, err, timeline.ErrNoData)

	_, err = timeline.ComputeBounds(nil)
	assert.ErrorIs(t, err, timeline.ErrNoData)
}
