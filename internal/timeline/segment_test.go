package timeline_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeline-visualizer/internal/domain"
	"github.com/timeline-visualizer/internal/timeline"
)

func newNormalizer() *timeline.Normalizer {
	return timeline.NewNormalizer(timeline.DefaultSamplingConfig(), time.UTC)
}

// pathJSON builds a timelinePath array of n valid points one minute apart
func pathJSON(n int) string {
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"point":"%.4f°, %.4f°","time":"%s"}`,
			10+float64(i)*0.0001, 20+float64(i)*0.0001,
			base.Add(time.Duration(i)*time.Minute).Format(time.RFC3339Nano))
	}
	sb.WriteString("]")
	return sb.String()
}

func TestNormalizer_Visit(t *testing.T) {
	raw := json.RawMessage(`{
		"startTime": "2024-05-01T08:00:00.000+02:00",
		"endTime": "2024-05-01T10:30:00.000+02:00",
		"visit": {
			"hierarchyLevel": 0,
			"probability": 0.8,
			"topCandidate": {
				"placeId": "ChIJ123",
				"semanticType": "HOME",
				"probability": 0.9,
				"placeLocation": {"latLng": "10.0°, 20.0°"}
			}
		}
	}`)

	res := newNormalizer().Normalize(raw)
	require.Empty(t, res.Skips)

	v, ok := res.Visit.Get()
	require.True(t, ok)
	assert.Equal(t, domain.GeoPoint{Lat: 10, Lng: 20}, v.Position)
	assert.Equal(t, "HOME", v.Category)
	assert.Equal(t, "ChIJ123", v.PlaceID)
	assert.Equal(t, 0.9, v.Confidence)
	assert.Equal(t, 150*time.Minute, v.Duration())
	assert.True(t, res.Contributed())
}

func TestNormalizer_VisitDefaults(t *testing.T) {
	raw := json.RawMessage(`{
		"startTime": "2024-05-01T08:00:00Z",
		"endTime": "2024-05-01T09:00:00Z",
		"visit": {"topCandidate": {"placeLocation": {"latLng": "1, 2"}, "semanticType": ""}}
	}`)

	v, ok := newNormalizer().Normalize(raw).Visit.Get()
	require.True(t, ok)
	assert.Equal(t, timeline.DefaultVisitCategory, v.Category)
	assert.Equal(t, timeline.DefaultPlaceID, v.PlaceID)
	assert.Equal(t, 0.0, v.Confidence)
}

func TestNormalizer_VisitIOSFormat(t *testing.T) {
	raw := json.RawMessage(`{
		"startTime": "2024-06-21T19:51:13.014-06:00",
		"endTime": "2024-06-21T21:00:00.000-06:00",
		"visit": {
			"probability": "0.750000",
			"topCandidate": {
				"placeID": "ios-place",
				"semanticType": "Work",
				"placeLocation": "geo:30.123456,-105.987654"
			}
		}
	}`)

	v, ok := newNormalizer().Normalize(raw).Visit.Get()
	require.True(t, ok)
	assert.Equal(t, domain.GeoPoint{Lat: 30.123456, Lng: -105.987654}, v.Position)
	assert.Equal(t, "ios-place", v.PlaceID)
	assert.Equal(t, 0.75, v.Confidence)
}

func TestNormalizer_VisitSkips(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		reason timeline.SkipReason
	}{
		{
			name:   "unparseable place location",
			raw:    `{"startTime":"2024-05-01T08:00:00Z","endTime":"2024-05-01T09:00:00Z","visit":{"topCandidate":{"placeLocation":{"latLng":"north, south"}}}}`,
			reason: timeline.SkipVisitLocation,
		},
		{
			name:   "missing place location",
			raw:    `{"startTime":"2024-05-01T08:00:00Z","endTime":"2024-05-01T09:00:00Z","visit":{"topCandidate":{}}}`,
			reason: timeline.SkipVisitLocation,
		},
		{
			name:   "visit is not an object",
			raw:    `{"startTime":"2024-05-01T08:00:00Z","endTime":"2024-05-01T09:00:00Z","visit":"home"}`,
			reason: timeline.SkipVisitLocation,
		},
		{
			name:   "missing end time",
			raw:    `{"startTime":"2024-05-01T08:00:00Z","visit":{"topCandidate":{"placeLocation":{"latLng":"1,2"}}}}`,
			reason: timeline.SkipVisitTimespan,
		},
		{
			name:   "nan confidence",
			raw:    `{"startTime":"2024-05-01T08:00:00Z","endTime":"2024-05-01T09:00:00Z","visit":{"topCandidate":{"probability":"NaN","placeLocation":{"latLng":"1,2"}}}}`,
			reason: timeline.SkipVisitConfidence,
		},
		{
			name:   "confidence above one",
			raw:    `{"startTime":"2024-05-01T08:00:00Z","endTime":"2024-05-01T09:00:00Z","visit":{"topCandidate":{"probability":1.5,"placeLocation":{"latLng":"1,2"}}}}`,
			reason: timeline.SkipVisitConfidence,
		},
		{
			name:   "boolean confidence",
			raw:    `{"startTime":"2024-05-01T08:00:00Z","endTime":"2024-05-01T09:00:00Z","visit":{"topCandidate":{"probability":true,"placeLocation":{"latLng":"1,2"}}}}`,
			reason: timeline.SkipVisitConfidence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newNormalizer().Normalize(json.RawMessage(tt.raw))
			_, ok := res.Visit.Get()
			assert.False(t, ok)
			assert.True(t, res.Visit.Skipped())
			assert.Equal(t, tt.reason, res.Visit.Reason())
			assert.Contains(t, res.Skips, tt.reason)
			assert.False(t, res.Contributed())
		})
	}
}

func TestNormalizer_Activity(t *testing.T) {
	raw := json.RawMessage(`{
		"startTime": "2024-05-01T10:30:00Z",
		"endTime": "2024-05-01T10:55:00Z",
		"activity": {
			"start": {"latLng": "10,20"},
			"end": {"latLng": "11,21"},
			"distanceMeters": 1500,
			"topCandidate": {"type": "WALKING", "probability": 0.7}
		}
	}`)

	a, ok := newNormalizer().Normalize(raw).Activity.Get()
	require.True(t, ok)
	assert.Equal(t, domain.GeoPoint{Lat: 10, Lng: 20}, a.From)
	assert.Equal(t, domain.GeoPoint{Lat: 11, Lng: 21}, a.To)
	assert.Equal(t, 1500.0, a.DistanceMeters)
	assert.Equal(t, "WALKING", a.ActivityType)
	assert.Equal(t, 25*time.Minute, a.Duration())
}

func TestNormalizer_ActivityDefaultsAndIOS(t *testing.T) {
	raw := json.RawMessage(`{
		"startTime": "2024-05-01T10:30:00Z",
		"endTime": "2024-05-01T10:55:00Z",
		"activity": {"start": "geo:10,20", "end": "geo:11,21"}
	}`)

	a, ok := newNormalizer().Normalize(raw).Activity.Get()
	require.True(t, ok)
	assert.Equal(t, 0.0, a.DistanceMeters)
	assert.Equal(t, timeline.DefaultActivityType, a.ActivityType)

	stringDistance := json.RawMessage(`{
		"startTime": "2024-05-01T10:30:00Z",
		"endTime": "2024-05-01T10:55:00Z",
		"activity": {"start": "geo:10,20", "end": "geo:11,21", "distanceMeters": "2345.5"}
	}`)
	a, ok = newNormalizer().Normalize(stringDistance).Activity.Get()
	require.True(t, ok)
	assert.Equal(t, 2345.5, a.DistanceMeters)
}

func TestNormalizer_ActivitySkips(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		reason timeline.SkipReason
	}{
		{
			name:   "bad end endpoint drops whole activity",
			raw:    `{"startTime":"2024-05-01T08:00:00Z","endTime":"2024-05-01T09:00:00Z","activity":{"start":{"latLng":"10,20"},"end":{"latLng":"95,21"}}}`,
			reason: timeline.SkipActivityEndpoint,
		},
		{
			name:   "missing start endpoint",
			raw:    `{"startTime":"2024-05-01T08:00:00Z","endTime":"2024-05-01T09:00:00Z","activity":{"end":{"latLng":"11,21"}}}`,
			reason: timeline.SkipActivityEndpoint,
		},
		{
			name:   "negative distance",
			raw:    `{"startTime":"2024-05-01T08:00:00Z","endTime":"2024-05-01T09:00:00Z","activity":{"start":{"latLng":"10,20"},"end":{"latLng":"11,21"},"distanceMeters":-3}}`,
			reason: timeline.SkipActivityDistance,
		},
		{
			name:   "nan distance string",
			raw:    `{"startTime":"2024-05-01T08:00:00Z","endTime":"2024-05-01T09:00:00Z","activity":{"start":{"latLng":"10,20"},"end":{"latLng":"11,21"},"distanceMeters":"NaN"}}`,
			reason: timeline.SkipActivityDistance,
		},
		{
			name:   "unparseable start time",
			raw:    `{"startTime":"yesterday","endTime":"2024-05-01T09:00:00Z","activity":{"start":{"latLng":"10,20"},"end":{"latLng":"11,21"}}}`,
			reason: timeline.SkipActivityTimespan,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newNormalizer().Normalize(json.RawMessage(tt.raw))
			_, ok := res.Activity.Get()
			assert.False(t, ok)
			assert.Equal(t, tt.reason, res.Activity.Reason())
			assert.Contains(t, res.Skips, tt.reason)
		})
	}
}

func TestNormalizer_PathSampling(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{1, 1},
		{5, 2},
		{10, 2},
		{11, 2},
		{25, 4},
		{1000, 101},
		{1001, 21},
		{2500, 51},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			raw := json.RawMessage(`{"startTime":"2024-05-01T08:00:00Z","endTime":"2024-05-01T23:00:00Z","timelinePath":` + pathJSON(tt.n) + `}`)
			res := newNormalizer().Normalize(raw)

			assert.Equal(t, tt.n, res.PathPointsSeen)
			require.Len(t, res.TrackPoints, tt.expected)
			assert.Equal(t, 0, res.PathPointsDropped)

			base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
			assert.True(t, res.TrackPoints[0].Timestamp.Equal(base))
			last := res.TrackPoints[len(res.TrackPoints)-1]
			assert.True(t, last.Timestamp.Equal(base.Add(time.Duration(tt.n-1)*time.Minute)), "final point kept")
		})
	}
}

func TestNormalizer_PathDropsBadPoints(t *testing.T) {
	raw := json.RawMessage(`{
		"startTime": "2024-05-01T08:00:00Z",
		"endTime": "2024-05-01T09:00:00Z",
		"timelinePath": [
			{"point": "10°, 20°", "time": "2024-05-01T08:00:00Z"},
			{"point": "x", "time": "2024-05-01T08:01:00Z"},
			{"point": "10°, 20°", "time": "2024-05-01T08:02:00Z"},
			{"point": "10°, 20°", "time": "2024-05-01T08:03:00Z"},
			{"point": "10°, 20°", "time": "2024-05-01T08:04:00Z"},
			{"point": "10°, 20°", "time": "2024-05-01T08:05:00Z"},
			{"point": "10°, 20°", "time": "2024-05-01T08:06:00Z"},
			{"point": "10°, 20°", "time": "2024-05-01T08:07:00Z"},
			{"point": "10°, 20°", "time": "2024-05-01T08:08:00Z"},
			{"point": "10°, 20°", "time": "2024-05-01T08:09:00Z"},
			{"point": "200°, 20°", "time": "2024-05-01T08:10:00Z"},
			{"point": "11°, 21°", "time": "not a time"}
		]
	}`)

	res := newNormalizer().Normalize(raw)
	// sampled indices: 0, 10, 11 -> index 10 has bad latitude, index 11 bad time
	require.Len(t, res.TrackPoints, 1)
	assert.Equal(t, "2024-05-01T08:00:00Z", res.TrackPoints[0].RawTimestamp)
	assert.Equal(t, 2, res.PathPointsDropped)
	assert.Contains(t, res.Skips, timeline.SkipPathPoint)
	assert.Contains(t, res.Skips, timeline.SkipPathTime)
}

func TestNormalizer_PathOffsetMinutes(t *testing.T) {
	raw := json.RawMessage(`{
		"startTime": "2024-06-21T19:00:00.000-06:00",
		"endTime": "2024-06-21T20:00:00.000-06:00",
		"timelinePath": [
			{"point": "geo:30.1,-105.9", "durationMinutesOffsetFromStartTime": "0"},
			{"point": "geo:30.2,-105.8", "durationMinutesOffsetFromStartTime": "45"}
		]
	}`)

	res := newNormalizer().Normalize(raw)
	require.Len(t, res.TrackPoints, 2)

	start := time.Date(2024, 6, 21, 19, 0, 0, 0, time.FixedZone("", -6*3600))
	assert.True(t, res.TrackPoints[0].Timestamp.Equal(start))
	assert.True(t, res.TrackPoints[1].Timestamp.Equal(start.Add(45*time.Minute)))
	assert.NotEmpty(t, res.TrackPoints[1].RawTimestamp)

	t.Run("offset out of duration range", func(t *testing.T) {
		for _, offset := range []string{`"1e300"`, `-1e300`, `"2e11"`} {
			raw := json.RawMessage(`{
				"startTime": "2024-06-21T19:00:00.000-06:00",
				"endTime": "2024-06-21T20:00:00.000-06:00",
				"timelinePath": [
					{"point": "geo:30.1,-105.9", "durationMinutesOffsetFromStartTime": "0"},
					{"point": "geo:10,20", "durationMinutesOffsetFromStartTime": ` + offset + `}
				]
			}`)

			res := newNormalizer().Normalize(raw)
			require.Len(t, res.TrackPoints, 1, offset)
			assert.True(t, res.TrackPoints[0].Timestamp.Equal(start), offset)
			assert.Equal(t, []timeline.SkipReason{timeline.SkipPathTime}, res.Skips, offset)
		}
	})
}

func TestNormalizer_PathNotArray(t *testing.T) {
	raw := json.RawMessage(`{"startTime":"2024-05-01T08:00:00Z","endTime":"2024-05-01T09:00:00Z","timelinePath":{"point":"1,2"}}`)
	res := newNormalizer().Normalize(raw)
	assert.Empty(t, res.TrackPoints)
	assert.Equal(t, []timeline.SkipReason{timeline.SkipPathNotArray}, res.Skips)
}

func TestNormalizer_MalformedSegments(t *testing.T) {
	for _, raw := range []string{`42`, `"segment"`, `[1,2,3]`, `true`} {
		t.Run(raw, func(t *testing.T) {
			assert.NotPanics(t, func() {
				res := newNormalizer().Normalize(json.RawMessage(raw))
				assert.False(t, res.Contributed())
				assert.Equal(t, []timeline.SkipReason{timeline.SkipSegmentNotObject}, res.Skips)
			})
		})
	}

	res := newNormalizer().Normalize(json.RawMessage(`null`))
	assert.False(t, res.Contributed())
	assert.Empty(t, res.Skips)
}

func TestNormalizer_SegmentTimes(t *testing.T) {
	res := newNormalizer().Normalize(json.RawMessage(`{"startTime":"2024-05-01T08:00:00Z","endTime":12345}`))

	start, ok := res.Start.Get()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), start)

	_, ok = res.End.Get()
	assert.False(t, ok)
	assert.Equal(t, []timeline.SkipReason{timeline.SkipEndTime}, res.Skips)
}

func TestNormalizer_LocalTimestamps(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	n := timeline.NewNormalizer(timeline.DefaultSamplingConfig(), loc)

	res := n.Normalize(json.RawMessage(`{"startTime":"2024-05-01T08:00:00","endTime":"2024-05-02"}`))

	start, ok := res.Start.Get()
	require.True(t, ok)
	assert.True(t, start.Equal(time.Date(2024, 5, 1, 5, 0, 0, 0, time.UTC)))

	end, ok := res.End.Get()
	require.True(t, ok)
	assert.True(t, end.Equal(time.Date(2024, 5, 1, 21, 0, 0, 0, time.UTC)))
}
