package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_SamePoint(t *testing.T) {
	p := Point{Latitude: 13.0827, Longitude: 80.2707}
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistance_KnownPair(t *testing.T) {
	// Ченнаи - Бангалор, примерно 290 км по прямой
	chennai := Point{Latitude: 13.0827, Longitude: 80.2707}
	bangalore := Point{Latitude: 12.9716, Longitude: 77.5946}

	d := Distance(chennai, bangalore)
	assert.InDelta(t, 290000, d, 10000)
}

func TestDistanceToPolyline_PointOnVertex(t *testing.T) {
	pts := []Point{
		{Latitude: 13.0000, Longitude: 80.2000},
		{Latitude: 13.0100, Longitude: 80.2100},
		{Latitude: 13.0200, Longitude: 80.2200},
	}

	d, err := DistanceToPolyline(pts[1], pts)
	require.NoError(t, err)
	assert.Less(t, d, 1.0)
}

func TestDistanceToPolyline_FarPoint(t *testing.T) {
	pts := []Point{
		{Latitude: 13.0000, Longitude: 80.2000},
		{Latitude: 13.0100, Longitude: 80.2100},
	}
	// Точка примерно в 10 км в стороне от ломаной
	far := Point{Latitude: 13.1000, Longitude: 80.2000}

	d, err := DistanceToPolyline(far, pts)
	require.NoError(t, err)
	assert.Greater(t, d, 5000.0)
}

func TestDistanceToPolyline_SinglePoint(t *testing.T) {
	pts := []Point{{Latitude: 13.0000, Longitude: 80.2000}}

	d, err := DistanceToPolyline(Point{Latitude: 13.0000, Longitude: 80.2000}, pts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestDistanceToPolyline_EmptyPolyline(t *testing.T) {
	_, err := DistanceToPolyline(Point{Latitude: 13, Longitude: 80}, nil)
	assert.Error(t, err)
}

func TestDistanceToPolyline_InvalidPoint(t *testing.T) {
	pts := []Point{{Latitude: 13, Longitude: 80}, {Latitude: 14, Longitude: 81}}
	_, err := DistanceToPolyline(Point{Latitude: 91, Longitude: 80}, pts)
	assert.Error(t, err)
}

func TestDecodePolyline(t *testing.T) {
	// Пример из документации Google: (38.5,-120.2) (40.7,-120.95) (43.252,-126.453)
	points, err := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.InDelta(t, 38.5, points[0].Latitude, 0.001)
	assert.InDelta(t, -120.2, points[0].Longitude, 0.001)
	assert.InDelta(t, 43.252, points[2].Latitude, 0.001)
}

func TestDecodePolyline_Empty(t *testing.T) {
	_, err := DecodePolyline("")
	assert.Error(t, err)
}
