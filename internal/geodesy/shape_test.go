package geodesy

import (
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeCentroid_Point(t *testing.T) {
	pt, err := ShapeCentroid(&shp.Point{X: -122.6765, Y: 45.5231})
	require.NoError(t, err)
	assert.InDelta(t, -122.6765, pt.Lon, 1e-9)
	assert.InDelta(t, 45.5231, pt.Lat, 1e-9)
}

func TestShapeCentroid_Polygon(t *testing.T) {
	square := &shp.Polygon{
		NumParts:  1,
		NumPoints: 5,
		Parts:     []int32{0},
		Points: []shp.Point{
			{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 0},
		},
	}

	pt, err := ShapeCentroid(square)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pt.Lon, 1e-9)
	assert.InDelta(t, 1.0, pt.Lat, 1e-9)
}

func TestShapeCentroid_PolyLine(t *testing.T) {
	line := &shp.PolyLine{
		NumParts:  1,
		NumPoints: 2,
		Parts:     []int32{0},
		Points:    []shp.Point{{X: 0, Y: 0}, {X: 4, Y: 0}},
	}

	pt, err := ShapeCentroid(line)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, pt.Lon, 1e-9)
	assert.InDelta(t, 0.0, pt.Lat, 1e-9)
}

func TestShapeGeometry_Errors(t *testing.T) {
	tests := []struct {
		name  string
		shape shp.Shape
	}{
		{name: "nil shape", shape: nil},
		{name: "empty polygon", shape: &shp.Polygon{}},
		{name: "empty polyline", shape: &shp.PolyLine{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ShapeGeometry(tt.shape)
			assert.Error(t, err)
		})
	}
}
