package geodesy

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// Centroid returns the geometric center of g as a lon/lat Point.
// Geometry collections and empty geometries fall back to the center of
// the bounding box; a nil geometry is an error.
func Centroid(g geom.T) (Point, error) {
	if g == nil {
		return Point{}, eris.New("geodesy: nil geometry")
	}

	if g.Empty() {
		return Point{}, eris.New("geodesy: empty geometry")
	}

	c, err := xy.Centroid(g)
	if err != nil {
		return boundsCenter(g)
	}
	return Point{Lon: c.X(), Lat: c.Y()}, nil
}

// boundsCenter returns the center of the geometry's bounding box. Used
// when no exact centroid is defined for the geometry type.
func boundsCenter(g geom.T) (Point, error) {
	b := g.Bounds()
	if b == nil {
		return Point{}, eris.New("geodesy: geometry has no bounds")
	}
	return Point{
		Lon: (b.Min(0) + b.Max(0)) / 2,
		Lat: (b.Min(1) + b.Max(1)) / 2,
	}, nil
}
