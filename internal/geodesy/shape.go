package geodesy

import (
	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

// ShapeGeometry converts a shapefile shape to a go-geom geometry in
// lon/lat order. Unsupported shape types are an error.
func ShapeGeometry(shape shp.Shape) (geom.T, error) {
	switch s := shape.(type) {
	case *shp.Point:
		return geom.NewPointFlat(geom.XY, []float64{s.X, s.Y}).SetSRID(EPSGWGS84), nil

	case *shp.PolyLine:
		g := polyLineToMultiLineString(s)
		if g == nil {
			return nil, eris.New("geodesy: polyline shape has no parts")
		}
		return g, nil

	case *shp.Polygon:
		g := polygonToMultiPolygon((*shp.PolyLine)(s))
		if g == nil {
			return nil, eris.New("geodesy: polygon shape has no parts")
		}
		return g, nil

	default:
		return nil, eris.Errorf("geodesy: unsupported shape type %T", shape)
	}
}

// ShapeCentroid converts a shapefile shape and returns its centroid.
func ShapeCentroid(shape shp.Shape) (Point, error) {
	g, err := ShapeGeometry(shape)
	if err != nil {
		return Point{}, err
	}
	return Centroid(g)
}

func polyLineToMultiLineString(pl *shp.PolyLine) geom.T {
	if pl == nil || pl.NumParts == 0 || len(pl.Points) == 0 {
		return nil
	}

	mls := geom.NewMultiLineString(geom.XY).SetSRID(EPSGWGS84)

	for i := int32(0); i < pl.NumParts; i++ {
		ls := geom.NewLineStringFlat(geom.XY, partCoords(pl, i))
		if err := mls.Push(ls); err != nil {
			continue
		}
	}

	if mls.NumLineStrings() == 0 {
		return nil
	}
	return mls
}

func polygonToMultiPolygon(p *shp.PolyLine) geom.T {
	if p == nil || p.NumParts == 0 || len(p.Points) == 0 {
		return nil
	}

	mp := geom.NewMultiPolygon(geom.XY).SetSRID(EPSGWGS84)

	for i := int32(0); i < p.NumParts; i++ {
		ring := geom.NewLinearRingFlat(geom.XY, partCoords(p, i))
		poly := geom.NewPolygon(geom.XY)
		if err := poly.Push(ring); err != nil {
			continue
		}
		if err := mp.Push(poly); err != nil {
			continue
		}
	}

	if mp.NumPolygons() == 0 {
		return nil
	}
	return mp
}

// partCoords returns the flat lon/lat coordinates of one shapefile part.
func partCoords(pl *shp.PolyLine, part int32) []float64 {
	start := pl.Parts[part]
	end := int32(len(pl.Points))
	if part+1 < pl.NumParts {
		end = pl.Parts[part+1]
	}

	flat := make([]float64, 0, (end-start)*2)
	for j := start; j < end; j++ {
		flat = append(flat, pl.Points[j].X, pl.Points[j].Y)
	}
	return flat
}
