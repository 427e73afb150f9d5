// Package geodesy provides great-circle distance, DMS coordinate
// conversion, and centroid extraction for the mapping exercises.
package geodesy

import "math"

// Earth radius and unit conversion constants.
const (
	EarthRadiusKM = 6371.0
	MilesPerKM    = 0.621371
	KMPerMile     = 1.0 / MilesPerKM
)

// Common EPSG coordinate reference system identifiers.
const (
	EPSGWGS84       = 4326 // geographic lon/lat, the book's working CRS
	EPSGWebMercator = 3857 // web tile projection
	EPSGConusAlbers = 5070 // CONUS Albers equal-area, used for US choropleths
)

// Point is a geographic point in decimal degrees.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// HaversineKM returns the great-circle distance between a and b in
// kilometers. Identical points yield 0 and the function is symmetric
// in its arguments.
func HaversineKM(a, b Point) float64 {
	if a == b {
		return 0
	}

	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// Clamp guards against h drifting past 1 for near-antipodal points.
	h = math.Min(h, 1)

	return 2 * EarthRadiusKM * math.Asin(math.Sqrt(h))
}

// HaversineMiles returns the great-circle distance between a and b in miles.
func HaversineMiles(a, b Point) float64 {
	return HaversineKM(a, b) * MilesPerKM
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
