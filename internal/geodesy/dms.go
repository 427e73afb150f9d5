package geodesy

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// Axis identifies which coordinate axis a DMS value belongs to.
type Axis int

const (
	AxisLat Axis = iota
	AxisLon
)

// dmsPattern matches one DMS component such as `40° 42' 46.0" N`.
// Minutes and seconds are optional; unicode and ASCII marks both work.
var dmsPattern = regexp.MustCompile(
	`^\s*(\d+(?:\.\d+)?)\s*[°ºd]\s*` +
		`(?:(\d+(?:\.\d+)?)\s*['′m]\s*)?` +
		`(?:(\d+(?:\.\d+)?)\s*(?:"|″|''|s)\s*)?` +
		`([NSEWnsew])\s*$`)

// ParseDMS converts a single degrees-minutes-seconds component to signed
// decimal degrees. South and west hemispheres yield negative values.
func ParseDMS(s string) (float64, error) {
	dd, _, err := parseComponent(s)
	return dd, err
}

// ParseDMSPair converts a comma-separated latitude, longitude pair such as
// `40° 42' 46.0" N, 74° 0' 21.6" W` to a Point. Either axis order is
// accepted as long as one component is N/S and the other E/W.
func ParseDMSPair(s string) (Point, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return Point{}, eris.Errorf("geodesy: expected two comma-separated DMS components in %q", s)
	}

	first, firstAxis, err := parseComponent(parts[0])
	if err != nil {
		return Point{}, err
	}
	second, secondAxis, err := parseComponent(parts[1])
	if err != nil {
		return Point{}, err
	}

	if firstAxis == secondAxis {
		return Point{}, eris.Errorf("geodesy: both components of %q are on the same axis", s)
	}

	if firstAxis == AxisLat {
		return Point{Lon: second, Lat: first}, nil
	}
	return Point{Lon: first, Lat: second}, nil
}

// parseComponent parses one DMS component and reports which axis its
// hemisphere letter implies.
func parseComponent(s string) (float64, Axis, error) {
	m := dmsPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, eris.Errorf("geodesy: cannot parse DMS component %q", strings.TrimSpace(s))
	}

	deg, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, eris.Wrapf(err, "geodesy: degrees in %q", s)
	}

	var minutes, seconds float64
	if m[2] != "" {
		minutes, err = strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, 0, eris.Wrapf(err, "geodesy: minutes in %q", s)
		}
	}
	if m[3] != "" {
		seconds, err = strconv.ParseFloat(m[3], 64)
		if err != nil {
			return 0, 0, eris.Wrapf(err, "geodesy: seconds in %q", s)
		}
	}
	if minutes >= 60 {
		return 0, 0, eris.Errorf("geodesy: minutes %v out of range in %q", minutes, s)
	}
	if seconds >= 60 {
		return 0, 0, eris.Errorf("geodesy: seconds %v out of range in %q", seconds, s)
	}

	dd := deg + minutes/60 + seconds/3600

	var axis Axis
	switch strings.ToUpper(m[4]) {
	case "N":
		axis = AxisLat
	case "S":
		axis = AxisLat
		dd = -dd
	case "E":
		axis = AxisLon
	case "W":
		axis = AxisLon
		dd = -dd
	}

	return dd, axis, nil
}

// FormatDMS renders a decimal-degree value as a DMS string with a
// hemisphere letter, e.g. 40.7128 on the latitude axis becomes
// `40° 42' 46.1" N`.
func FormatDMS(dd float64, axis Axis) string {
	hemisphere := "N"
	if axis == AxisLon {
		hemisphere = "E"
	}
	if dd < 0 {
		if axis == AxisLat {
			hemisphere = "S"
		} else {
			hemisphere = "W"
		}
		dd = -dd
	}

	deg := math.Floor(dd)
	rem := (dd - deg) * 60
	minutes := math.Floor(rem)
	seconds := (rem - minutes) * 60

	// Carry rounding so 59.95" renders as the next minute, not 60.0".
	if seconds >= 59.95 {
		seconds = 0
		minutes++
	}
	if minutes >= 60 {
		minutes = 0
		deg++
	}

	return fmt.Sprintf("%.0f° %.0f' %.1f\" %s", deg, minutes, seconds, hemisphere)
}
