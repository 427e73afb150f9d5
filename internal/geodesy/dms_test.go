package geodesy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDMS(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{
			name:     "full component north",
			input:    `40° 42' 46.0" N`,
			expected: 40.712778,
		},
		{
			name:     "full component west is negative",
			input:    `74° 0' 21.6" W`,
			expected: -74.006,
		},
		{
			name:     "degrees only",
			input:    `74° E`,
			expected: 74,
		},
		{
			name:     "degrees and minutes",
			input:    `33° 52' S`,
			expected: -33.866667,
		},
		{
			name:     "ascii marks and lowercase hemisphere",
			input:    `40d 26' 46'' n`,
			expected: 40.446111,
		},
		{
			name:    "garbage",
			input:   "not a coordinate",
			wantErr: true,
		},
		{
			name:    "missing hemisphere",
			input:   `40° 42' 46.0"`,
			wantErr: true,
		},
		{
			name:    "minutes out of range",
			input:   `40° 75' 0" N`,
			wantErr: true,
		},
		{
			name:    "seconds out of range",
			input:   `40° 0' 60" N`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDMS(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-4)
		})
	}
}

func TestParseDMSPair(t *testing.T) {
	pt, err := ParseDMSPair(`40° 42' 46.0" N, 74° 0' 21.6" W`)
	require.NoError(t, err)
	assert.InDelta(t, 40.7128, pt.Lat, 1e-4)
	assert.InDelta(t, -74.0060, pt.Lon, 1e-4)
}

func TestParseDMSPair_LonFirst(t *testing.T) {
	pt, err := ParseDMSPair(`74° 0' 21.6" W, 40° 42' 46.0" N`)
	require.NoError(t, err)
	assert.InDelta(t, 40.7128, pt.Lat, 1e-4)
	assert.InDelta(t, -74.0060, pt.Lon, 1e-4)
}

func TestParseDMSPair_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "single component", input: `40° 42' 46.0" N`},
		{name: "same axis twice", input: `40° N, 50° S`},
		{name: "second component malformed", input: `40° N, nonsense`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDMSPair(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestFormatDMS(t *testing.T) {
	tests := []struct {
		name     string
		dd       float64
		axis     Axis
		expected string
	}{
		{name: "north latitude", dd: 40.712778, axis: AxisLat, expected: `40° 42' 46.0" N`},
		{name: "west longitude", dd: -74.006, axis: AxisLon, expected: `74° 0' 21.6" W`},
		{name: "equator", dd: 0, axis: AxisLat, expected: `0° 0' 0.0" N`},
		{name: "rounding carries into minutes", dd: 10.9999999, axis: AxisLat, expected: `11° 0' 0.0" N`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDMS(tt.dd, tt.axis))
		})
	}
}

func TestDMSRoundTrip(t *testing.T) {
	for _, dd := range []float64{0, 40.7128, -74.006, 89.9999, -179.5} {
		axis := AxisLon
		formatted := FormatDMS(dd, axis)
		parsed, err := ParseDMS(formatted)
		require.NoError(t, err, formatted)
		assert.InDelta(t, dd, parsed, 0.001, formatted)
	}
}
