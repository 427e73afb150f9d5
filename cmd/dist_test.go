package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimalPair(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{name: "new york", input: "40.7128,-74.0060", lat: 40.7128, lon: -74.0060},
		{name: "spaces", input: " 51.5074 , -0.1278 ", lat: 51.5074, lon: -0.1278},
		{name: "integers", input: "0,180", lat: 0, lon: 180},
		{name: "missing comma", input: "40.7128", wantErr: true},
		{name: "not numbers", input: "here,there", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, err := parseDecimalPair(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lat, pt.Lat)
			assert.Equal(t, tt.lon, pt.Lon)
		})
	}
}
