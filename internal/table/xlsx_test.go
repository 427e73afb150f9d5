package table

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, WriteXLSX(sample(), path, "data"))

	got, err := ReadXLSX(path, "data")
	require.NoError(t, err)

	assert.Equal(t, sample().Names(), got.Names())
	assert.Equal(t, 3, got.NumRows())

	a, err := got.Column("a")
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, a.Values)

	region, err := got.Column("region")
	require.NoError(t, err)
	assert.Equal(t, []any{"north", "south", "west"}, region.Values)
}

func TestReadXLSX_DefaultSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteXLSX(sample(), path, ""))

	got, err := ReadXLSX(path, "")
	require.NoError(t, err)
	assert.Equal(t, sample().Names(), got.Names())
}

func TestReadXLSX_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"), "")
		assert.Error(t, err)
	})

	t.Run("unknown sheet", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.xlsx")
		require.NoError(t, WriteXLSX(sample(), path, "data"))
		_, err := ReadXLSX(path, "other")
		assert.Error(t, err)
	})
}
