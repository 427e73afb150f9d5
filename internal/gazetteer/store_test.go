package gazetteer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/mapkit/internal/geodesy"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "gazetteer.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

var testPlaces = []Place{
	{Name: "Portland", State: "OR", Point: geodesy.Point{Lon: -122.6765, Lat: 45.5231}},
	{Name: "Portland", State: "ME", Point: geodesy.Point{Lon: -70.2553, Lat: 43.6591}},
	{Name: "Boise", State: "ID", Point: geodesy.Point{Lon: -116.2023, Lat: 43.6150}},
	{Name: "Seattle", State: "WA", Point: geodesy.Point{Lon: -122.3321, Lat: 47.6062}},
}

func TestStoreImportAndLookup(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	batchID, n, err := store.Import(ctx, testPlaces)
	require.NoError(t, err)
	assert.NotEmpty(t, batchID)
	assert.Equal(t, 4, n)

	t.Run("lookup by name", func(t *testing.T) {
		place, err := store.Lookup(ctx, "Boise")
		require.NoError(t, err)
		assert.Equal(t, "ID", place.State)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		place, err := store.Lookup(ctx, "seattle")
		require.NoError(t, err)
		assert.Equal(t, "Seattle", place.Name)
	})

	t.Run("state qualifier disambiguates", func(t *testing.T) {
		place, err := store.Lookup(ctx, "Portland, ME")
		require.NoError(t, err)
		assert.InDelta(t, 43.6591, place.Point.Lat, 1e-6)
	})

	t.Run("unknown place", func(t *testing.T) {
		_, err := store.Lookup(ctx, "Atlantis")
		assert.Error(t, err)
	})
}

func TestStoreImport_Errors(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, _, err := store.Import(ctx, nil)
	assert.Error(t, err)

	_, _, err = store.Import(ctx, []Place{{Name: "  "}})
	assert.Error(t, err)
}

func TestStoreNear(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, _, err := store.Import(ctx, testPlaces)
	require.NoError(t, err)

	// Query point near Portland, OR.
	nearby, err := store.Near(ctx, geodesy.Point{Lon: -122.5, Lat: 45.5}, 2)
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "Portland", nearby[0].Name)
	assert.Equal(t, "OR", nearby[0].State)
	assert.Equal(t, "Seattle", nearby[1].Name)
	assert.Less(t, nearby[0].DistanceKM, nearby[1].DistanceKM)
}
