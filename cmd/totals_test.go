package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	tbl, err := loadTable(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Names())

	_, err = loadTable(filepath.Join(dir, "data.parquet"), "")
	assert.Error(t, err)
}

func TestSaveTable_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n1\n"), 0o644))

	tbl, err := loadTable(path, "")
	require.NoError(t, err)
	assert.Error(t, saveTable(tbl, "out.parquet", ""))
}
