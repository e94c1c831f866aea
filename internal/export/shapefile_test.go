package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	shp "github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteShapefile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trails.shp")

	n, err := WriteShapefile(path, sampleRecords())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"trails.shp", "trails.shx", "trails.dbf"}, names)

	r, err := shp.Open(path)
	require.NoError(t, err)
	defer r.Close()

	fields := r.Fields()
	require.Len(t, fields, len(shapeFields))

	count := 0
	for r.Next() {
		idx, shape := r.Shape()
		p, ok := shape.(*shp.Point)
		require.True(t, ok)
		assert.InDelta(t, -105.1795, p.X, 1e-9)
		assert.InDelta(t, 40.0491, p.Y, 1e-9)
		assert.Equal(t, "Walden Ponds & Sawhill", strings.Trim(r.ReadAttribute(idx, 1), " \x00"))
		assert.Equal(t, "Easy", strings.Trim(r.ReadAttribute(idx, 5), " \x00"))
		count++
	}
	assert.Equal(t, 1, count)
}

func TestShapefilePath(t *testing.T) {
	assert.Equal(t, "out/trails.shp", ShapefilePath("out/trails.json"))
	assert.Equal(t, "trails.SHP", ShapefilePath("trails.SHP"))
	assert.Equal(t, "trails.shp", ShapefilePath("trails"))
}

func TestWriteShapefile_ForcesExtension(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteShapefile(filepath.Join(dir, "trails.json"), sampleRecords())
	require.NoError(t, err)

	for _, name := range []string{"trails.shp", "trails.shx", "trails.dbf"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	assert.NoFileExists(t, filepath.Join(dir, "trailsdbf"))
}
