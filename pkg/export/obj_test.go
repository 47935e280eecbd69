package export_test

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/towerforge/pkg/export"
	"github.com/ChicagoDave/towerforge/pkg/params"
	"github.com/ChicagoDave/towerforge/pkg/tower"
)

func testTower(t *testing.T, floors, sides int) *tower.Tower {
	t.Helper()
	p := params.Defaults()
	p.FloorCount = floors
	p.SlabSides = sides
	return tower.Build(p)
}

func TestWriteOBJCounts(t *testing.T) {
	tw := testTower(t, 5, 6)

	var sb strings.Builder
	require.NoError(t, export.WriteOBJ(&sb, tw, "tower.mtl"))
	out := sb.String()

	assert.Equal(t, 5, strings.Count(out, "\no floor_"), "one object per floor")
	assert.Equal(t, 5*6*2, strings.Count(out, "\nv "), "two vertex rings per floor")
	// Per floor: 2 caps + sides quads.
	assert.Equal(t, 5*(2+6), strings.Count(out, "\nf "), "face count")
	assert.Contains(t, out, "mtllib tower.mtl")
}

func TestWriteOBJIndicesInRange(t *testing.T) {
	tw := testTower(t, 4, 5)

	var sb strings.Builder
	require.NoError(t, export.WriteOBJ(&sb, tw, ""))

	maxIndex := 4 * 5 * 2
	sc := bufio.NewScanner(strings.NewReader(sb.String()))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] != "f" {
			continue
		}
		require.GreaterOrEqual(t, len(fields), 4, "faces need at least 3 vertices: %q", sc.Text())
		for _, tok := range fields[1:] {
			idx, err := strconv.Atoi(tok)
			require.NoError(t, err, "face index %q", tok)
			assert.GreaterOrEqual(t, idx, 1)
			assert.LessOrEqual(t, idx, maxIndex)
		}
	}
	require.NoError(t, sc.Err())
}

func TestWriteOBJDeterministic(t *testing.T) {
	tw := testTower(t, 8, 7)

	var a, b strings.Builder
	require.NoError(t, export.WriteOBJ(&a, tw, "x.mtl"))
	require.NoError(t, export.WriteOBJ(&b, tw, "x.mtl"))
	assert.Equal(t, a.String(), b.String())
}

func TestWriteMTLSharedColors(t *testing.T) {
	p := params.Defaults()
	p.FloorCount = 6
	p.GradientStart = "#ff0000"
	p.GradientEnd = "#ff0000"
	tw := tower.Build(p)

	var sb strings.Builder
	require.NoError(t, export.WriteMTL(&sb, tw))
	out := sb.String()

	assert.Equal(t, 1, strings.Count(out, "newmtl "), "identical floor colors share one material")
	assert.Contains(t, out, "newmtl tint_ff0000")
	assert.Contains(t, out, "Kd 1.000000 0.000000 0.000000")
}

func TestWriteMTLGradient(t *testing.T) {
	tw := testTower(t, 10, 4)

	var sb strings.Builder
	require.NoError(t, export.WriteMTL(&sb, tw))

	// A 10-floor ramp between distinct endpoints yields distinct tints.
	assert.Greater(t, strings.Count(sb.String(), "newmtl "), 1)
}

func TestExportOBJWritesBothFiles(t *testing.T) {
	tw := testTower(t, 3, 4)
	dir := t.TempDir()
	objPath := filepath.Join(dir, "tower.obj")

	require.NoError(t, export.ExportOBJ(objPath, tw))

	objData, err := os.ReadFile(objPath)
	require.NoError(t, err)
	assert.Contains(t, string(objData), "mtllib tower.mtl")

	mtlData, err := os.ReadFile(filepath.Join(dir, "tower.mtl"))
	require.NoError(t, err)
	assert.Contains(t, string(mtlData), "newmtl ")
}

func TestExportOBJBadPath(t *testing.T) {
	tw := testTower(t, 2, 3)
	err := export.ExportOBJ("/nonexistent-dir/deep/tower.obj", tw)
	require.Error(t, err)
}
