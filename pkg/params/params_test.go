package params_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ChicagoDave/towerforge/pkg/params"
)

func TestLoadProject(t *testing.T) {
	p, err := params.LoadProject("../../examples/default-tower")
	require.NoError(t, err)

	assert.Equal(t, 32, p.FloorCount)
	assert.Equal(t, 48.0, p.TowerHeight)
	assert.Equal(t, 5.0, p.BaseRadius)
	assert.Equal(t, 0.6, p.FloorThickness)
	assert.Equal(t, 6, p.SlabSides)
	assert.Equal(t, 0.7, p.ScaleMin)
	assert.Equal(t, 1.25, p.ScaleMax)
	assert.Equal(t, 0.0, p.TwistMin)
	assert.Equal(t, 180.0, p.TwistMax)
	assert.Equal(t, "#1e3a5f", p.GradientStart)
	assert.Equal(t, "#d9a441", p.GradientEnd)
	assert.Equal(t, []float64{1.0, 0.75, 0.6, 0.85, 1.1}, p.ProfilePoints)
	assert.Equal(t, []float64{1.2, 1.0, 0.8}, p.FloorProfilePoints)
	assert.True(t, p.Animate)
	assert.Equal(t, 1.0, p.AnimationSpeed)
}

func TestLoadProjectMissing(t *testing.T) {
	_, err := params.LoadProject("/nonexistent/path")
	require.Error(t, err)
}

func TestLoadAbsentFieldsKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, params.ProjectFile)
	require.NoError(t, os.WriteFile(path, []byte("floor_count: 5\n"), 0o644))

	p, err := params.LoadProject(dir)
	require.NoError(t, err)

	def := params.Defaults()
	assert.Equal(t, 5, p.FloorCount)
	assert.Equal(t, def.TowerHeight, p.TowerHeight)
	assert.Equal(t, def.GradientStart, p.GradientStart)
	assert.Equal(t, def.ProfilePoints, p.ProfilePoints)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, params.ProjectFile)
	require.NoError(t, os.WriteFile(path, []byte("floor_count: [not a number\n"), 0o644))

	_, err := params.LoadProject(dir)
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	p := params.Defaults()
	p.FloorCount = 17
	p.ProfilePoints = []float64{0.5, 1.5}

	data, err := p.Marshal()
	require.NoError(t, err)

	var back params.TowerParameters
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, p, back)
}

func TestRandomizeDeterministicPerSeed(t *testing.T) {
	a := params.Defaults()
	b := params.Defaults()
	a.Randomize(rand.New(rand.NewSource(7)))
	b.Randomize(rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}

func TestRandomizeStaysInAuthoringRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		p := params.Defaults()
		p.Randomize(rng)

		assert.GreaterOrEqual(t, p.FloorCount, 12)
		assert.LessOrEqual(t, p.FloorCount, 60)
		assert.GreaterOrEqual(t, p.SlabSides, 3)
		assert.LessOrEqual(t, p.SlabSides, 15)
		assert.GreaterOrEqual(t, p.FloorThickness, 0.3)
		assert.LessOrEqual(t, p.FloorThickness, 1.0)
		assert.GreaterOrEqual(t, len(p.ProfilePoints), 3)
		assert.GreaterOrEqual(t, len(p.FloorProfilePoints), 2)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, p.GradientStart)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, p.GradientEnd)
	}
}
