package params

import (
	"fmt"
	"math/rand"
)

// Randomize fills p with a plausible random parameter set. Randomness lives
// here, on the authoring side: the builder itself is deterministic, so two
// builds of the same randomized record always agree.
func (p *TowerParameters) Randomize(rng *rand.Rand) {
	p.FloorCount = 12 + rng.Intn(49) // 12..60
	p.TowerHeight = 20 + rng.Float64()*60
	p.BaseRadius = 2 + rng.Float64()*6
	p.FloorThickness = 0.3 + rng.Float64()*0.7
	p.SlabSides = 3 + rng.Intn(13) // 3..15

	p.ScaleMin = 0.5 + rng.Float64()*0.5
	p.ScaleMax = 1.0 + rng.Float64()*0.8
	p.TwistMin = -45 + rng.Float64()*45
	p.TwistMax = rng.Float64() * 270

	p.GradientStart = randomHex(rng)
	p.GradientEnd = randomHex(rng)

	p.ProfilePoints = randomCurve(rng)
	p.FloorProfilePoints = randomAspectCurve(rng)
}

// randomCurve produces 3-6 radius control points in [0.3, 1.6].
func randomCurve(rng *rand.Rand) []float64 {
	n := 3 + rng.Intn(4)
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = 0.3 + rng.Float64()*1.3
	}
	return pts
}

// randomAspectCurve produces 2-4 aspect control points inside the clamp
// window the builder applies ([0.6, 1.4]).
func randomAspectCurve(rng *rand.Rand) []float64 {
	n := 2 + rng.Intn(3)
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = 0.6 + rng.Float64()*0.8
	}
	return pts
}

func randomHex(rng *rand.Rand) string {
	return fmt.Sprintf("#%02x%02x%02x", rng.Intn(256), rng.Intn(256), rng.Intn(256))
}
