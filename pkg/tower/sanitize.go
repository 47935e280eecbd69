package tower

import (
	"math"

	"github.com/ChicagoDave/towerforge/pkg/params"
)

// Per-field fallback defaults and clamp windows. The builder never rejects
// input: every malformed or out-of-range value degrades to these.
const (
	defaultFloorCount     = 1
	defaultTowerHeight    = 40.0
	defaultBaseRadius     = 4.0
	defaultFloorThickness = 0.5
	defaultSlabSides      = 8
	defaultScaleMin       = 0.8
	defaultScaleMax       = 1.2
	defaultTwistMin       = -10.0
	defaultTwistMax       = 120.0

	MinTowerHeight    = 1.0
	MinBaseRadius     = 0.25
	MinFloorThickness = 0.1
	MaxFloorThickness = 1.0
	MinSlabSides      = 3
	MaxSlabSides      = 48
)

// sanitized is the post-coercion view of TowerParameters the build loop
// runs on: all numerics finite and clamped, ranges ordered low/high,
// profile curves non-empty.
type sanitized struct {
	floorCount     int
	height         float64
	baseRadius     float64
	floorThickness float64
	slabSides      int

	scaleLow, scaleHigh float64
	twistLow, twistHigh float64 // degrees

	gradientStart, gradientEnd string

	profile      []float64
	floorProfile []float64
}

// sanitize coerces a raw parameter record into the valid domain. Non-finite
// numerics fall back to the field default before clamping.
func sanitize(p params.TowerParameters) sanitized {
	s := sanitized{
		floorCount:     clampInt(p.FloorCount, defaultFloorCount, 1, math.MaxInt32),
		height:         math.Max(finite(p.TowerHeight, defaultTowerHeight), MinTowerHeight),
		baseRadius:     math.Max(finite(p.BaseRadius, defaultBaseRadius), MinBaseRadius),
		floorThickness: clampFloat(finite(p.FloorThickness, defaultFloorThickness), MinFloorThickness, MaxFloorThickness),
		slabSides:      clampInt(p.SlabSides, defaultSlabSides, MinSlabSides, MaxSlabSides),
		gradientStart:  p.GradientStart,
		gradientEnd:    p.GradientEnd,
		profile:        sanitizeCurve(p.ProfilePoints),
		floorProfile:   sanitizeCurve(p.FloorProfilePoints),
	}

	// Range normalization: interpolate low-to-high regardless of which
	// authoring field held which bound.
	s.scaleLow, s.scaleHigh = ordered(
		finite(p.ScaleMin, defaultScaleMin),
		finite(p.ScaleMax, defaultScaleMax))
	s.twistLow, s.twistHigh = ordered(
		finite(p.TwistMin, defaultTwistMin),
		finite(p.TwistMax, defaultTwistMax))

	return s
}

// finite returns v unless it is NaN or infinite, in which case it returns
// the fallback.
func finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func ordered(a, b float64) (low, high float64) {
	if a > b {
		return b, a
	}
	return a, b
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// clampInt substitutes fallback for non-positive zero-value inputs before
// clamping. An int field can't be NaN, but an unset or nonsense value still
// needs the documented default.
func clampInt(v, fallback, lo, hi int) int {
	if v <= 0 {
		v = fallback
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sanitizeCurve drops non-finite control points and falls back to the
// constant curve [1] when nothing usable remains.
func sanitizeCurve(pts []float64) []float64 {
	out := make([]float64, 0, len(pts))
	for _, v := range pts {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return []float64{1}
	}
	return out
}
