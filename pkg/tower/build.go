package tower

import (
	"math"

	"github.com/ChicagoDave/towerforge/pkg/curve"
	"github.com/ChicagoDave/towerforge/pkg/gradient"
	"github.com/ChicagoDave/towerforge/pkg/params"
)

// Tuned cosmetic constants. The drift and wobble terms are decorative, not
// derived from any structural model; change them and the tower reads
// differently but nothing breaks.
const (
	minRadiusScale = 0.15
	maxRadiusScale = 3.0
	minAspect      = 0.6
	maxAspect      = 1.4
	driftFraction  = 0.25 // drift radius as a fraction of base radius
)

// Build transforms a parameter record into a Tower. It is a total function:
// deterministic, side-effect free, and accepting of any input — malformed
// values are corrected by sanitization, never rejected.
func Build(p params.TowerParameters) *Tower {
	s := sanitize(p)

	floorHeight := s.height / float64(s.floorCount)
	slabHeight := floorHeight * s.floorThickness
	driftRadius := s.baseRadius * driftFraction
	ramp := gradient.New(s.gradientStart, s.gradientEnd)

	floors := make([]Floor, s.floorCount)
	for i := range floors {
		// Normalized height position. A single-floor tower sits at the
		// top of its own ramp.
		ratio := 1.0
		if s.floorCount > 1 {
			ratio = float64(i) / float64(s.floorCount-1)
		}

		// Twist and scale follow the eased ramp; color follows raw ratio.
		// The two timing curves diverging is intentional.
		eased := curve.EaseInOut(ratio)

		rotation := curve.DegToRad(curve.Lerp(s.twistLow, s.twistHigh, eased))

		profileSample := curve.Sample(s.profile, eased)
		radiusScale := curve.Clamp(
			curve.Lerp(s.scaleLow, s.scaleHigh, eased)*profileSample,
			minRadiusScale, maxRadiusScale)
		radius := s.baseRadius * radiusScale

		aspect := curve.Clamp(curve.Sample(s.floorProfile, eased), minAspect, maxAspect)

		// Decorative horizontal drift. Two out-of-phase waves keep X and Z
		// from drifting in lockstep.
		wobble := math.Sin(ratio * 2 * math.Pi)
		wobble2 := math.Cos(ratio*1.5*math.Pi + math.Pi/3)

		floors[i] = Floor{
			Index:     i,
			PositionY: -s.height/2 + slabHeight/2 + float64(i)*floorHeight,
			Rotation:  rotation,
			Radius:    radius,
			ScaleX:    radius * aspect,
			ScaleZ:    radius * math.Max(0.5, 2-aspect) * (0.85 + math.Abs(wobble)*0.25),
			OffsetX:   math.Cos(rotation) * driftRadius * wobble,
			OffsetZ:   math.Sin(rotation) * driftRadius * wobble2,
			Color:     ramp.At(ratio),
			Sides:     s.slabSides,
		}
	}

	return &Tower{
		Floors:     floors,
		SlabHeight: slabHeight,
		Height:     s.height,
		BaseRadius: s.baseRadius,
		FloorCount: s.floorCount,
		SlabSides:  s.slabSides,
	}
}
