// Package curve provides the small interpolation toolkit used by the tower
// builder: linear interpolation, clamping, quadratic ease-in-out, and a
// piecewise-linear control-curve sampler. Nothing in here knows about towers.
package curve

import "math"

// Lerp returns the linear interpolation between a and b at t.
// t is not clamped; callers that need clamping do it explicitly.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EaseInOut is a symmetric quadratic timing function: 2t² below t=0.5,
// mirrored above. Compared to a linear ramp it accelerates away from 0 and
// decelerates into 1.
func EaseInOut(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 2 * t * t
	}
	d := 1 - t
	return 1 - 2*d*d
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Sample evaluates a piecewise-linear control curve at t in [0,1]. The
// values are treated as control points evenly spaced over [0,1]; the pair
// bracketing t is located by t*(n-1) and interpolated by the fractional
// remainder. A single-element curve is a constant; an empty curve samples
// to 1 so that multiplying by the sample is a no-op.
func Sample(values []float64, t float64) float64 {
	n := len(values)
	if n == 0 {
		return 1
	}
	if n == 1 {
		return values[0]
	}

	t = Clamp(t, 0, 1)
	pos := t * float64(n-1)
	i := int(math.Floor(pos))
	if i >= n-1 {
		return values[n-1]
	}
	frac := pos - float64(i)
	return Lerp(values[i], values[i+1], frac)
}
