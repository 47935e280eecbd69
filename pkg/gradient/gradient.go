// Package gradient interpolates the per-floor color ramp. The blend is a
// plain sRGB channel blend: simple, deterministic, and exact at both
// endpoints.
package gradient

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ChicagoDave/towerforge/pkg/curve"
)

// Fallback colors used when an endpoint fails to parse. Malformed input is
// corrected silently, matching the builder's error policy.
const (
	FallbackStart = "#1e3a5f"
	FallbackEnd   = "#d9a441"
)

// Ramp is a two-endpoint linear color ramp.
type Ramp struct {
	start colorful.Color
	end   colorful.Color
}

// New builds a ramp from two hex strings ("#rrggbb"). Endpoints that do not
// parse are replaced with the fallback colors.
func New(startHex, endHex string) Ramp {
	return Ramp{
		start: parse(startHex, FallbackStart),
		end:   parse(endHex, FallbackEnd),
	}
}

// At returns the blended color at t in [0,1] as a lowercase "#rrggbb"
// string. t is clamped; At(0) and At(1) reproduce the endpoints exactly.
func (r Ramp) At(t float64) string {
	t = curve.Clamp(t, 0, 1)
	return r.start.BlendRgb(r.end, t).Hex()
}

// Start returns the normalized start endpoint.
func (r Ramp) Start() string { return r.start.Hex() }

// End returns the normalized end endpoint.
func (r Ramp) End() string { return r.end.Hex() }

// Parse resolves a hex color to RGB bytes, substituting fallback for
// malformed input. Used by the exporter for material colors.
func Parse(hex, fallback string) (r, g, b float64) {
	c := parse(hex, fallback)
	return c.R, c.G, c.B
}

func parse(hex, fallback string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, err = colorful.Hex(fallback)
		if err != nil {
			// Fallbacks are compile-time constants; this is unreachable
			// unless one of them is edited into an invalid state.
			return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
		}
	}
	return c
}
