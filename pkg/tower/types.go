// Package tower holds the core of the generator: a pure, deterministic
// transform from a parameter record to an ordered stack of floor slabs.
// Everything downstream (scene assembly, export, the dev server) consumes
// the Tower value produced here and adds nothing to the geometry.
package tower

// Floor describes one slab of the stack, bottom-to-top by Index.
type Floor struct {
	Index     int     `json:"index"`
	PositionY float64 `json:"position_y"` // vertical center of the slab
	Rotation  float64 `json:"rotation"`   // radians about the vertical axis
	Radius    float64 `json:"radius"`     // base radius before aspect distortion
	ScaleX    float64 `json:"scale_x"`    // final half-extent along local X
	ScaleZ    float64 `json:"scale_z"`    // final half-extent along local Z
	OffsetX   float64 `json:"offset_x"`   // drift of the slab center off-axis
	OffsetZ   float64 `json:"offset_z"`
	Color     string  `json:"color"` // "#rrggbb"
	Sides     int     `json:"sides"` // prism order
}

// Tower is the complete build output: the floor stack plus the aggregate
// scalars downstream camera framing works from. It is a short-lived derived
// value, recomputed from scratch on every parameter change.
type Tower struct {
	Floors     []Floor `json:"floors"`
	SlabHeight float64 `json:"slab_height"`
	Height     float64 `json:"height"`
	BaseRadius float64 `json:"base_radius"`
	FloorCount int     `json:"floor_count"`
	SlabSides  int     `json:"slab_sides"`
}

// Top returns the vertical center of the highest slab, or 0 for an empty
// tower.
func (t *Tower) Top() float64 {
	if len(t.Floors) == 0 {
		return 0
	}
	return t.Floors[len(t.Floors)-1].PositionY
}

// Bottom returns the vertical center of the lowest slab, or 0 for an empty
// tower.
func (t *Tower) Bottom() float64 {
	if len(t.Floors) == 0 {
		return 0
	}
	return t.Floors[0].PositionY
}

// MaxExtent returns the largest horizontal half-extent across all floors,
// drift included. Camera framing uses this together with Height.
func (t *Tower) MaxExtent() float64 {
	max := 0.0
	for _, f := range t.Floors {
		if e := abs(f.OffsetX) + f.ScaleX; e > max {
			max = e
		}
		if e := abs(f.OffsetZ) + f.ScaleZ; e > max {
			max = e
		}
	}
	return max
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
