package params

// TowerParameters is the full input record for one tower build. It is
// authored in tower.yaml (or posted as JSON to the dev server) and consumed
// by the builder as an immutable value; the builder sanitizes every field,
// so any numeric garbage here degrades to documented defaults rather than
// failing the build.
type TowerParameters struct {
	FloorCount     int     `yaml:"floor_count" json:"floor_count"`
	TowerHeight    float64 `yaml:"tower_height" json:"tower_height"`
	BaseRadius     float64 `yaml:"base_radius" json:"base_radius"`
	FloorThickness float64 `yaml:"floor_thickness" json:"floor_thickness"`
	SlabSides      int     `yaml:"slab_sides" json:"slab_sides"`

	// Radius multiplier and twist ranges across the stack. Order is
	// irrelevant: the builder sorts each pair before interpolating.
	ScaleMin float64 `yaml:"scale_min" json:"scale_min"`
	ScaleMax float64 `yaml:"scale_max" json:"scale_max"`
	TwistMin float64 `yaml:"twist_min" json:"twist_min"` // degrees
	TwistMax float64 `yaml:"twist_max" json:"twist_max"` // degrees

	GradientStart string `yaml:"gradient_start" json:"gradient_start"`
	GradientEnd   string `yaml:"gradient_end" json:"gradient_end"`

	// Piecewise-linear control curves sampled over normalized height.
	// ProfilePoints modulates radius; FloorProfilePoints modulates the
	// X-vs-Z aspect of each slab.
	ProfilePoints      []float64 `yaml:"profile_points" json:"profile_points"`
	FloorProfilePoints []float64 `yaml:"floor_profile_points" json:"floor_profile_points"`

	// Playback hints forwarded untouched to the renderer; the builder
	// ignores them.
	Animate        bool    `yaml:"animate" json:"animate"`
	AnimationSpeed float64 `yaml:"animation_speed" json:"animation_speed"`
}

// Defaults returns the documented fallback parameter set. Loading a project
// file decodes over this value, so absent fields keep their defaults.
func Defaults() TowerParameters {
	return TowerParameters{
		FloorCount:         24,
		TowerHeight:        40,
		BaseRadius:         4,
		FloorThickness:     0.5,
		SlabSides:          8,
		ScaleMin:           0.8,
		ScaleMax:           1.2,
		TwistMin:           -10,
		TwistMax:           120,
		GradientStart:      "#1e3a5f",
		GradientEnd:        "#d9a441",
		ProfilePoints:      []float64{1},
		FloorProfilePoints: []float64{1},
		Animate:            false,
		AnimationSpeed:     1,
	}
}
