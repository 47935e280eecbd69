package validation

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ChicagoDave/towerforge/pkg/params"
)

// Sanitization bounds, mirrored from the builder so the lint output names
// the exact values a build would correct to.
const (
	minTowerHeight    = 1.0
	minBaseRadius     = 0.25
	minFloorThickness = 0.1
	maxFloorThickness = 1.0
	minSlabSides      = 3
	maxSlabSides      = 48
)

// ValidateParams lints a parameter record before a build. Building never
// fails, so this is stricter than the builder on purpose: non-finite
// numbers and unparseable colors are authoring mistakes and come back as
// errors, while values the builder will clamp or reorder come back as
// warnings.
func ValidateParams(p *params.TowerParameters) *Report {
	r := NewReport()

	validateCounts(p, r)
	validateDimensions(p, r)
	validateRanges(p, r)
	validateColors(p, r)
	validateCurves(p, r)

	return r
}

func validateCounts(p *params.TowerParameters, r *Report) {
	if p.FloorCount < 1 {
		r.AddWarning(Result{
			Level:       LevelParams,
			Message:     fmt.Sprintf("floor_count %d is not positive; the build will use a single floor", p.FloorCount),
			ParamPath:   "floor_count",
			ActualValue: p.FloorCount,
			CorrectedTo: 1,
		})
	}

	switch {
	case p.SlabSides < 1:
		r.AddWarning(Result{
			Level:       LevelParams,
			Message:     fmt.Sprintf("slab_sides %d is not positive; the build will use the default", p.SlabSides),
			ParamPath:   "slab_sides",
			ActualValue: p.SlabSides,
			CorrectedTo: 8,
		})
	case p.SlabSides < minSlabSides:
		r.AddWarning(Result{
			Level:       LevelParams,
			Message:     fmt.Sprintf("slab_sides %d is below the minimum prism order; the build will use %d", p.SlabSides, minSlabSides),
			ParamPath:   "slab_sides",
			ActualValue: p.SlabSides,
			CorrectedTo: minSlabSides,
		})
	case p.SlabSides > maxSlabSides:
		r.AddWarning(Result{
			Level:       LevelParams,
			Message:     fmt.Sprintf("slab_sides %d exceeds the maximum prism order; the build will use %d", p.SlabSides, maxSlabSides),
			ParamPath:   "slab_sides",
			ActualValue: p.SlabSides,
			CorrectedTo: maxSlabSides,
		})
	}
}

func validateDimensions(p *params.TowerParameters, r *Report) {
	checkFinite(r, "tower_height", p.TowerHeight)
	checkFinite(r, "base_radius", p.BaseRadius)
	checkFinite(r, "floor_thickness", p.FloorThickness)

	if isFinite(p.TowerHeight) && p.TowerHeight < minTowerHeight {
		r.AddWarning(Result{
			Level:       LevelParams,
			Message:     fmt.Sprintf("tower_height %.3g is below the minimum; the build will use %.3g", p.TowerHeight, minTowerHeight),
			ParamPath:   "tower_height",
			ActualValue: p.TowerHeight,
			CorrectedTo: minTowerHeight,
		})
	}
	if isFinite(p.BaseRadius) && p.BaseRadius < minBaseRadius {
		r.AddWarning(Result{
			Level:       LevelParams,
			Message:     fmt.Sprintf("base_radius %.3g is below the minimum; the build will use %.3g", p.BaseRadius, minBaseRadius),
			ParamPath:   "base_radius",
			ActualValue: p.BaseRadius,
			CorrectedTo: minBaseRadius,
		})
	}
	if isFinite(p.FloorThickness) && (p.FloorThickness < minFloorThickness || p.FloorThickness > maxFloorThickness) {
		corrected := math.Min(math.Max(p.FloorThickness, minFloorThickness), maxFloorThickness)
		r.AddWarning(Result{
			Level:       LevelParams,
			Message:     fmt.Sprintf("floor_thickness %.3g is outside [%.1f, %.1f]; the build will use %.3g", p.FloorThickness, minFloorThickness, maxFloorThickness, corrected),
			ParamPath:   "floor_thickness",
			ActualValue: p.FloorThickness,
			CorrectedTo: corrected,
		})
	}
}

func validateRanges(p *params.TowerParameters, r *Report) {
	checkFinite(r, "scale_min", p.ScaleMin)
	checkFinite(r, "scale_max", p.ScaleMax)
	checkFinite(r, "twist_min", p.TwistMin)
	checkFinite(r, "twist_max", p.TwistMax)

	if isFinite(p.ScaleMin) && isFinite(p.ScaleMax) && p.ScaleMin > p.ScaleMax {
		r.AddInfo(Result{
			Level:       LevelParams,
			Message:     fmt.Sprintf("scale_min %.3g exceeds scale_max %.3g; the build sorts the pair, so the result is identical", p.ScaleMin, p.ScaleMax),
			ParamPath:   "scale_min",
			ActualValue: p.ScaleMin,
			Suggestions: []string{"Swap the two values for readability"},
		})
	}
	if isFinite(p.TwistMin) && isFinite(p.TwistMax) && p.TwistMin > p.TwistMax {
		r.AddInfo(Result{
			Level:       LevelParams,
			Message:     fmt.Sprintf("twist_min %.3g exceeds twist_max %.3g; the build sorts the pair, so the result is identical", p.TwistMin, p.TwistMax),
			ParamPath:   "twist_min",
			ActualValue: p.TwistMin,
			Suggestions: []string{"Swap the two values for readability"},
		})
	}
}

func validateColors(p *params.TowerParameters, r *Report) {
	for path, hex := range map[string]string{
		"gradient_start": p.GradientStart,
		"gradient_end":   p.GradientEnd,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			r.AddError(Result{
				Level:       LevelParams,
				Message:     fmt.Sprintf("%s %q is not a valid hex color; the build will substitute a fallback color", path, hex),
				ParamPath:   path,
				ActualValue: hex,
				Suggestions: []string{`Use the "#rrggbb" form`},
			})
		}
	}
}

func validateCurves(p *params.TowerParameters, r *Report) {
	checkCurve(r, "profile_points", p.ProfilePoints)
	checkCurve(r, "floor_profile_points", p.FloorProfilePoints)
}

func checkCurve(r *Report, path string, pts []float64) {
	if len(pts) == 0 {
		r.AddWarning(Result{
			Level:       LevelParams,
			Message:     fmt.Sprintf("%s is empty; the build will use the constant curve [1]", path),
			ParamPath:   path,
			CorrectedTo: []float64{1},
		})
		return
	}
	for i, v := range pts {
		if !isFinite(v) {
			r.AddError(Result{
				Level:       LevelParams,
				Message:     fmt.Sprintf("%s[%d] is not finite; the build will drop it", path, i),
				ParamPath:   fmt.Sprintf("%s[%d]", path, i),
				ActualValue: fmt.Sprint(v),
			})
		}
	}
}

func checkFinite(r *Report, path string, v float64) {
	if !isFinite(v) {
		r.AddError(Result{
			Level:       LevelParams,
			Message:     fmt.Sprintf("%s is not finite; the build will use the field default", path),
			ParamPath:   path,
			ActualValue: fmt.Sprint(v),
		})
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
