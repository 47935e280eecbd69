package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/ChicagoDave/towerforge/pkg/params"
)

func TestValidateDefaultsIsClean(t *testing.T) {
	p := params.Defaults()
	r := ValidateParams(&p)
	if !r.Valid {
		t.Fatalf("defaults should validate cleanly: %s", r.Summary)
	}
	if len(r.Warnings) != 0 || len(r.Info) != 0 {
		t.Errorf("defaults should produce no findings, got %s", r.Summary)
	}
}

func TestValidateWarnsOnClampedValues(t *testing.T) {
	p := params.Defaults()
	p.FloorCount = 0
	p.TowerHeight = 0.2
	p.BaseRadius = 0.1
	p.FloorThickness = 1.5
	p.SlabSides = 2

	r := ValidateParams(&p)
	if !r.Valid {
		t.Error("clamped values are warnings, not errors")
	}
	if len(r.Warnings) != 5 {
		t.Fatalf("expected 5 warnings, got %d (%s)", len(r.Warnings), r.Summary)
	}

	paths := make(map[string]bool)
	for _, w := range r.Warnings {
		paths[w.ParamPath] = true
	}
	for _, want := range []string{"floor_count", "tower_height", "base_radius", "floor_thickness", "slab_sides"} {
		if !paths[want] {
			t.Errorf("missing warning for %s", want)
		}
	}
}

func TestValidateSwappedBoundsAreInfo(t *testing.T) {
	p := params.Defaults()
	p.ScaleMin, p.ScaleMax = 2, 1
	p.TwistMin, p.TwistMax = 90, 0

	r := ValidateParams(&p)
	if !r.Valid {
		t.Error("swapped bounds should not invalidate")
	}
	if len(r.Info) != 2 {
		t.Fatalf("expected 2 info findings, got %d", len(r.Info))
	}
	for _, i := range r.Info {
		if !strings.Contains(i.Message, "sorts the pair") {
			t.Errorf("info message should explain the reorder: %q", i.Message)
		}
	}
}

func TestValidateNonFiniteIsError(t *testing.T) {
	p := params.Defaults()
	p.TowerHeight = math.NaN()
	p.ScaleMin = math.Inf(1)
	p.ProfilePoints = []float64{1, math.NaN()}

	r := ValidateParams(&p)
	if r.Valid {
		t.Error("non-finite numerics should be errors")
	}
	if len(r.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d (%s)", len(r.Errors), r.Summary)
	}
}

func TestValidateBadColors(t *testing.T) {
	p := params.Defaults()
	p.GradientStart = "blue-ish"
	p.GradientEnd = ""

	r := ValidateParams(&p)
	if r.Valid {
		t.Error("unparseable colors should be errors")
	}
	if len(r.Errors) != 2 {
		t.Errorf("expected 2 errors, got %d", len(r.Errors))
	}
}

func TestValidateEmptyCurves(t *testing.T) {
	p := params.Defaults()
	p.ProfilePoints = nil
	p.FloorProfilePoints = []float64{}

	r := ValidateParams(&p)
	if !r.Valid {
		t.Error("empty curves fall back silently; they should be warnings")
	}
	if len(r.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %d", len(r.Warnings))
	}
}
