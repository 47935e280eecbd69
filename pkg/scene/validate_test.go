package scene

import (
	"testing"

	"github.com/ChicagoDave/towerforge/pkg/params"
	"github.com/ChicagoDave/towerforge/pkg/tower"
)

func TestValidateNilGraph(t *testing.T) {
	r := ValidateGraph(nil)
	if r.Valid {
		t.Error("nil graph should be invalid")
	}
}

func TestValidateEmptyGraph(t *testing.T) {
	r := ValidateGraph(NewGraph())
	if !r.Valid {
		t.Errorf("empty graph should be valid: %s", r.Summary)
	}
}

func TestValidateDetectsDuplicateIDs(t *testing.T) {
	g := assembleTestGraph(t)
	g.Entities[1].ID = g.Entities[0].ID

	r := ValidateGraph(g)
	if r.Valid {
		t.Error("duplicate IDs should invalidate the graph")
	}
}

func TestValidateDetectsEmptyID(t *testing.T) {
	g := assembleTestGraph(t)
	g.Entities[0].ID = ""

	r := ValidateGraph(g)
	if r.Valid {
		t.Error("empty ID should invalidate the graph")
	}
}

func TestValidateDetectsDanglingGroupReference(t *testing.T) {
	g := assembleTestGraph(t)
	g.Groups.Bands[BandLower] = append(g.Groups.Bands[BandLower], "floor_999")

	r := ValidateGraph(g)
	if r.Valid {
		t.Error("group reference to a missing entity should invalidate the graph")
	}
}

func TestValidateDetectsUnindexedEntity(t *testing.T) {
	g := assembleTestGraph(t)
	// Move an entity to a band without updating the index.
	g.Entities[0].Band = BandUpper

	r := ValidateGraph(g)
	if r.Valid {
		t.Error("entity missing from its band group should invalidate the graph")
	}
}

func TestValidateDetectsBadDimensions(t *testing.T) {
	g := assembleTestGraph(t)
	g.Entities[2].Dimensions.X = 0

	r := ValidateGraph(g)
	if r.Valid {
		t.Error("zero dimension should invalidate the graph")
	}
}

func TestValidateDetectsDegeneratePrism(t *testing.T) {
	g := assembleTestGraph(t)
	g.Entities[3].Sides = 2

	r := ValidateGraph(g)
	if r.Valid {
		t.Error("a 2-sided prism should invalidate the graph")
	}
}

func TestValidateDetectsOutOfOrderFloors(t *testing.T) {
	g := assembleTestGraph(t)
	g.Entities[4].Position.Y = g.Entities[0].Position.Y - 100

	r := ValidateGraph(g)
	if r.Valid {
		t.Error("out-of-order floor should invalidate the graph")
	}
}

func TestValidateWarnsOnBoundsEscape(t *testing.T) {
	g := assembleTestGraph(t)
	g.Metadata.Bounds.Max.Y -= 10

	r := ValidateGraph(g)
	if len(r.Warnings) == 0 {
		t.Error("entity outside bounds should produce a warning")
	}
}

func TestValidateFreshBuild(t *testing.T) {
	p := params.Defaults()
	p.FloorCount = 64
	p.TwistMax = 300
	g := Assemble(tower.Build(p), p)

	r := ValidateGraph(g)
	if !r.Valid {
		t.Fatalf("freshly assembled graph should validate: %s", r.Summary)
	}
}
