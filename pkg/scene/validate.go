package scene

import (
	"fmt"

	"github.com/ChicagoDave/towerforge/pkg/validation"
)

// ValidateGraph performs structural validation on an assembled scene:
// entity integrity, group index consistency, bounds enclosure, and the
// bottom-to-top floor ordering the renderer relies on.
func ValidateGraph(g *Graph) *validation.Report {
	r := validation.NewReport()

	if g == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelScene,
			Message: "scene graph is nil",
		})
		return r
	}

	validateEntityIDs(g, r)
	validateGroupIndices(g, r)
	validateDimensions(g, r)
	validateBoundsEnclosure(g, r)
	validateFloorOrdering(g, r)

	return r
}

func validateEntityIDs(g *Graph, r *validation.Report) {
	seen := make(map[string]int, len(g.Entities))

	for i, e := range g.Entities {
		if e.ID == "" {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity at index %d has empty ID", i),
				ActualValue: i,
			})
			continue
		}
		if prev, exists := seen[e.ID]; exists {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("duplicate entity ID %q at indices %d and %d", e.ID, prev, i),
				ActualValue: e.ID,
			})
		}
		seen[e.ID] = i
	}
}

func validateGroupIndices(g *Graph, r *validation.Report) {
	entityIDs := make(map[string]bool, len(g.Entities))
	for _, e := range g.Entities {
		entityIDs[e.ID] = true
	}

	checkGroup := func(groupType, groupName string, ids []string) {
		for _, id := range ids {
			if !entityIDs[id] {
				r.AddError(validation.Result{
					Level:       validation.LevelScene,
					Message:     fmt.Sprintf("group %s.%s references non-existent entity %q", groupType, groupName, id),
					ActualValue: id,
				})
			}
		}
	}

	for band, ids := range g.Groups.Bands {
		checkGroup("bands", string(band), ids)
	}
	for mat, ids := range g.Groups.Materials {
		checkGroup("materials", mat, ids)
	}
	for et, ids := range g.Groups.EntityTypes {
		checkGroup("entity_types", string(et), ids)
	}

	// Every entity must be indexed under its own band, material, and type.
	membership := func(ids []string, id string) bool {
		for _, x := range ids {
			if x == id {
				return true
			}
		}
		return false
	}
	for _, e := range g.Entities {
		if !membership(g.Groups.Bands[e.Band], e.ID) {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity %q has band %q but is not in that band group", e.ID, e.Band),
				ActualValue: e.ID,
			})
		}
		if !membership(g.Groups.Materials[e.Material], e.ID) {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity %q has material %q but is not in that material group", e.ID, e.Material),
				ActualValue: e.ID,
			})
		}
		if !membership(g.Groups.EntityTypes[e.Type], e.ID) {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity %q has type %q but is not in that type group", e.ID, e.Type),
				ActualValue: e.ID,
			})
		}
	}
}

func validateDimensions(g *Graph, r *validation.Report) {
	for _, e := range g.Entities {
		if e.Dimensions.X <= 0 || e.Dimensions.Y <= 0 || e.Dimensions.Z <= 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity %q has zero or negative dimension (%.3f, %.3f, %.3f)", e.ID, e.Dimensions.X, e.Dimensions.Y, e.Dimensions.Z),
				ActualValue: e.ID,
			})
		}
		if e.Type == EntitySlab && e.Sides < 3 {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("slab %q has %d sides; a prism needs at least 3", e.ID, e.Sides),
				ActualValue: e.Sides,
			})
		}
	}
}

func validateBoundsEnclosure(g *Graph, r *validation.Report) {
	bounds := g.Metadata.Bounds
	const tolerance = 1e-6

	for _, e := range g.Entities {
		halfX := e.Dimensions.X / 2
		halfY := e.Dimensions.Y / 2
		halfZ := e.Dimensions.Z / 2

		outside := e.Position.X-halfX < bounds.Min.X-tolerance ||
			e.Position.X+halfX > bounds.Max.X+tolerance ||
			e.Position.Y-halfY < bounds.Min.Y-tolerance ||
			e.Position.Y+halfY > bounds.Max.Y+tolerance ||
			e.Position.Z-halfZ < bounds.Min.Z-tolerance ||
			e.Position.Z+halfZ > bounds.Max.Z+tolerance

		if outside {
			r.AddWarning(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("entity %q extends outside the scene bounds", e.ID),
				ActualValue: e.ID,
			})
			break
		}
	}
}

// validateFloorOrdering checks that slab entities appear bottom-to-top, the
// order the builder guarantees and the exporter depends on.
func validateFloorOrdering(g *Graph, r *validation.Report) {
	lastY := 0.0
	first := true
	for _, e := range g.Entities {
		if e.Type != EntitySlab {
			continue
		}
		if !first && e.Position.Y <= lastY {
			r.AddError(validation.Result{
				Level:       validation.LevelScene,
				Message:     fmt.Sprintf("slab %q at y=%.3f is not above its predecessor (y=%.3f)", e.ID, e.Position.Y, lastY),
				ActualValue: e.Position.Y,
			})
		}
		lastY = e.Position.Y
		first = false
	}
}
