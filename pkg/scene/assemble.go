package scene

import (
	"fmt"
	"math"
	"time"

	"github.com/ChicagoDave/towerforge/pkg/params"
	"github.com/ChicagoDave/towerforge/pkg/tower"
)

// cameraMargin widens the framing distance so the tower never touches the
// viewport edge.
const cameraMargin = 1.6

// Assemble converts a built tower into a renderer-ready scene graph. The
// ignored animation hints from the parameter record are forwarded here,
// untouched, as scene metadata.
func Assemble(t *tower.Tower, p params.TowerParameters) *Graph {
	g := NewGraph()

	for _, f := range t.Floors {
		addEntity(g, Entity{
			ID:   fmt.Sprintf("floor_%03d", f.Index),
			Type: EntitySlab,
			Position: Vec3{
				X: f.OffsetX,
				Y: f.PositionY,
				Z: f.OffsetZ,
			},
			Dimensions: Vec3{
				X: f.ScaleX * 2,
				Y: t.SlabHeight,
				Z: f.ScaleZ * 2,
			},
			Rotation: yawQuat(f.Rotation),
			Material: f.Color,
			Sides:    f.Sides,
			Band:     bandFor(f.Index, t.FloorCount),
			Metadata: map[string]any{
				"radius": f.Radius,
			},
		})
	}

	g.Metadata = Metadata{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Bounds:      computeBounds(g.Entities),
		Camera:      frameCamera(t),
		Animation: Animation{
			Enabled: p.Animate,
			Speed:   p.AnimationSpeed,
		},
		FloorCount: t.FloorCount,
		SlabHeight: t.SlabHeight,
	}

	return g
}

// bandFor buckets a floor into the lower, middle, or upper third.
func bandFor(index, count int) Band {
	if count <= 1 {
		return BandLower
	}
	switch {
	case 3*index < count:
		return BandLower
	case 3*index < 2*count:
		return BandMiddle
	default:
		return BandUpper
	}
}

// frameCamera derives a framing hint from the tower aggregates: orbit the
// stack midpoint at a distance covering both height and widest extent.
func frameCamera(t *tower.Tower) Camera {
	reach := math.Max(t.Height, t.MaxExtent()*2)
	return Camera{
		TargetY:  (t.Top() + t.Bottom()) / 2,
		Distance: reach * cameraMargin,
	}
}

// addEntity appends an entity and updates all group indices.
func addEntity(g *Graph, e Entity) {
	g.Entities = append(g.Entities, e)
	id := e.ID

	g.Groups.Bands[e.Band] = append(g.Groups.Bands[e.Band], id)
	g.Groups.Materials[e.Material] = append(g.Groups.Materials[e.Material], id)
	g.Groups.EntityTypes[e.Type] = append(g.Groups.EntityTypes[e.Type], id)
}

// computeBounds calculates the AABB of all entities.
func computeBounds(entities []Entity) BoundingBox {
	if len(entities) == 0 {
		return BoundingBox{}
	}
	minV := Vec3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
	maxV := Vec3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64}

	for _, e := range entities {
		halfX := e.Dimensions.X / 2
		halfY := e.Dimensions.Y / 2
		halfZ := e.Dimensions.Z / 2

		minV.X = math.Min(minV.X, e.Position.X-halfX)
		maxV.X = math.Max(maxV.X, e.Position.X+halfX)
		minV.Y = math.Min(minV.Y, e.Position.Y-halfY)
		maxV.Y = math.Max(maxV.Y, e.Position.Y+halfY)
		minV.Z = math.Min(minV.Z, e.Position.Z-halfZ)
		maxV.Z = math.Max(maxV.Z, e.Position.Z+halfZ)
	}
	return BoundingBox{Min: minV, Max: maxV}
}

func yawQuat(angle float64) [4]float64 {
	half := angle / 2
	return [4]float64{0, math.Sin(half), 0, math.Cos(half)}
}
