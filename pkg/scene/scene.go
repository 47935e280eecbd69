// Package scene converts a built tower into the scene graph the renderer
// consumes: one prism entity per floor plus camera-framing metadata. The
// renderer owns everything visual (lighting, animation timing); this graph
// is the complete contract between the two.
package scene

// EntityType identifies the kind of entity.
type EntityType string

const (
	EntitySlab EntityType = "slab"
)

// Band identifies a vertical third of the stack, used by the renderer for
// coarse filtering and staged reveal animations.
type Band string

const (
	BandLower  Band = "lower"
	BandMiddle Band = "middle"
	BandUpper  Band = "upper"
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// BoundingBox defines an axis-aligned bounding box.
type BoundingBox struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// Entity is a single element in the scene graph. A slab entity is a prism
// with Sides faces, Dimensions half-height extents resolved to full
// extents, rotated about the vertical axis.
type Entity struct {
	ID         string         `json:"id"`
	Type       EntityType     `json:"type"`
	Position   Vec3           `json:"position"`
	Dimensions Vec3           `json:"dimensions"`
	Rotation   [4]float64     `json:"rotation"` // quaternion [x, y, z, w]
	Material   string         `json:"material"` // "#rrggbb" diffuse color
	Sides      int            `json:"sides"`
	Band       Band           `json:"band"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Camera is the framing hint derived from the tower aggregates. The
// renderer may ignore it, but following it keeps any tower fully in view.
type Camera struct {
	TargetY  float64 `json:"target_y"`
	Distance float64 `json:"distance"`
}

// Animation carries the playback hints from the parameter record. Only the
// renderer reads these.
type Animation struct {
	Enabled bool    `json:"enabled"`
	Speed   float64 `json:"speed"`
}

// Metadata holds scene-level information.
type Metadata struct {
	GeneratedAt string      `json:"generated_at"`
	Bounds      BoundingBox `json:"bounds"`
	Camera      Camera      `json:"camera"`
	Animation   Animation   `json:"animation"`
	FloorCount  int         `json:"floor_count"`
	SlabHeight  float64     `json:"slab_height"`
}

// Groups organizes entity IDs for fast filtering.
type Groups struct {
	Bands       map[Band][]string       `json:"bands"`
	Materials   map[string][]string     `json:"materials"`
	EntityTypes map[EntityType][]string `json:"entity_types"`
}

// Graph is the complete scene output.
type Graph struct {
	Metadata Metadata `json:"metadata"`
	Entities []Entity `json:"entities"`
	Groups   Groups   `json:"groups"`
}

// NewGraph creates an empty scene graph.
func NewGraph() *Graph {
	return &Graph{
		Entities: []Entity{},
		Groups: Groups{
			Bands:       make(map[Band][]string),
			Materials:   make(map[string][]string),
			EntityTypes: make(map[EntityType][]string),
		},
	}
}
