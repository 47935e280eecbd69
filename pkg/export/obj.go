// Package export emits a built tower as a Wavefront OBJ mesh with an MTL
// palette. Each floor is re-triangulated independently from the Tower value
// alone; no renderer state is needed, so an export always matches what the
// viewport shows for the same parameters.
package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChicagoDave/towerforge/pkg/gradient"
	"github.com/ChicagoDave/towerforge/pkg/tower"
)

// ExportOBJ writes base.obj and base.mtl next to each other. The objPath
// extension, if any, is replaced.
func ExportOBJ(objPath string, t *tower.Tower) error {
	base := strings.TrimSuffix(objPath, filepath.Ext(objPath))
	mtlPath := base + ".mtl"

	objFile, err := os.Create(base + ".obj")
	if err != nil {
		return fmt.Errorf("creating OBJ file: %w", err)
	}
	defer objFile.Close()

	if err := WriteOBJ(objFile, t, filepath.Base(mtlPath)); err != nil {
		return fmt.Errorf("writing OBJ: %w", err)
	}

	mtlFile, err := os.Create(mtlPath)
	if err != nil {
		return fmt.Errorf("creating MTL file: %w", err)
	}
	defer mtlFile.Close()

	if err := WriteMTL(mtlFile, t); err != nil {
		return fmt.Errorf("writing MTL: %w", err)
	}
	return nil
}

// WriteOBJ emits the tower mesh. Each floor becomes one named object: a
// prism with Sides faces, two n-gon caps, and quad side walls. Vertex
// indices are 1-based and cumulative across floors per the OBJ format.
func WriteOBJ(w io.Writer, t *tower.Tower, mtlName string) error {
	if _, err := fmt.Fprintf(w, "# towerforge export: %d floors\n", len(t.Floors)); err != nil {
		return err
	}
	if mtlName != "" {
		if _, err := fmt.Fprintf(w, "mtllib %s\n", mtlName); err != nil {
			return err
		}
	}

	offset := 1 // OBJ vertex indices start at 1
	for _, f := range t.Floors {
		if err := writeFloor(w, f, t.SlabHeight, offset); err != nil {
			return err
		}
		offset += 2 * f.Sides
	}
	return nil
}

// writeFloor emits one prism. Ring vertices are placed on the slab's
// rotated ellipse: bottom ring first, then top ring, so vertex k of the
// top ring is offset+sides+k.
func writeFloor(w io.Writer, f tower.Floor, slabHeight float64, offset int) error {
	fmt.Fprintf(w, "o floor_%03d\n", f.Index)
	fmt.Fprintf(w, "usemtl %s\n", materialName(f))

	yBottom := f.PositionY - slabHeight/2
	yTop := f.PositionY + slabHeight/2

	for _, y := range []float64{yBottom, yTop} {
		for k := 0; k < f.Sides; k++ {
			angle := f.Rotation + 2*math.Pi*float64(k)/float64(f.Sides)
			x := f.OffsetX + math.Cos(angle)*f.ScaleX
			z := f.OffsetZ + math.Sin(angle)*f.ScaleZ
			if _, err := fmt.Fprintf(w, "v %.6f %.6f %.6f\n", x, y, z); err != nil {
				return err
			}
		}
	}

	bottom := func(k int) int { return offset + k%f.Sides }
	top := func(k int) int { return offset + f.Sides + k%f.Sides }

	// Bottom cap wound clockwise when seen from above so its normal points
	// down; top cap counter-clockwise.
	fmt.Fprint(w, "f")
	for k := f.Sides - 1; k >= 0; k-- {
		fmt.Fprintf(w, " %d", bottom(k))
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, "f")
	for k := 0; k < f.Sides; k++ {
		fmt.Fprintf(w, " %d", top(k))
	}
	fmt.Fprintln(w)

	// Side walls as quads.
	for k := 0; k < f.Sides; k++ {
		if _, err := fmt.Fprintf(w, "f %d %d %d %d\n",
			bottom(k), bottom(k+1), top(k+1), top(k)); err != nil {
			return err
		}
	}
	return nil
}

// WriteMTL emits one diffuse material per floor color. Floors sharing a
// color share a material entry.
func WriteMTL(w io.Writer, t *tower.Tower) error {
	if _, err := fmt.Fprintln(w, "# towerforge materials"); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, f := range t.Floors {
		name := materialName(f)
		if seen[name] {
			continue
		}
		seen[name] = true

		r, g, b := gradient.Parse(f.Color, gradient.FallbackStart)
		if _, err := fmt.Fprintf(w, "newmtl %s\nKd %.6f %.6f %.6f\n", name, r, g, b); err != nil {
			return err
		}
	}
	return nil
}

// materialName derives a stable material identifier from the floor color.
func materialName(f tower.Floor) string {
	return "tint_" + strings.TrimPrefix(f.Color, "#")
}
