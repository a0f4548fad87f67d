// Package meshgen produces small demonstration meshes, used to exercise the
// MSH formatting pipeline end to end from the gen command.
package meshgen

import (
	"fmt"
	"os"
	"strings"

	"github.com/pradeep-pyro/triangle"
)

// Mesh is a triangulated 2D point set.
type Mesh struct {
	Points    [][2]float64
	Triangles [][3]int32
}

// GenerateGrid triangulates an nx by ny rectangular grid of points with the
// given spacing, using a Delaunay triangulation.
func GenerateGrid(nx, ny int, spacing float64) (*Mesh, error) {
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("grid must be at least 2x2, got %dx%d", nx, ny)
	}
	if spacing <= 0 {
		return nil, fmt.Errorf("spacing must be positive, got %g", spacing)
	}

	pts := make([][2]float64, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			pts = append(pts, [2]float64{float64(i) * spacing, float64(j) * spacing})
		}
	}

	return &Mesh{
		Points:    pts,
		Triangles: triangle.Delaunay(pts),
	}, nil
}

// Encode renders the mesh as a Gmsh MSH 2.2 ASCII document. Node tags are
// 1-based; triangles are element type 2 with physical and geometric tags.
func Encode(m *Mesh) string {
	var b strings.Builder
	b.WriteString("$MeshFormat\n2.2 0 8\n$EndMeshFormat\n")

	fmt.Fprintf(&b, "$Nodes\n%d\n", len(m.Points))
	for i, p := range m.Points {
		fmt.Fprintf(&b, "%d %g %g %g\n", i+1, p[0], p[1], 0.0)
	}
	b.WriteString("$EndNodes\n")

	fmt.Fprintf(&b, "$Elements\n%d\n", len(m.Triangles))
	for i, t := range m.Triangles {
		fmt.Fprintf(&b, "%d 2 2 0 1 %d %d %d\n", i+1, t[0]+1, t[1]+1, t[2]+1)
	}
	b.WriteString("$EndElements\n")

	return b.String()
}

// WriteFile saves the encoded mesh. It has the msh.WriteFunc shape so the
// formatting writer can intercept it.
func (m *Mesh) WriteFile(filename string) error {
	return os.WriteFile(filename, []byte(Encode(m)), 0644)
}
