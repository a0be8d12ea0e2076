package zsplit

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// ErrEmptyMesh is returned by operations that need at least one triangle.
var ErrEmptyMesh = errors.New("mesh contains no triangles")

// Bounds returns the componentwise minimum and maximum over every vertex
// of every triangle in m. Every vertex is scanned, since a triangle soup
// carries no ordering that could be exploited.
//
// Bounds fails with ErrEmptyMesh for an empty mesh rather than returning
// degenerate zero bounds.
func Bounds(m *Mesh) (min, max model3d.Coord3D, err error) {
	if len(m.Triangles) == 0 {
		err = ErrEmptyMesh
		return
	}
	min = m.Triangles[0].Vertices[0]
	max = min
	for _, t := range m.Triangles {
		for _, v := range t.Vertices {
			min = min.Min(v)
			max = max.Max(v)
		}
	}
	return
}
