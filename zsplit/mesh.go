package zsplit

import "github.com/unixpickle/model3d/model3d"

// A Triangle is a single STL facet: three vertices in file order, plus
// the normal vector and attribute word carried by the format. The normal
// and attribute are never inspected by this package, only preserved
// across a round trip.
type Triangle struct {
	Normal   model3d.Coord3D
	Vertices [3]model3d.Coord3D
	Attr     uint16
}

// A Mesh is an ordered triangle soup. The triangle order matches the
// source file and is preserved by every operation in this package.
type Mesh struct {
	Triangles []Triangle
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// NumTriangles returns the number of facets in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.Triangles)
}

// Add appends a copy of t to the mesh.
func (m *Mesh) Add(t *Triangle) {
	m.Triangles = append(m.Triangles, *t)
}

// Model3D converts the mesh into a model3d.Mesh, dropping the stored
// normals and attributes (model3d derives normals from winding).
func (m *Mesh) Model3D() *model3d.Mesh {
	tris := make([]*model3d.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		tris[i] = &model3d.Triangle{t.Vertices[0], t.Vertices[1], t.Vertices[2]}
	}
	return model3d.NewMeshTriangles(tris)
}
