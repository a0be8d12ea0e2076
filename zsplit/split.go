package zsplit

import "github.com/unixpickle/essentials"

// A Side classifies a triangle relative to a horizontal cutting plane.
type Side int

const (
	// SideAbove means every vertex is at or above the plane. A triangle
	// lying entirely in the plane counts as above.
	SideAbove Side = iota

	// SideBelow means every vertex is at or below the plane, and at
	// least one is strictly below.
	SideBelow

	// SideCrossing means the triangle has vertices strictly on both
	// sides of the plane.
	SideCrossing
)

// ClassifyTriangle decides which side of the plane z=height the triangle
// belongs to. Comparisons are exact; vertices near the plane are not
// snapped onto it.
func ClassifyTriangle(t *Triangle, height float64) Side {
	above := true
	below := true
	for _, v := range t.Vertices {
		if v.Z < height {
			above = false
		}
		if v.Z > height {
			below = false
		}
	}
	if above {
		return SideAbove
	} else if below {
		return SideBelow
	}
	return SideCrossing
}

// Partition splits m into the triangles above and below the plane
// z=height. Triangles crossing the plane are omitted from both results,
// so the outputs may together hold fewer triangles than m and the cut
// surface is left open rather than re-triangulated.
//
// Relative triangle order is preserved within each result, both results
// get fresh storage, and m is not modified. An empty mesh partitions
// into two empty meshes.
func Partition(m *Mesh, height float64) (upper, lower *Mesh) {
	sides := make([]Side, len(m.Triangles))
	essentials.ConcurrentMap(0, len(m.Triangles), func(i int) {
		sides[i] = ClassifyTriangle(&m.Triangles[i], height)
	})

	// Compaction is sequential to keep the input order.
	upper = NewMesh()
	lower = NewMesh()
	for i, side := range sides {
		switch side {
		case SideAbove:
			upper.Add(&m.Triangles[i])
		case SideBelow:
			lower.Add(&m.Triangles[i])
		}
	}
	return
}
