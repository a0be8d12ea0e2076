package zsplit

import (
	"errors"
	"math"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestBoundsBruteForce(t *testing.T) {
	mesh := randomMesh(50)
	min, max, err := Bounds(mesh)
	if err != nil {
		t.Fatal(err)
	}
	expMin := model3d.XYZ(math.Inf(1), math.Inf(1), math.Inf(1))
	expMax := model3d.XYZ(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, tri := range mesh.Triangles {
		for _, v := range tri.Vertices {
			expMin.X = math.Min(expMin.X, v.X)
			expMin.Y = math.Min(expMin.Y, v.Y)
			expMin.Z = math.Min(expMin.Z, v.Z)
			expMax.X = math.Max(expMax.X, v.X)
			expMax.Y = math.Max(expMax.Y, v.Y)
			expMax.Z = math.Max(expMax.Z, v.Z)
		}
	}
	if min != expMin || max != expMax {
		t.Fatalf("expected bounds %v %v but got %v %v", expMin, expMax, min, max)
	}
}

func TestBoundsSingleTriangle(t *testing.T) {
	mesh := NewMesh()
	mesh.Add(&Triangle{Vertices: [3]model3d.Coord3D{
		model3d.XYZ(-1, 2, 3),
		model3d.XYZ(4, -5, 6),
		model3d.XYZ(0, 0, -7),
	}})
	min, max, err := Bounds(mesh)
	if err != nil {
		t.Fatal(err)
	}
	if min != model3d.XYZ(-1, -5, -7) {
		t.Errorf("unexpected min: %v", min)
	}
	if max != model3d.XYZ(4, 2, 6) {
		t.Errorf("unexpected max: %v", max)
	}
}

func TestBoundsEmpty(t *testing.T) {
	_, _, err := Bounds(NewMesh())
	if !errors.Is(err, ErrEmptyMesh) {
		t.Fatalf("expected ErrEmptyMesh but got %v", err)
	}
}

func randomMesh(n int) *Mesh {
	mesh := NewMesh()
	for i := 0; i < n; i++ {
		var tri Triangle
		tri.Normal = model3d.NewCoord3DRandNorm()
		tri.Attr = uint16(i)
		for j := range tri.Vertices {
			tri.Vertices[j] = model3d.NewCoord3DRandNorm()
		}
		mesh.Add(&tri)
	}
	return mesh
}
