package zsplit

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// An stlFacet matches the 50-byte binary STL facet record.
type stlFacet struct {
	Normal   [3]float32
	Vertices [3][3]float32
	Attr     uint16
}

// ReadSTL decodes a binary or ASCII STL stream into a mesh. Normals and
// attribute words are kept as stored, without validation.
func ReadSTL(r io.Reader) (*Mesh, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(512)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "read stl")
	}
	var mesh *Mesh
	if isASCIISTL(head) {
		mesh, err = readASCIISTL(br)
	} else {
		mesh, err = readBinarySTL(br)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read stl")
	}
	return mesh, nil
}

// WriteSTL encodes m as binary STL. An empty mesh yields a valid
// zero-facet file.
func WriteSTL(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	var header [80]byte
	copy(header[:], "binary STL")
	if _, err := bw.Write(header[:]); err != nil {
		return errors.Wrap(err, "write stl")
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return errors.Wrap(err, "write stl")
	}
	for i := range m.Triangles {
		facet := triangleFacet(&m.Triangles[i])
		if err := binary.Write(bw, binary.LittleEndian, &facet); err != nil {
			return errors.Wrapf(err, "write stl: facet %d", i)
		}
	}
	return errors.Wrap(bw.Flush(), "write stl")
}

// WriteSTLASCII encodes m as ASCII STL under the given solid name.
func WriteSTLASCII(w io.Writer, name string, m *Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for i := range m.Triangles {
		t := &m.Triangles[i]
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", t.Normal.X, t.Normal.Y, t.Normal.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range t.Vertices {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return errors.Wrap(bw.Flush(), "write stl")
}

// Load reads an STL mesh from the file at path. A missing file surfaces
// the underlying open error, inspectable with os.ErrNotExist.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load mesh")
	}
	defer f.Close()
	mesh, err := ReadSTL(f)
	if err != nil {
		return nil, errors.Wrap(err, "load mesh")
	}
	return mesh, nil
}

// Save writes m to the file at path as binary STL.
func Save(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save mesh")
	}
	err = WriteSTL(f, m)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return errors.Wrap(err, "save mesh")
}

// isASCIISTL sniffs the start of a file. Binary files are allowed to
// begin with "solid" too, so an actual facet (or an immediate endsolid
// for an empty model) is required as well.
func isASCIISTL(head []byte) bool {
	trimmed := bytes.TrimLeft(head, " \t\r\n")
	if !bytes.HasPrefix(trimmed, []byte("solid")) {
		return false
	}
	return bytes.Contains(trimmed, []byte("facet")) ||
		bytes.Contains(trimmed, []byte("endsolid"))
}

func readBinarySTL(r io.Reader) (*Mesh, error) {
	var header [80]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	// Cap the preallocation so a corrupt count cannot ask for gigabytes.
	capacity := count
	if capacity > 1<<20 {
		capacity = 1 << 20
	}
	mesh := &Mesh{Triangles: make([]Triangle, 0, capacity)}
	for i := uint32(0); i < count; i++ {
		var facet stlFacet
		if err := binary.Read(r, binary.LittleEndian, &facet); err != nil {
			return nil, errors.Wrapf(err, "facet %d", i)
		}
		mesh.Add(facetTriangle(&facet))
	}
	return mesh, nil
}

func readASCIISTL(r io.Reader) (*Mesh, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1<<20)
	mesh := NewMesh()
	var tri Triangle
	numVerts := 0
	inFacet := false
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "solid", "endsolid", "outer", "endloop":
		case "facet":
			if inFacet || len(fields) != 5 || fields[1] != "normal" {
				return nil, errors.Errorf("line %d: malformed facet", line)
			}
			normal, err := parseVertex(fields[2:])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			tri = Triangle{Normal: normal}
			numVerts = 0
			inFacet = true
		case "vertex":
			if !inFacet || numVerts == 3 || len(fields) != 4 {
				return nil, errors.Errorf("line %d: unexpected vertex", line)
			}
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			tri.Vertices[numVerts] = v
			numVerts++
		case "endfacet":
			if !inFacet || numVerts != 3 {
				return nil, errors.Errorf("line %d: facet with %d vertices", line, numVerts)
			}
			mesh.Add(&tri)
			inFacet = false
		default:
			return nil, errors.Errorf("line %d: unexpected token %q", line, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if inFacet {
		return nil, errors.New("unterminated facet")
	}
	return mesh, nil
}

func parseVertex(fields []string) (model3d.Coord3D, error) {
	var values [3]float64
	for i, field := range fields {
		x, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return model3d.Coord3D{}, errors.Errorf("bad coordinate %q", field)
		}
		values[i] = x
	}
	return model3d.XYZ(values[0], values[1], values[2]), nil
}

func facetTriangle(f *stlFacet) *Triangle {
	t := &Triangle{
		Normal: coordFrom32(f.Normal),
		Attr:   f.Attr,
	}
	for i, v := range f.Vertices {
		t.Vertices[i] = coordFrom32(v)
	}
	return t
}

func triangleFacet(t *Triangle) stlFacet {
	f := stlFacet{
		Normal: coordTo32(t.Normal),
		Attr:   t.Attr,
	}
	for i, v := range t.Vertices {
		f.Vertices[i] = coordTo32(v)
	}
	return f
}

func coordFrom32(v [3]float32) model3d.Coord3D {
	return model3d.XYZ(float64(v[0]), float64(v[1]), float64(v[2]))
}

func coordTo32(c model3d.Coord3D) [3]float32 {
	return [3]float32{float32(c.X), float32(c.Y), float32(c.Z)}
}
