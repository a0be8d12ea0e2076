package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
	"github.com/unixpickle/zsplit/zsplit"
)

func main() {
	var height float64
	var gap float64
	var imageSize int
	var gridSize int
	flag.Float64Var(&height, "height", math.NaN(),
		"Z height of the cut (default: middle of the model)")
	flag.Float64Var(&gap, "gap", 0.2,
		"separation between the halves, as a fraction of the model height")
	flag.IntVar(&imageSize, "image-size", 400, "size of each image in the grid")
	flag.IntVar(&gridSize, "grid-size", 2, "grid size (used for rows and columns)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: render_split [flags] <input.stl> <output.png>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Loading mesh...")
	mesh, err := zsplit.Load(inputPath)
	essentials.Must(err)
	min, max, err := zsplit.Bounds(mesh)
	essentials.Must(err)
	if math.IsNaN(height) {
		height = (min.Z + max.Z) / 2
	}

	log.Printf("Splitting at Z = %.2f...", height)
	upper, lower := zsplit.Partition(mesh, height)
	if upper.NumTriangles() == 0 && lower.NumTriangles() == 0 {
		essentials.Die("nothing left to render: every triangle crosses the plane")
	}

	log.Println("Rendering...")
	offset := model3d.Z((max.Z - min.Z) * gap / 2)
	combined := upper.Model3D().MapCoords(offset.Add)
	combined.AddMesh(lower.Model3D().MapCoords(offset.Scale(-1).Add))
	object := render3d.Objectify(model3d.MeshToCollider(combined), nil)
	essentials.Must(
		render3d.SaveRandomGrid(outputPath, object, gridSize, gridSize, imageSize, nil),
	)
}
