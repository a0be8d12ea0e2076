package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/zsplit/zsplit"
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: stl_info <input.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	mesh, err := zsplit.Load(args[0])
	essentials.Must(err)

	fmt.Println("Triangles:", mesh.NumTriangles())

	min, max, err := zsplit.Bounds(mesh)
	essentials.Must(err)
	size := max.Sub(min)
	fmt.Printf("Bounds: min=(%.4f, %.4f, %.4f) max=(%.4f, %.4f, %.4f)\n",
		min.X, min.Y, min.Z, max.X, max.Y, max.Z)
	fmt.Printf("Size: %.4f x %.4f x %.4f\n", size.X, size.Y, size.Z)

	area := 0.0
	for _, tri := range mesh.Model3D().TriangleSlice() {
		area += tri.Area()
	}
	fmt.Printf("Surface area: %.4f\n", area)
}
