package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/zsplit/zsplit"
	"golang.org/x/exp/slices"
)

func main() {
	var height float64
	var inputDir string
	var outputDir string
	var ascii bool
	flag.Float64Var(&height, "height", math.NaN(),
		"Z height of the cut (default: middle of the model)")
	flag.StringVar(&inputDir, "input-dir", filepath.Join("models", "input"),
		"directory scanned for STL files when no input is given")
	flag.StringVar(&outputDir, "output-dir", filepath.Join("models", "output"),
		"directory for the output halves")
	flag.BoolVar(&ascii, "ascii", false, "write ASCII STL instead of binary")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: split_stl [flags] [input.stl]")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)
	if inputPath == "" {
		inputPath = promptForFile(inputDir)
	}

	log.Printf("Loading %s...", filepath.Base(inputPath))
	mesh, err := zsplit.Load(inputPath)
	essentials.Must(err)

	min, max, err := zsplit.Bounds(mesh)
	essentials.Must(err)
	log.Println("Model dimensions:")
	log.Printf("X: %.2f to %.2f", min.X, max.X)
	log.Printf("Y: %.2f to %.2f", min.Y, max.Y)
	log.Printf("Z: %.2f to %.2f", min.Z, max.Z)

	if math.IsNaN(height) {
		height = (min.Z + max.Z) / 2
	}
	log.Printf("Splitting at Z = %.2f", height)

	upper, lower := zsplit.Partition(mesh, height)
	dropped := mesh.NumTriangles() - upper.NumTriangles() - lower.NumTriangles()
	log.Printf("Upper: %d triangles, lower: %d, dropped at the cut: %d",
		upper.NumTriangles(), lower.NumTriangles(), dropped)

	essentials.Must(os.MkdirAll(outputDir, 0755))
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	upperPath := filepath.Join(outputDir, base+"_upper.stl")
	lowerPath := filepath.Join(outputDir, base+"_lower.stl")
	essentials.Must(saveMesh(upperPath, base+"_upper", upper, ascii))
	essentials.Must(saveMesh(lowerPath, base+"_lower", lower, ascii))

	log.Println("Split complete!")
	log.Printf("Upper part saved as: %s", filepath.Base(upperPath))
	log.Printf("Lower part saved as: %s", filepath.Base(lowerPath))
}

func saveMesh(path, name string, m *zsplit.Mesh, ascii bool) error {
	if !ascii {
		return zsplit.Save(path, m)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = zsplit.WriteSTLASCII(f, name, m)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

func promptForFile(dir string) string {
	entries, err := os.ReadDir(dir)
	essentials.Must(err)
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.ToLower(filepath.Ext(entry.Name())) == ".stl" {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		essentials.Die("no STL files found in " + dir)
	}
	slices.Sort(names)

	fmt.Println("Available STL files:")
	for i, name := range names {
		fmt.Printf("%d. %s\n", i+1, name)
	}
	fmt.Print("Select file number to process: ")
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		essentials.Die("no selection given")
	}
	idx, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || idx < 1 || idx > len(names) {
		essentials.Die("invalid file number")
	}
	return filepath.Join(dir, names[idx-1])
}
