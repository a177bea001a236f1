package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/soypat/bladegen"
)

// CreateVTK writes the mesh to path in legacy ASCII VTK polydata format.
func CreateVTK(path string, m bladegen.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteVTK(file, m)
}

// WriteVTK writes the mesh to a writer as a legacy VTK (version 3.0)
// POLYDATA dataset with triangular polygons.
func WriteVTK(w io.Writer, m bladegen.Mesh) error {
	if len(m.Faces) == 0 {
		return errors.New("empty mesh")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# vtk DataFile Version 3.0")
	fmt.Fprintln(bw, "bladegen mesh")
	fmt.Fprintln(bw, "ASCII")
	fmt.Fprintln(bw, "DATASET POLYDATA")
	fmt.Fprintf(bw, "POINTS %d float\n", len(m.Vertices))
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "%g %g %g\n", v.X, v.Y, v.Z)
	}
	// Each polygon row is its vertex count followed by the indices.
	fmt.Fprintf(bw, "POLYGONS %d %d\n", len(m.Faces), 4*len(m.Faces))
	for _, f := range m.Faces {
		fmt.Fprintf(bw, "3 %d %d %d\n", f[0], f[1], f[2])
	}
	return bw.Flush()
}
