package bladegen

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// SurfaceMode selects which of the blade's generated surfaces a mesh is
// built from.
type SurfaceMode uint8

const (
	// SurfaceBoth selects the upper and lower surfaces together.
	SurfaceBoth SurfaceMode = iota
	// SurfaceUpper selects the upper (suction side) surface only.
	SurfaceUpper
	// SurfaceLower selects the lower (pressure side) surface only.
	SurfaceLower
	// SurfaceCenter selects the camber (mean line) surface only.
	SurfaceCenter
)

func (m SurfaceMode) String() string {
	switch m {
	case SurfaceBoth:
		return "both"
	case SurfaceUpper:
		return "upper"
	case SurfaceLower:
		return "lower"
	case SurfaceCenter:
		return "center"
	}
	return "unknown"
}

// loftQuads builds quadrilateral connectivity between each adjacent layer
// pair of a layers×nchord point grid. Chordwise ends stay open; solids close
// them with side walls.
func loftQuads(layers, nchord int) [][4]int {
	quads := make([][4]int, 0, (layers-1)*(nchord-1))
	for i := 0; i < layers-1; i++ {
		base0 := i * nchord
		base1 := (i + 1) * nchord
		for j := 0; j < nchord-1; j++ {
			quads = append(quads, [4]int{base0 + j, base0 + j + 1, base1 + j + 1, base1 + j})
		}
	}
	return quads
}

// SurfaceMesh triangulates the selected generated surfaces into an open
// Mesh. SurfaceBoth concatenates the upper and lower surfaces without
// joining them; use Solidify to obtain a closed solid. The blade surface is
// generated with default sampling if it has not been yet.
func (b *Blade) SurfaceMesh(mode SurfaceMode) (Mesh, error) {
	if err := b.ensureSurface(); err != nil {
		return Mesh{}, err
	}
	var clouds [][]r3.Vec
	switch mode {
	case SurfaceBoth:
		clouds = [][]r3.Vec{b.upper, b.lower}
	case SurfaceUpper:
		clouds = [][]r3.Vec{b.upper}
	case SurfaceLower:
		clouds = [][]r3.Vec{b.lower}
	case SurfaceCenter:
		clouds = [][]r3.Vec{b.center}
	default:
		return Mesh{}, fmt.Errorf("unknown surface mode %d", mode)
	}
	var m Mesh
	for _, cloud := range clouds {
		offset := len(m.Vertices)
		m.Vertices = append(m.Vertices, cloud...)
		for _, q := range b.quads {
			m.Faces = append(m.Faces,
				[3]int{offset + q[0], offset + q[1], offset + q[2]},
				[3]int{offset + q[0], offset + q[2], offset + q[3]},
			)
		}
	}
	return m, nil
}
