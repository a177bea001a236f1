package pump

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/bladegen"
	"gonum.org/v1/gonum/spatial/r3"
)

// defaultSections is the circumferential resolution of cylinder bodies.
const defaultSections = 128

// Cylinder returns a closed parametric cylinder of the given radius and
// height with its base circle at zBase. sections < 3 selects the default
// resolution of 128.
func Cylinder(radius, height, zBase float64, sections int) bladegen.Mesh {
	if sections < 3 {
		sections = defaultSections
	}
	z0, z1 := zBase, zBase+height
	var m bladegen.Mesh
	m.Vertices = make([]r3.Vec, 0, 2*sections+2)
	for i := 0; i < sections; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(sections))
		m.Vertices = append(m.Vertices, r3.Vec{X: radius * cos, Y: radius * sin, Z: z0})
	}
	for i := 0; i < sections; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(sections))
		m.Vertices = append(m.Vertices, r3.Vec{X: radius * cos, Y: radius * sin, Z: z1})
	}
	centerBottom := len(m.Vertices)
	centerTop := centerBottom + 1
	m.Vertices = append(m.Vertices, r3.Vec{Z: z0}, r3.Vec{Z: z1})

	for i := 0; i < sections; i++ {
		j := (i + 1) % sections
		bi, bj := i, j
		ti, tj := sections+i, sections+j
		m.Faces = append(m.Faces,
			// Side wall, outward winding.
			[3]int{bi, bj, tj},
			[3]int{bi, tj, ti},
			// End cap fans, normals facing -Z and +Z.
			[3]int{centerBottom, bj, bi},
			[3]int{centerTop, ti, tj},
		)
	}
	return m
}

// BladeRing places nBlades copies of the blade evenly around a cylindrical
// hub of the given radius and height based at zBase, merged with the hub
// body. The blade is z-shifted once so its axial span is centered on the
// hub, then each copy is rotated about Z; translating before rotating keeps
// every copy at the same axial position while preserving the blade's radial
// footprint.
//
// Fails with ErrSpanExceedsHeight when the blade does not fit the hub
// height. Non-watertight solids are tolerated.
func BladeRing(blade *bladegen.Blade, nBlades int, radius, height, zBase float64, solid bool) (bladegen.Mesh, error) {
	if nBlades < 1 {
		return bladegen.Mesh{}, fmt.Errorf("nBlades=%d: need at least one blade", nBlades)
	}
	var bladeMesh bladegen.Mesh
	var err error
	if solid {
		bladeMesh, err = blade.Solidify(bladegen.SurfaceBoth)
		if err != nil && !errors.Is(err, bladegen.ErrNotWatertight) {
			return bladegen.Mesh{}, err
		}
	} else {
		bladeMesh, err = blade.SurfaceMesh(bladegen.SurfaceBoth)
		if err != nil {
			return bladegen.Mesh{}, err
		}
	}
	zmin, zmax, err := blade.AxialSpan()
	if err != nil {
		return bladegen.Mesh{}, err
	}
	span := zmax - zmin
	if height < span {
		return bladegen.Mesh{}, fmt.Errorf("cylinder height %g, blade span %g: %w",
			height, span, ErrSpanExceedsHeight)
	}
	zShift := r3.Vec{Z: zBase + height/2 - (zmin + span/2)}

	meshes := make([]bladegen.Mesh, 0, nBlades+1)
	meshes = append(meshes, Cylinder(radius, height, zBase, 0))
	shifted := bladeMesh.Translate(zShift)
	for i := 0; i < nBlades; i++ {
		angle := 2 * math.Pi * float64(i) / float64(nBlades)
		meshes = append(meshes, shifted.RotateZ(angle))
	}
	return bladegen.Merge(meshes...), nil
}
