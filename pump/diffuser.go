package pump

import (
	"fmt"
	"math"

	"github.com/soypat/bladegen"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Position orients a diffuser cap: PositionBottom is convex toward the pump
// inlet, PositionTop toward the outlet.
type Position string

const (
	PositionBottom Position = "bottom"
	PositionTop    Position = "top"
)

// Grid resolutions of the rotationally symmetric cap families.
const (
	hemisphereAzimuthDivs = 128
	hemispherePolarDivs   = 64
	paraboloidDivs        = 128
)

// Diffuser builds a cap mesh of the named shape family, "hemisphere" or
// "paraboloid". height is unused by the hemisphere family, whose extent is
// fixed by its base radius. Unknown shapes fail with ErrUnknownDiffuserShape.
func Diffuser(shape string, radiusBase, height, zBase float64, pos Position) (bladegen.Mesh, error) {
	switch shape {
	case "hemisphere":
		return Hemisphere(radiusBase, zBase, pos)
	case "paraboloid":
		return Paraboloid(radiusBase, height, zBase, pos)
	}
	return bladegen.Mesh{}, fmt.Errorf("%q: %w", shape, ErrUnknownDiffuserShape)
}

// Hemisphere returns a parametric half-sphere cap of the given radius.
// PositionBottom is convex downward with the apex at zBase and the rim at
// zBase+radius (inlet); PositionTop is convex upward with the rim at zBase
// and the apex at zBase+radius (outlet).
func Hemisphere(radius, zBase float64, pos Position) (bladegen.Mesh, error) {
	if pos != PositionBottom && pos != PositionTop {
		return bladegen.Mesh{}, fmt.Errorf("%q: %w", pos, ErrInvalidPosition)
	}
	const (
		nPhi   = hemisphereAzimuthDivs
		nTheta = hemispherePolarDivs
	)
	phi := floats.Span(make([]float64, nPhi), 0, 2*math.Pi)
	theta := floats.Span(make([]float64, nTheta), 0, math.Pi/2)

	var m bladegen.Mesh
	m.Vertices = make([]r3.Vec, 0, nPhi*nTheta)
	for _, th := range theta {
		sinTh, cosTh := math.Sincos(th)
		z := radius*cosTh + zBase // rim at zBase, apex above
		if pos == PositionBottom {
			z = -radius*cosTh + zBase + radius // apex at zBase, rim above
		}
		for _, ph := range phi {
			sinPh, cosPh := math.Sincos(ph)
			m.Vertices = append(m.Vertices, r3.Vec{
				X: radius * sinTh * cosPh,
				Y: radius * sinTh * sinPh,
				Z: z,
			})
		}
	}
	for i := 0; i < nTheta-1; i++ {
		for j := 0; j < nPhi-1; j++ {
			v0 := i*nPhi + j
			v1 := v0 + 1
			v2 := (i+1)*nPhi + j + 1
			v3 := (i+1)*nPhi + j
			m.Faces = append(m.Faces, [3]int{v0, v1, v2}, [3]int{v0, v2, v3})
		}
		// Close the azimuth seam at the last column.
		v0 := i*nPhi + (nPhi - 1)
		v1 := i * nPhi
		v2 := (i + 1) * nPhi
		v3 := (i+1)*nPhi + (nPhi - 1)
		m.Faces = append(m.Faces, [3]int{v0, v1, v2}, [3]int{v0, v2, v3})
	}
	return m, nil
}

// Paraboloid returns a paraboloid cap over a polar grid of the given base
// radius and height, based at zBase. PositionBottom is concave with the apex
// ring at zBase+height (inlet); PositionTop is convex with the apex at
// zBase+height (outlet). The azimuth seam stays open; the grid is degenerate
// there only at r=0.
func Paraboloid(radius, height, zBase float64, pos Position) (bladegen.Mesh, error) {
	if pos != PositionBottom && pos != PositionTop {
		return bladegen.Mesh{}, fmt.Errorf("%q: %w", pos, ErrInvalidPosition)
	}
	const n = paraboloidDivs
	phi := floats.Span(make([]float64, n), 0, 2*math.Pi)
	r := floats.Span(make([]float64, n), 0, radius)

	var m bladegen.Mesh
	m.Vertices = make([]r3.Vec, 0, n*n)
	for _, ph := range phi {
		sinPh, cosPh := math.Sincos(ph)
		for _, ri := range r {
			w := ri / radius
			z := zBase + height*w*w
			if pos == PositionTop {
				z = zBase + height*(1-w*w)
			}
			m.Vertices = append(m.Vertices, r3.Vec{X: ri * cosPh, Y: ri * sinPh, Z: z})
		}
	}
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			v0 := i*n + j
			v1 := v0 + 1
			v2 := (i+1)*n + j + 1
			v3 := (i+1)*n + j
			m.Faces = append(m.Faces, [3]int{v0, v1, v2}, [3]int{v0, v2, v3})
		}
	}
	return m, nil
}
