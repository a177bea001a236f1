// Package bladegen generates 3-D pump blade geometry from compact layered
// parameterizations. A blade is defined by spanwise layers, each carrying a
// camber envelope and thickness profile along the chord; layers are lofted
// hub to shroud into upper/lower/center surfaces which can be stitched into
// a closed solid for manufacturing export.
package bladegen

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInsufficientLayers is returned when fewer than 2 spanwise layers are
// supplied. A single cross-section cannot be lofted.
var ErrInsufficientLayers = errors.New("blade requires at least 2 spanwise layers")

// Mode selects the camber/thickness law family of a spanwise layer.
type Mode uint8

const (
	// ModeBasic uses CamberEnvelope and ThicknessProfile.
	ModeBasic Mode = iota
	// ModeExtended uses CamberEnvelopeExtended with the layer's Kappa.
	ModeExtended
	// ModeTapered uses TaperedThicknessProfile with the layer's Taper.
	ModeTapered
)

func (m Mode) String() string {
	switch m {
	case ModeBasic:
		return "basic"
	case ModeExtended:
		return "extended"
	case ModeTapered:
		return "tapered"
	}
	return "unknown"
}

const (
	defaultKappa = 1.5
	defaultTaper = 0.5
	// DefaultPointsPerChord is the chordwise sample count used when surface
	// generation is invoked implicitly.
	DefaultPointsPerChord = 300
)

// SpanLayer is one spanwise station's parameter set. Layers are immutable
// once a Blade is constructed.
type SpanLayer struct {
	Theta0 float64 // angular offset of the leading edge (radians)
	HMax   float64 // camber depth
	TMax   float64 // half thickness
	Alpha  float64 // camber peak position along the chord, in (0,1)
	A      float64 // leading thickness transition point
	B      float64 // trailing thickness transition point
	Beta   float64 // thickness ramp exponent
	Mode   Mode
	// Kappa is the peak sharpening exponent for ModeExtended.
	// Zero selects the default of 1.5.
	Kappa float64
	// Taper is the trailing edge attenuation for ModeTapered.
	// Zero selects the default of 0.5.
	Taper float64
	// Radius overrides the interpolated layer radius when nonzero.
	Radius float64
}

// BladeParams parameterizes a blade. Layers are ordered hub to shroud.
type BladeParams struct {
	Layers       []SpanLayer
	Theta        float64 // chordwise sweep angle (radians)
	H            float64 // axial extent of the chord
	Z0           float64 // axial base coordinate
	HubRadius    float64
	ShroudRadius float64
}

// Blade generates blade surfaces and solids from layered spanwise
// definitions. A Blade is owned by a single generation pipeline at a time;
// construct independent blades for parallel generation.
type Blade struct {
	layers       []SpanLayer
	theta        float64
	h            float64
	z0           float64
	hubRadius    float64
	shroudRadius float64

	// Caches populated by GenerateSurface. Grouped by layer, then by
	// chordwise index: len == len(layers)*pointsPerChord.
	upper  []r3.Vec
	lower  []r3.Vec
	center []r3.Vec
	quads  [][4]int
	nchord int
}

// NewBlade validates p and returns a Blade ready for surface generation.
func NewBlade(p BladeParams) (*Blade, error) {
	if len(p.Layers) < 2 {
		return nil, fmt.Errorf("got %d layers: %w", len(p.Layers), ErrInsufficientLayers)
	}
	layers := make([]SpanLayer, len(p.Layers))
	copy(layers, p.Layers)
	return &Blade{
		layers:       layers,
		theta:        p.Theta,
		h:            p.H,
		z0:           p.Z0,
		hubRadius:    p.HubRadius,
		shroudRadius: p.ShroudRadius,
	}, nil
}

// HubRadius returns the blade root radius.
func (b *Blade) HubRadius() float64 { return b.hubRadius }

// ShroudRadius returns the blade tip radius.
func (b *Blade) ShroudRadius() float64 { return b.shroudRadius }

// NumLayers returns the number of spanwise layers.
func (b *Blade) NumLayers() int { return len(b.layers) }

// layerRadius returns the explicit radius override of layer i, or the linear
// hub→shroud interpolation by normalized layer index.
func (b *Blade) layerRadius(i int) float64 {
	if r := b.layers[i].Radius; r != 0 {
		return r
	}
	n := len(b.layers)
	w := 0.0
	if n > 1 {
		w = float64(i) / float64(n-1)
	}
	return (1-w)*b.hubRadius + w*b.shroudRadius
}

// GenerateSurface samples every layer over a shared chordwise grid of
// pointsPerChord strictly increasing values spanning [0,1] and populates the
// blade's upper, lower and center point clouds along with the quadrilateral
// connectivity between adjacent layers. pointsPerChord <= 0 selects
// DefaultPointsPerChord. Generation is deterministic: identical inputs yield
// identical vertices.
func (b *Blade) GenerateSurface(pointsPerChord int) error {
	if pointsPerChord <= 0 {
		pointsPerChord = DefaultPointsPerChord
	}
	if pointsPerChord < 2 {
		return fmt.Errorf("pointsPerChord=%d: need at least 2 chordwise samples", pointsPerChord)
	}
	n := len(b.layers)
	N := pointsPerChord
	xi := floats.Span(make([]float64, N), 0, 1)

	b.upper = make([]r3.Vec, 0, n*N)
	b.lower = make([]r3.Vec, 0, n*N)
	b.center = make([]r3.Vec, 0, n*N)
	for i := range b.layers {
		up, lo, ce := b.evalLayer(i, xi)
		b.upper = append(b.upper, up...)
		b.lower = append(b.lower, lo...)
		b.center = append(b.center, ce...)
	}
	b.quads = loftQuads(n, N)
	b.nchord = N
	return nil
}

// evalLayer evaluates one spanwise layer over the chord grid xi and returns
// the upper, lower and center coordinates of the cross-section.
func (b *Blade) evalLayer(i int, xi []float64) (upper, lower, center []r3.Vec) {
	l := b.layers[i]

	var gamma []float64
	if l.Mode == ModeExtended {
		kappa := l.Kappa
		if kappa == 0 {
			kappa = defaultKappa
		}
		gamma = CamberEnvelopeExtended(xi, l.Alpha, kappa)
	} else {
		gamma = CamberEnvelope(xi, l.Alpha)
	}
	var tau []float64
	if l.Mode == ModeTapered {
		taper := l.Taper
		if taper == 0 {
			taper = defaultTaper
		}
		tau = TaperedThicknessProfile(xi, l.A, l.B, l.Beta, taper)
	} else {
		tau = ThicknessProfile(xi, l.A, l.B, l.Beta)
	}

	R := b.layerRadius(i)
	upper = make([]r3.Vec, len(xi))
	lower = make([]r3.Vec, len(xi))
	center = make([]r3.Vec, len(xi))
	for j, x := range xi {
		sin, cos := math.Sincos(l.Theta0 + x*b.theta)
		xc, yc := R*cos, R*sin
		zc := b.z0 + x*b.h - l.HMax*gamma[j]
		dz := l.TMax * tau[j]
		upper[j] = r3.Vec{X: xc, Y: yc, Z: zc + dz}
		lower[j] = r3.Vec{X: xc, Y: yc, Z: zc - dz}
		center[j] = r3.Vec{X: xc, Y: yc, Z: zc}
	}
	return upper, lower, center
}

// generated reports whether surface caches are populated.
func (b *Blade) generated() bool { return b.nchord != 0 }

// ensureSurface generates the surface with default sampling if the caches
// are empty.
func (b *Blade) ensureSurface() error {
	if b.generated() {
		return nil
	}
	return b.GenerateSurface(DefaultPointsPerChord)
}

// AxialSpan returns the axial extent covered by the generated blade over
// both upper and lower surfaces. The surface is generated with default
// sampling if it has not been yet.
func (b *Blade) AxialSpan() (zmin, zmax float64, err error) {
	if err := b.ensureSurface(); err != nil {
		return 0, 0, err
	}
	zmin = math.Inf(1)
	zmax = math.Inf(-1)
	for _, v := range b.upper {
		zmin = math.Min(zmin, v.Z)
		zmax = math.Max(zmax, v.Z)
	}
	for _, v := range b.lower {
		zmin = math.Min(zmin, v.Z)
		zmax = math.Max(zmax, v.Z)
	}
	return zmin, zmax, nil
}

// SectionCurves evaluates the cross-section of layer i over n chordwise
// samples and returns the chord grid along with the upper, lower and camber
// line axial coordinates. It serves section validation plots and does not
// touch the blade's surface caches.
func (b *Blade) SectionCurves(i, n int) (xi, zUpper, zLower, zCenter []float64, err error) {
	if i < 0 || i >= len(b.layers) {
		return nil, nil, nil, nil, fmt.Errorf("layer index %d out of range [0,%d)", i, len(b.layers))
	}
	if n < 2 {
		return nil, nil, nil, nil, fmt.Errorf("n=%d: need at least 2 chordwise samples", n)
	}
	xi = floats.Span(make([]float64, n), 0, 1)
	up, lo, ce := b.evalLayer(i, xi)
	zUpper = make([]float64, n)
	zLower = make([]float64, n)
	zCenter = make([]float64, n)
	for j := range xi {
		zUpper[j] = up[j].Z
		zLower[j] = lo[j].Z
		zCenter[j] = ce[j].Z
	}
	return xi, zUpper, zLower, zCenter, nil
}
