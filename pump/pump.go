// Package pump assembles parametric blade solids, diffuser caps and hub
// cylinders into complete pump meshes for export.
package pump

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/bladegen"
)

// Validation failures surfaced by assembly. All are detected before the
// offending geometry is built; a failed assembly returns no partial pump.
var (
	// ErrSpanExceedsHeight means a blade's axial extent does not fit the
	// cylinder height it must be centered within (rotor or vane).
	ErrSpanExceedsHeight = errors.New("blade axial span exceeds cylinder height")
	// ErrHubRadiusMismatch means the vane blade's hub radius differs from
	// the rotor's beyond tolerance.
	ErrHubRadiusMismatch = errors.New("vane hub radius does not match rotor hub radius")
	// ErrShaftRadiusTooLarge means the outlet shaft cannot hide behind the hub.
	ErrShaftRadiusTooLarge = errors.New("outlet shaft radius exceeds hub radius")
	// ErrUnknownDiffuserShape reports an unrecognized diffuser shape string.
	ErrUnknownDiffuserShape = errors.New("unknown diffuser shape")
	// ErrInvalidPosition reports an unrecognized diffuser position.
	ErrInvalidPosition = errors.New(`diffuser position must be "bottom" or "top"`)
)

// hubRadiusTol is the absolute tolerance for rotor/vane hub radius matching.
const hubRadiusTol = 1e-6

// Config parameterizes pump assembly. Empty diffuser shapes default to
// "hemisphere". The zero value of SurfaceOnly selects solid blades.
type Config struct {
	RotorHeight       float64
	VaneHeight        float64
	NumRotorBlades    int
	NumVaneBlades     int
	OutletShaftRadius float64
	OutletShaftLength float64
	InletShape        string // "hemisphere" or "paraboloid"
	OutletShape       string // "hemisphere" or "paraboloid"
	SurfaceOnly       bool   // assemble open blade surfaces instead of stitched solids
}

// Parts maps part names (inlet, rotor, vane, outlet) to their meshes.
// The "assembly" key holds the union of all parts.
type Parts map[string]bladegen.Mesh

// Assemble composes the full pump mesh: inlet diffuser sized to the rotor
// hub, rotor blade ring, optional vane ring stacked after the rotor, and
// outlet diffuser with an axial shaft. vane may be nil; its absence is a
// valid configuration, not an error.
//
// All spanwise/radius compatibility checks run before any mesh is built.
// Non-watertight blade solids are tolerated as quality warnings.
func Assemble(rotor, vane *bladegen.Blade, cfg Config) (Parts, error) {
	if rotor == nil {
		return nil, errors.New("rotor blade is required")
	}
	if cfg.InletShape == "" {
		cfg.InletShape = "hemisphere"
	}
	if cfg.OutletShape == "" {
		cfg.OutletShape = "hemisphere"
	}

	hub := rotor.HubRadius()
	if cfg.OutletShaftRadius > hub {
		return nil, fmt.Errorf("shaft radius %g, hub radius %g: %w",
			cfg.OutletShaftRadius, hub, ErrShaftRadiusTooLarge)
	}
	zmin, zmax, err := rotor.AxialSpan()
	if err != nil {
		return nil, err
	}
	if span := zmax - zmin; cfg.RotorHeight < span {
		return nil, fmt.Errorf("rotor height %g, blade span %g: %w",
			cfg.RotorHeight, span, ErrSpanExceedsHeight)
	}
	if vane != nil {
		if math.Abs(vane.HubRadius()-hub) > hubRadiusTol {
			return nil, fmt.Errorf("vane hub radius %g, rotor hub radius %g: %w",
				vane.HubRadius(), hub, ErrHubRadiusMismatch)
		}
		vzmin, vzmax, err := vane.AxialSpan()
		if err != nil {
			return nil, err
		}
		if vspan := vzmax - vzmin; cfg.VaneHeight < vspan {
			return nil, fmt.Errorf("vane height %g, blade span %g: %w",
				cfg.VaneHeight, vspan, ErrSpanExceedsHeight)
		}
	}

	inlet, err := Diffuser(cfg.InletShape, hub, hub, -hub, PositionBottom)
	if err != nil {
		return nil, err
	}
	rotorMesh, err := BladeRing(rotor, cfg.NumRotorBlades, hub, cfg.RotorHeight, 0, !cfg.SurfaceOnly)
	if err != nil {
		return nil, err
	}
	currentZ := cfg.RotorHeight

	var vaneMesh bladegen.Mesh
	if vane != nil {
		vaneMesh, err = BladeRing(vane, cfg.NumVaneBlades, hub, cfg.VaneHeight, currentZ, !cfg.SurfaceOnly)
		if err != nil {
			return nil, err
		}
		currentZ += cfg.VaneHeight
	}

	outletDiffuser, err := Diffuser(cfg.OutletShape, hub, hub, currentZ, PositionTop)
	if err != nil {
		return nil, err
	}
	shaft := Cylinder(cfg.OutletShaftRadius, cfg.OutletShaftLength, currentZ, 0)
	outlet := bladegen.Merge(outletDiffuser, shaft)

	parts := Parts{"inlet": inlet, "rotor": rotorMesh, "outlet": outlet}
	all := []bladegen.Mesh{inlet, rotorMesh}
	if vane != nil {
		parts["vane"] = vaneMesh
		all = append(all, vaneMesh)
	}
	all = append(all, outlet)
	parts["assembly"] = bladegen.Merge(all...)
	return parts, nil
}
