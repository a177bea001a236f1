// Package profileplot plots blade cross-sections for parameter validation.
package profileplot

import (
	"fmt"
	"image/color"

	"github.com/soypat/bladegen"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// sectionSamples is the chordwise resolution of plotted curves.
const sectionSamples = 200

// Section saves a PNG plot of one spanwise layer's cross-section: camber
// line, upper surface and lower surface against the relative chord
// position.
func Section(b *bladegen.Blade, layer int, filename string) error {
	xi, zUpper, zLower, zCenter, err := b.SectionCurves(layer, sectionSamples)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Blade cross-section (layer %d)", layer)
	p.X.Label.Text = "Relative chord position ξ"
	p.Y.Label.Text = "z (relative)"
	p.Add(plotter.NewGrid())

	for _, curve := range []struct {
		z     []float64
		label string
		color color.RGBA
	}{
		{zCenter, "camber line", color.RGBA{A: 255}},
		{zUpper, "upper surface", color.RGBA{R: 255, A: 255}},
		{zLower, "lower surface", color.RGBA{B: 255, A: 255}},
	} {
		xys := make(plotter.XYs, len(xi))
		for i := range xi {
			xys[i].X = xi[i]
			xys[i].Y = curve.z[i]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = curve.color
		p.Add(line)
		p.Legend.Add(curve.label, line)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
