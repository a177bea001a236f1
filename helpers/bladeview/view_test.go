package bladeview_test

import (
	"image/png"
	"os"
	"testing"

	"github.com/soypat/bladegen"
	"github.com/soypat/bladegen/helpers/bladeview"
	"github.com/soypat/bladegen/render"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSTLToPNG(t *testing.T) {
	const (
		stlName = "view_test.stl"
		pngName = "view_test.png"
	)
	defer os.Remove(stlName)
	defer os.Remove(pngName)
	tetra := bladegen.Mesh{
		Vertices: []r3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}},
		Faces:    [][3]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}},
	}
	if err := render.CreateSTL(stlName, tetra); err != nil {
		t.Fatal(err)
	}
	if err := bladeview.STLToPNG(stlName, pngName, bladeview.DefaultView()); err != nil {
		t.Fatal(err)
	}
	file, err := os.Open(pngName)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 1920 || b.Dy() != 1080 {
		t.Fatalf("got %dx%d image, want 1920x1080", b.Dx(), b.Dy())
	}
}

func TestSTLToPNGMissingFile(t *testing.T) {
	err := bladeview.STLToPNG("no_such_file.stl", "out.png", bladeview.DefaultView())
	if err == nil {
		os.Remove("out.png")
		t.Fatal("expected error for missing STL file")
	}
}
