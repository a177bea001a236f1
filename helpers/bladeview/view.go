// Package bladeview renders STL files to shaded PNG snapshots for quick
// visual inspection of generated geometry.
package bladeview

import (
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// ViewConfig positions the camera for an STL snapshot.
type ViewConfig struct {
	// what position (point) to look at
	Lookat r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eyepos r3.Vec
	Far    float64
	Near   float64
}

// DefaultView looks down the X axis toward the origin with Z up.
func DefaultView() ViewConfig {
	return ViewConfig{
		Up:     r3.Vec{Z: 1},
		Eyepos: r3.Vec{X: 3, Y: 3, Z: 3},
		Near:   1,
		Far:    10,
	}
}

// STLToPNG renders the STL file at stlName into a shaded PNG at outputname.
// The model is fit to a bi-unit cube before rendering so view distances are
// independent of model scale.
func STLToPNG(stlName, outputname string, view ViewConfig) error {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		return err
	}
	const (
		width, height = 1920, 1080 // output width and height in pixels
		scale         = 1          // optional supersampling
		fovy          = 30         // vertical field of view in degrees
	)

	var (
		far    = view.Far
		near   = view.Near
		eye    = fauxgl.V(view.Eyepos.X, view.Eyepos.Y, view.Eyepos.Z) // camera position
		center = fauxgl.V(view.Lookat.X, view.Lookat.Y, view.Lookat.Z) // view center position
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)             // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()                  // light direction
		color  = fauxgl.HexColor("#468966")                            // object color
	)

	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	// create a rendering context
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	// create transformation matrix and light direction
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	// use builtin phong shader
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	// render
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(width, height, image, resize.Bilinear)
	return fauxgl.SavePNG(outputname, image)
}
