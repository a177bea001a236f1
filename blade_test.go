package bladegen

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/bladegen/internal/d3"
)

func testLayers() []SpanLayer {
	return []SpanLayer{
		{Theta0: 0, HMax: 0.02, TMax: 0.01, Alpha: 0.4, A: 0.2, B: 0.8, Beta: 0.3},
		{Theta0: 0.01, HMax: 0.022, TMax: 0.011, Alpha: 0.42, A: 0.2, B: 0.8, Beta: 0.3, Mode: ModeExtended},
		{Theta0: 0.02, HMax: 0.024, TMax: 0.012, Alpha: 0.44, A: 0.2, B: 0.8, Beta: 0.3, Mode: ModeTapered},
	}
}

func testBlade(t testing.TB) *Blade {
	t.Helper()
	b, err := NewBlade(BladeParams{
		Layers:       testLayers(),
		Theta:        math.Pi / 6,
		H:            0.21,
		Z0:           -0.1,
		HubRadius:    0.121,
		ShroudRadius: 0.16,
	})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestNewBladeInsufficientLayers(t *testing.T) {
	for _, layers := range [][]SpanLayer{nil, testLayers()[:1]} {
		_, err := NewBlade(BladeParams{Layers: layers})
		if !errors.Is(err, ErrInsufficientLayers) {
			t.Errorf("%d layers: got %v, want ErrInsufficientLayers", len(layers), err)
		}
	}
}

func TestGenerateSurfaceCounts(t *testing.T) {
	const N = 50
	b := testBlade(t)
	if err := b.GenerateSurface(N); err != nil {
		t.Fatal(err)
	}
	want := N * b.NumLayers()
	if len(b.upper) != want || len(b.lower) != want || len(b.center) != want {
		t.Fatalf("point cloud lengths upper=%d lower=%d center=%d, want %d",
			len(b.upper), len(b.lower), len(b.center), want)
	}
	if len(b.quads) != (b.NumLayers()-1)*(N-1) {
		t.Fatalf("got %d quads, want %d", len(b.quads), (b.NumLayers()-1)*(N-1))
	}
	for _, q := range b.quads {
		for _, v := range q {
			if v < 0 || v >= want {
				t.Fatalf("quad index %d out of range [0,%d)", v, want)
			}
		}
	}
}

func TestGenerateSurfaceDeterministic(t *testing.T) {
	b1, b2 := testBlade(t), testBlade(t)
	if err := b1.GenerateSurface(40); err != nil {
		t.Fatal(err)
	}
	if err := b2.GenerateSurface(40); err != nil {
		t.Fatal(err)
	}
	for i := range b1.upper {
		if b1.upper[i] != b2.upper[i] || b1.lower[i] != b2.lower[i] || b1.center[i] != b2.center[i] {
			t.Fatalf("vertex %d differs between identical generations", i)
		}
	}
}

func TestLayerRadiusInterpolation(t *testing.T) {
	const tol = 1e-12
	b := testBlade(t)
	if err := b.GenerateSurface(10); err != nil {
		t.Fatal(err)
	}
	n := b.NumLayers()
	for i := 0; i < n; i++ {
		w := float64(i) / float64(n-1)
		want := (1-w)*b.HubRadius() + w*b.ShroudRadius()
		v := b.center[i*10]
		if got := math.Hypot(v.X, v.Y); math.Abs(got-want) > tol {
			t.Errorf("layer %d radius %g, want %g", i, got, want)
		}
	}
}

func TestLayerRadiusOverride(t *testing.T) {
	layers := testLayers()
	layers[1].Radius = 0.5
	b, err := NewBlade(BladeParams{
		Layers: layers, HubRadius: 0.121, ShroudRadius: 0.16, H: 0.2,
	})
	if err != nil {
		t.Fatal(err)
	}
	const N = 10
	if err := b.GenerateSurface(N); err != nil {
		t.Fatal(err)
	}
	for j := 0; j < N; j++ {
		v := b.upper[N+j]
		if got := math.Hypot(v.X, v.Y); math.Abs(got-0.5) > 1e-12 {
			t.Fatalf("override layer radius %g, want 0.5", got)
		}
	}
}

func TestAxialSpanGeneratesImplicitly(t *testing.T) {
	b := testBlade(t)
	zmin, zmax, err := b.AxialSpan()
	if err != nil {
		t.Fatal(err)
	}
	if !b.generated() {
		t.Fatal("AxialSpan did not generate the surface")
	}
	if zmax <= zmin {
		t.Fatalf("degenerate axial span [%g, %g]", zmin, zmax)
	}
	// The chord runs z0 to z0+H; camber/thickness offsets stay small.
	if zmin > -0.1 || zmax < 0.11-1e-9 {
		t.Errorf("axial span [%g, %g] does not cover the chord extent", zmin, zmax)
	}
}

func TestSectionCurves(t *testing.T) {
	b := testBlade(t)
	xi, zu, zl, zc, err := b.SectionCurves(1, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(xi) != 100 || len(zu) != 100 || len(zl) != 100 || len(zc) != 100 {
		t.Fatal("curve length mismatch")
	}
	for i := range xi {
		if zu[i] < zc[i] || zl[i] > zc[i] {
			t.Fatalf("surface ordering violated at x=%g: upper=%g center=%g lower=%g",
				xi[i], zu[i], zc[i], zl[i])
		}
	}
	if _, _, _, _, err := b.SectionCurves(99, 100); err == nil {
		t.Error("expected error for out of range layer index")
	}
}

func TestSurfaceMeshCounts(t *testing.T) {
	const N = 30
	b := testBlade(t)
	if err := b.GenerateSurface(N); err != nil {
		t.Fatal(err)
	}
	facesPerSurface := 2 * (b.NumLayers() - 1) * (N - 1)
	for _, tc := range []struct {
		mode      SurfaceMode
		wantVerts int
		wantFaces int
	}{
		{SurfaceUpper, N * b.NumLayers(), facesPerSurface},
		{SurfaceLower, N * b.NumLayers(), facesPerSurface},
		{SurfaceCenter, N * b.NumLayers(), facesPerSurface},
		{SurfaceBoth, 2 * N * b.NumLayers(), 2 * facesPerSurface},
	} {
		m, err := b.SurfaceMesh(tc.mode)
		if err != nil {
			t.Fatal(err)
		}
		if len(m.Vertices) != tc.wantVerts || len(m.Faces) != tc.wantFaces {
			t.Errorf("mode %v: got %d vertices %d faces, want %d and %d",
				tc.mode, len(m.Vertices), len(m.Faces), tc.wantVerts, tc.wantFaces)
		}
		for _, f := range m.Faces {
			for _, v := range f {
				if v < 0 || v >= len(m.Vertices) {
					t.Fatalf("mode %v: face index %d out of range", tc.mode, v)
				}
			}
		}
	}
}

func TestSurfaceMeshBounds(t *testing.T) {
	b := testBlade(t)
	m, err := b.SurfaceMesh(SurfaceBoth)
	if err != nil {
		t.Fatal(err)
	}
	bounds := m.Bounds()
	// Geometry is well under a meter in every direction.
	if !d3.EqualWithin(bounds.Min, d3.MinElem(bounds.Min, d3.Elem(1)), 0) {
		t.Fatalf("bounds min %+v outside expected envelope", bounds.Min)
	}
	if !d3.EqualWithin(bounds.Max, d3.MaxElem(bounds.Max, d3.Elem(-1)), 0) {
		t.Fatalf("bounds max %+v outside expected envelope", bounds.Max)
	}
	if bounds.Min.Z >= bounds.Max.Z {
		t.Fatalf("degenerate bounds %+v", bounds)
	}
}
