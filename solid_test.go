package bladegen

import (
	"errors"
	"testing"
)

func solidFixture(t *testing.T, pointsPerChord int) (*Blade, Mesh) {
	t.Helper()
	b := testBlade(t)
	if err := b.GenerateSurface(pointsPerChord); err != nil {
		t.Fatal(err)
	}
	m, err := b.Solidify(SurfaceBoth)
	if err != nil && !errors.Is(err, ErrNotWatertight) {
		t.Fatal(err)
	}
	return b, m
}

func TestSolidifyClosed(t *testing.T) {
	_, m := solidFixture(t, 40)
	if !m.IsWatertight() {
		t.Error("stitched blade solid has open boundary edges")
	}
	for _, f := range m.Faces {
		for _, v := range f {
			if v < 0 || v >= len(m.Vertices) {
				t.Fatalf("face index %d out of range [0,%d)", v, len(m.Vertices))
			}
		}
	}
}

func TestSolidifyVertexBudget(t *testing.T) {
	const N = 25
	b, m := solidFixture(t, N)
	// Upper and lower clouds concatenated; every vertex referenced.
	if want := 2 * N * b.NumLayers(); len(m.Vertices) != want {
		t.Fatalf("got %d vertices, want %d", len(m.Vertices), want)
	}
}

func TestSolidifyOpenSurfaceModes(t *testing.T) {
	b := testBlade(t)
	if err := b.GenerateSurface(20); err != nil {
		t.Fatal(err)
	}
	for _, mode := range []SurfaceMode{SurfaceUpper, SurfaceLower} {
		m, err := b.Solidify(mode)
		if err != nil {
			t.Fatalf("mode %v: %v", mode, err)
		}
		// Single-sided results are intentionally open surfaces.
		if m.IsWatertight() {
			t.Errorf("mode %v: single sided surface reported watertight", mode)
		}
	}
	if _, err := b.Solidify(SurfaceCenter); err == nil {
		t.Error("expected error solidifying the center surface")
	}
}

func TestRemoveDuplicateFaces(t *testing.T) {
	_, m := solidFixture(t, 20)
	before := len(m.Faces)
	// Duplicate a face with a different winding; post-processing drops it.
	m.Faces = append(m.Faces, [3]int{m.Faces[0][2], m.Faces[0][1], m.Faces[0][0]})
	m.removeDuplicateFaces()
	if len(m.Faces) != before {
		t.Fatalf("got %d faces after dedup, want %d", len(m.Faces), before)
	}
}

func TestPostProcessIdempotent(t *testing.T) {
	_, m := solidFixture(t, 20)
	verts, faces := len(m.Vertices), len(m.Faces)
	m.removeDuplicateFaces()
	m.removeUnreferencedVertices()
	m.fillHoles()
	if len(m.Vertices) != verts || len(m.Faces) != faces {
		t.Fatalf("post-processing a repaired solid changed counts: %d->%d vertices, %d->%d faces",
			verts, len(m.Vertices), faces, len(m.Faces))
	}
}

func TestRemoveUnreferencedVertices(t *testing.T) {
	b := testBlade(t)
	if err := b.GenerateSurface(15); err != nil {
		t.Fatal(err)
	}
	m, err := b.SurfaceMesh(SurfaceUpper)
	if err != nil {
		t.Fatal(err)
	}
	// Append stray vertices nothing references.
	m.Vertices = append(m.Vertices, m.Vertices[0], m.Vertices[1])
	before := len(m.Vertices)
	m.removeUnreferencedVertices()
	if len(m.Vertices) != before-2 {
		t.Fatalf("got %d vertices, want %d", len(m.Vertices), before-2)
	}
	for _, f := range m.Faces {
		for _, v := range f {
			if v < 0 || v >= len(m.Vertices) {
				t.Fatalf("face index %d out of range after remap", v)
			}
		}
	}
}
