package bladegen

import (
	"github.com/soypat/bladegen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a triangulated geometry: vertex coordinates and triangular faces
// indexing into them. Meshes are value objects; transforms return new meshes
// and never mutate the source.
type Mesh struct {
	Vertices []r3.Vec
	Faces    [][3]int
}

// Copy returns a deep copy of the mesh.
func (m Mesh) Copy() Mesh {
	c := Mesh{
		Vertices: make([]r3.Vec, len(m.Vertices)),
		Faces:    make([][3]int, len(m.Faces)),
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Faces, m.Faces)
	return c
}

// Translate returns the mesh displaced by v.
func (m Mesh) Translate(v r3.Vec) Mesh {
	t := m.Copy()
	for i, p := range t.Vertices {
		t.Vertices[i] = r3.Add(p, v)
	}
	return t
}

// RotateZ returns the mesh rotated by alpha radians about the Z axis.
func (m Mesh) RotateZ(alpha float64) Mesh {
	rot := r3.NewRotation(alpha, r3.Vec{Z: 1})
	t := m.Copy()
	for i, p := range t.Vertices {
		t.Vertices[i] = rot.Rotate(p)
	}
	return t
}

// Merge unions meshes into one by concatenating vertices and reindexing
// faces. Coincident vertices across inputs are not deduplicated.
func Merge(meshes ...Mesh) Mesh {
	var out Mesh
	for _, m := range meshes {
		offset := len(out.Vertices)
		out.Vertices = append(out.Vertices, m.Vertices...)
		for _, f := range m.Faces {
			out.Faces = append(out.Faces, [3]int{f[0] + offset, f[1] + offset, f[2] + offset})
		}
	}
	return out
}

// Triangles expands the indexed faces into standalone triangles for
// consumption by exporters.
func (m Mesh) Triangles() []r3.Triangle {
	tris := make([]r3.Triangle, len(m.Faces))
	for i, f := range m.Faces {
		tris[i] = r3.Triangle{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
	}
	return tris
}

// Bounds returns the axis aligned bounding box of the mesh vertices.
func (m Mesh) Bounds() r3.Box {
	if len(m.Vertices) == 0 {
		return r3.Box{}
	}
	set := d3.Set(m.Vertices)
	return r3.Box{Min: set.Min(), Max: set.Max()}
}

// Centroid returns the arithmetic mean of the mesh vertices.
func (m Mesh) Centroid() r3.Vec {
	var sum r3.Vec
	for _, v := range m.Vertices {
		sum = r3.Add(sum, v)
	}
	return r3.Scale(1/float64(len(m.Vertices)), sum)
}

// IsWatertight reports whether every edge of the mesh is shared by at least
// two faces, i.e. the surface has no open boundary. Edges shared by more
// than two faces (internal walls) do not break watertightness.
func (m Mesh) IsWatertight() bool {
	return len(m.boundaryEdges()) == 0
}

// edge is an undirected vertex index pair with lo <= hi.
type edge struct{ lo, hi int }

func makeEdge(a, b int) edge {
	if a > b {
		a, b = b, a
	}
	return edge{lo: a, hi: b}
}

// boundaryEdges returns the directed edges used by exactly one face,
// oriented opposite to their face traversal so a cap built on them matches
// the adjacent face's winding.
func (m Mesh) boundaryEdges() [][2]int {
	count := make(map[edge]int, 3*len(m.Faces))
	for _, f := range m.Faces {
		count[makeEdge(f[0], f[1])]++
		count[makeEdge(f[1], f[2])]++
		count[makeEdge(f[2], f[0])]++
	}
	var boundary [][2]int
	for _, f := range m.Faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			if count[makeEdge(a, b)] == 1 {
				boundary = append(boundary, [2]int{b, a})
			}
		}
	}
	return boundary
}
