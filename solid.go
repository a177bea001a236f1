package bladegen

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNotWatertight is returned by Solidify together with a valid mesh when
// hole filling could not close every boundary seam. Treat it as a quality
// warning: the mesh is usable but may need manual repair before printing.
var ErrNotWatertight = errors.New("stitched solid has open boundary edges after repair")

// Solidify stitches the blade's generated surfaces into a single
// consistently oriented triangulated solid. For SurfaceBoth the upper and
// lower surfaces are joined by side walls at every layer and the result is
// post-processed: duplicate faces removed, unreferenced vertices dropped and
// small boundary holes filled best-effort. SurfaceUpper and SurfaceLower
// deliberately produce open single-sided surfaces with no walls.
//
// A non-nil ErrNotWatertight is returned alongside the mesh when repair left
// open seams; other errors mean no mesh was produced. The blade surface is
// generated with default sampling if it has not been yet.
func (b *Blade) Solidify(mode SurfaceMode) (Mesh, error) {
	if err := b.ensureSurface(); err != nil {
		return Mesh{}, err
	}
	if mode != SurfaceBoth && mode != SurfaceUpper && mode != SurfaceLower {
		return Mesh{}, fmt.Errorf("cannot solidify surface mode %v", mode)
	}
	n := len(b.layers)
	N := b.nchord

	var m Mesh
	if mode == SurfaceUpper || mode == SurfaceBoth {
		m.Vertices = append(m.Vertices, b.upper...)
	}
	if mode == SurfaceLower || mode == SurfaceBoth {
		m.Vertices = append(m.Vertices, b.lower...)
	}
	offset := 0
	if mode == SurfaceBoth {
		offset = len(b.upper)
	}

	// Upper surface, outward winding.
	if mode == SurfaceUpper || mode == SurfaceBoth {
		for _, q := range b.quads {
			m.Faces = append(m.Faces,
				[3]int{q[0], q[1], q[2]},
				[3]int{q[0], q[2], q[3]},
			)
		}
	}
	// Lower surface, winding reversed so normals face the opposite side.
	if mode == SurfaceLower || mode == SurfaceBoth {
		for _, q := range b.quads {
			m.Faces = append(m.Faces,
				[3]int{q[0] + offset, q[2] + offset, q[1] + offset},
				[3]int{q[0] + offset, q[3] + offset, q[2] + offset},
			)
		}
	}
	// Side walls joining upper and lower at every layer. Walls at the hub
	// and shroud layers close the solid; interior walls brace it.
	if mode == SurfaceBoth {
		for i := 0; i < n; i++ {
			baseUpper := i * N
			baseLower := baseUpper + offset
			for j := 0; j < N-1; j++ {
				v0 := baseUpper + j
				v1 := baseUpper + j + 1
				v2 := baseLower + j + 1
				v3 := baseLower + j
				m.Faces = append(m.Faces,
					[3]int{v0, v1, v2},
					[3]int{v0, v2, v3},
				)
			}
		}
	}

	m.removeDuplicateFaces()
	m.removeUnreferencedVertices()
	if mode == SurfaceBoth {
		m.fillHoles()
		if !m.IsWatertight() {
			return m, ErrNotWatertight
		}
	}
	return m, nil
}

// removeDuplicateFaces drops faces referencing the same vertex set as an
// earlier face, regardless of winding.
func (m *Mesh) removeDuplicateFaces() {
	seen := make(map[[3]int]struct{}, len(m.Faces))
	kept := m.Faces[:0]
	for _, f := range m.Faces {
		key := f
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if key[1] > key[2] {
			key[1], key[2] = key[2], key[1]
		}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, f)
	}
	m.Faces = kept
}

// removeUnreferencedVertices compacts the vertex array to the vertices used
// by at least one face and remaps face indices.
func (m *Mesh) removeUnreferencedVertices() {
	remap := make([]int, len(m.Vertices))
	for i := range remap {
		remap[i] = -1
	}
	next := 0
	for _, f := range m.Faces {
		for _, v := range f {
			if remap[v] < 0 {
				remap[v] = next
				next++
			}
		}
	}
	if next == len(m.Vertices) {
		return
	}
	vertices := make([]r3.Vec, next)
	for from, to := range remap {
		if to >= 0 {
			vertices[to] = m.Vertices[from]
		}
	}
	m.Vertices = vertices
	for i, f := range m.Faces {
		m.Faces[i] = [3]int{remap[f[0]], remap[f[1]], remap[f[2]]}
	}
}

// fillHoles closes boundary holes bounded by at most 4 edges: triangular
// holes get one face, quadrilateral holes two. Larger holes are left open.
// This matches the repair contract of common mesh libraries and is
// best-effort, not guaranteed watertight.
//
// Cycle search treats boundary edges as undirected: side walls are wound
// identically at every layer, so a hole's rim is not consistently oriented.
// A boundary edge may rim two holes at once (interior wall edges do); caps
// are allowed to share such edges.
func (m *Mesh) fillHoles() {
	boundary := m.boundaryEdges()
	if len(boundary) == 0 {
		return
	}
	adj := make(map[int][]int, len(boundary))
	for _, e := range boundary {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	capped := make(map[edge]bool, len(boundary))
	for _, e := range boundary {
		if capped[makeEdge(e[0], e[1])] {
			continue
		}
		cycle, ok := findHoleCycle(e, adj, 4)
		if !ok {
			continue
		}
		for k := range cycle {
			capped[makeEdge(cycle[k], cycle[(k+1)%len(cycle)])] = true
		}
		m.Faces = append(m.Faces, [3]int{cycle[0], cycle[1], cycle[2]})
		if len(cycle) == 4 {
			m.Faces = append(m.Faces, [3]int{cycle[0], cycle[2], cycle[3]})
		}
	}
}

// findHoleCycle searches depth-first for a simple cycle of boundary edges
// through start, of at most maxLen edges. The returned vertex order follows
// the start edge so the cap's winding matches the face the start edge came
// from.
func findHoleCycle(start [2]int, adj map[int][]int, maxLen int) ([]int, bool) {
	path := []int{start[0], start[1]}
	onPath := map[edge]bool{makeEdge(start[0], start[1]): true}
	var dfs func(at int) bool
	dfs = func(at int) bool {
		for _, next := range adj[at] {
			e := makeEdge(at, next)
			if onPath[e] {
				continue
			}
			if next == start[0] && len(path) >= 3 {
				return true
			}
			if len(path) == maxLen || contains(path, next) {
				continue
			}
			path = append(path, next)
			onPath[e] = true
			if dfs(next) {
				return true
			}
			path = path[:len(path)-1]
			delete(onPath, e)
		}
		return false
	}
	if !dfs(start[1]) {
		return nil, false
	}
	return path, true
}

func contains(path []int, v int) bool {
	for _, p := range path {
		if p == v {
			return true
		}
	}
	return false
}
