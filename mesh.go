package textmesh

// MeshBuilder is the construction API the mesher drives. Any surface
// mesh implementation (a renderer's mesh, an exporter, TriangleMesh)
// can receive generated geometry by implementing it.
//
// AddVertex returns the index the vertex was stored at; implementations
// may deduplicate and return an existing index for repeated positions.
type MeshBuilder interface {
	// AddVertex adds a vertex and returns its index.
	AddVertex(v Vec3) int

	// AddTriangle adds a triangle by vertex indices.
	AddTriangle(a, b, c int)
}

// TriangleMesh is an indexed triangle mesh. It deduplicates vertices by
// exact coordinates, so triangles that share a position share an index
// and closed solids stay closed (every rim edge is referenced by both
// the cap and the wall that meet there).
type TriangleMesh struct {
	// Vertices is the deduplicated vertex list.
	Vertices []Vec3

	// Triangles holds vertex index triples.
	Triangles [][3]int

	// index maps a coordinate to its slot in Vertices.
	index map[Vec3]int
}

// NewTriangleMesh creates an empty triangle mesh.
func NewTriangleMesh() *TriangleMesh {
	return &TriangleMesh{index: make(map[Vec3]int)}
}

// AddVertex implements MeshBuilder. Repeated positions return the
// existing index.
func (m *TriangleMesh) AddVertex(v Vec3) int {
	if m.index == nil {
		m.index = make(map[Vec3]int, len(m.Vertices))
		for i, p := range m.Vertices {
			m.index[p] = i
		}
	}
	if i, ok := m.index[v]; ok {
		return i
	}
	i := len(m.Vertices)
	m.Vertices = append(m.Vertices, v)
	m.index[v] = i
	return i
}

// AddTriangle implements MeshBuilder.
func (m *TriangleMesh) AddTriangle(a, b, c int) {
	m.Triangles = append(m.Triangles, [3]int{a, b, c})
}

// IsEmpty reports whether the mesh has no triangles.
func (m *TriangleMesh) IsEmpty() bool {
	return m == nil || len(m.Triangles) == 0
}

// NumVertices returns the number of distinct vertices.
func (m *TriangleMesh) NumVertices() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices)
}

// NumTriangles returns the number of triangles.
func (m *TriangleMesh) NumTriangles() int {
	if m == nil {
		return 0
	}
	return len(m.Triangles)
}

// Append replays the mesh's geometry into another builder.
func (m *TriangleMesh) Append(to MeshBuilder) {
	if m == nil {
		return
	}
	remap := make([]int, len(m.Vertices))
	for i, v := range m.Vertices {
		remap[i] = to.AddVertex(v)
	}
	for _, t := range m.Triangles {
		to.AddTriangle(remap[t[0]], remap[t[1]], remap[t[2]])
	}
}

// EdgeUseCounts returns how many triangles reference each undirected
// edge. A watertight mesh maps every edge to exactly 2.
func (m *TriangleMesh) EdgeUseCounts() map[[2]int]int {
	counts := make(map[[2]int]int)
	if m == nil {
		return counts
	}
	for _, t := range m.Triangles {
		for i := 0; i < 3; i++ {
			a, b := t[i], t[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			counts[[2]int{a, b}]++
		}
	}
	return counts
}

// IsWatertight reports whether every edge is shared by exactly two
// triangles.
func (m *TriangleMesh) IsWatertight() bool {
	if m.IsEmpty() {
		return false
	}
	for _, n := range m.EdgeUseCounts() {
		if n != 2 {
			return false
		}
	}
	return true
}
