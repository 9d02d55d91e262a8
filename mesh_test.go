package textmesh

import "testing"

func TestTriangleMesh_VertexDedup(t *testing.T) {
	m := NewTriangleMesh()
	a := m.AddVertex(V3(0, 0, 0))
	b := m.AddVertex(V3(1, 0, 0))
	a2 := m.AddVertex(V3(0, 0, 0))

	if a != a2 {
		t.Errorf("duplicate vertex got index %d, want %d", a2, a)
	}
	if a == b {
		t.Error("distinct vertices share an index")
	}
	if m.NumVertices() != 2 {
		t.Errorf("NumVertices() = %d, want 2", m.NumVertices())
	}
}

// tetrahedron builds the smallest closed solid.
func tetrahedron(m MeshBuilder) {
	a := m.AddVertex(V3(0, 0, 0))
	b := m.AddVertex(V3(1, 0, 0))
	c := m.AddVertex(V3(0, 1, 0))
	d := m.AddVertex(V3(0, 0, 1))
	m.AddTriangle(a, c, b)
	m.AddTriangle(a, b, d)
	m.AddTriangle(b, c, d)
	m.AddTriangle(c, a, d)
}

func TestTriangleMesh_Watertight(t *testing.T) {
	m := NewTriangleMesh()
	tetrahedron(m)

	counts := m.EdgeUseCounts()
	if len(counts) != 6 {
		t.Fatalf("tetrahedron has %d edges, want 6", len(counts))
	}
	for e, n := range counts {
		if n != 2 {
			t.Errorf("edge %v used %d times, want 2", e, n)
		}
	}
	if !m.IsWatertight() {
		t.Error("tetrahedron not watertight")
	}
}

func TestTriangleMesh_NotWatertight(t *testing.T) {
	m := NewTriangleMesh()
	a := m.AddVertex(V3(0, 0, 0))
	b := m.AddVertex(V3(1, 0, 0))
	c := m.AddVertex(V3(0, 1, 0))
	m.AddTriangle(a, b, c)

	if m.IsWatertight() {
		t.Error("single triangle reported watertight")
	}

	var empty TriangleMesh
	if empty.IsWatertight() {
		t.Error("empty mesh reported watertight")
	}
}

func TestTriangleMesh_Append(t *testing.T) {
	src := NewTriangleMesh()
	tetrahedron(src)

	dst := NewTriangleMesh()
	dst.AddVertex(V3(9, 9, 9)) // pre-existing content survives
	src.Append(dst)

	if dst.NumVertices() != src.NumVertices()+1 {
		t.Errorf("dst has %d vertices, want %d", dst.NumVertices(), src.NumVertices()+1)
	}
	if dst.NumTriangles() != src.NumTriangles() {
		t.Errorf("dst has %d triangles, want %d", dst.NumTriangles(), src.NumTriangles())
	}

	// Replaying into a mesh that already holds the same solid reuses
	// every vertex.
	src.Append(src)
	if src.NumVertices() != 4 {
		t.Errorf("self-append grew vertex count to %d", src.NumVertices())
	}
}

func TestTriangleMesh_IsEmpty(t *testing.T) {
	var nilMesh *TriangleMesh
	if !nilMesh.IsEmpty() {
		t.Error("nil mesh not empty")
	}
	m := NewTriangleMesh()
	if !m.IsEmpty() {
		t.Error("new mesh not empty")
	}
	tetrahedron(m)
	if m.IsEmpty() {
		t.Error("tetrahedron reported empty")
	}
}
