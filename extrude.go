package textmesh

import (
	"fmt"

	libtess2 "github.com/hajimehoshi/go-libtess2"
)

// buildSolid appends one character's extruded solid to the builder:
// a triangulated front cap at z=0, a mirrored back cap at z=extrude,
// and side walls along every contour rim. Holes are resolved by the
// nonzero winding rule, so the contour orientations extracted from the
// font fall out naturally (outer loops and holes wind oppositely).
//
// Degenerate loops (fewer than 3 points) are skipped. A character with
// no usable loops appends nothing and is not an error.
func buildSolid(b MeshBuilder, cc *CharContour, extrude float64) error {
	loops := make([]*Contour, 0, len(cc.Contours))
	for i := range cc.Contours {
		if !cc.Contours[i].isDegenerate() {
			loops = append(loops, &cc.Contours[i])
		}
	}
	if len(loops) == 0 {
		return nil
	}

	front, err := triangulateCaps(loops)
	if err != nil {
		return fmt.Errorf("textmesh: triangulating %q: %w", cc.Character, err)
	}

	// Caps. The front cap is wound opposite to the back cap so both
	// face away from the solid between them.
	for _, t := range front {
		f0 := b.AddVertex(Vec3{X: t[0].X, Y: t[0].Y})
		f1 := b.AddVertex(Vec3{X: t[1].X, Y: t[1].Y})
		f2 := b.AddVertex(Vec3{X: t[2].X, Y: t[2].Y})
		b.AddTriangle(f0, f2, f1)

		b0 := b.AddVertex(Vec3{X: t[0].X, Y: t[0].Y, Z: extrude})
		b1 := b.AddVertex(Vec3{X: t[1].X, Y: t[1].Y, Z: extrude})
		b2 := b.AddVertex(Vec3{X: t[2].X, Y: t[2].Y, Z: extrude})
		b.AddTriangle(b0, b1, b2)
	}

	// Side walls: two triangles per rim edge, on every loop (outer
	// boundaries and holes alike).
	for _, loop := range loops {
		n := len(loop.Points)
		for i := 0; i < n; i++ {
			p := loop.Points[i]
			q := loop.Points[(i+1)%n]

			fp := b.AddVertex(Vec3{X: p.X, Y: p.Y})
			fq := b.AddVertex(Vec3{X: q.X, Y: q.Y})
			bp := b.AddVertex(Vec3{X: p.X, Y: p.Y, Z: extrude})
			bq := b.AddVertex(Vec3{X: q.X, Y: q.Y, Z: extrude})

			b.AddTriangle(fp, fq, bq)
			b.AddTriangle(fp, bq, bp)
		}
	}
	return nil
}

// capTriangle is one cap triangle in 2D.
type capTriangle [3]Point

// triangulateCaps triangulates the character's loops as a single
// polygon set under the nonzero winding rule.
//
// The tesselator works in float32; output boundary vertices are snapped
// back to the exact float64 loop points they came from so cap edges and
// wall edges land on identical mesh vertices.
func triangulateCaps(loops []*Contour) ([]capTriangle, error) {
	contours := make([]libtess2.Contour, len(loops))
	snap := make(map[[2]float32]Point)
	for i, loop := range loops {
		c := make(libtess2.Contour, len(loop.Points))
		for j, p := range loop.Points {
			x := float32(p.X)
			y := float32(p.Y)
			c[j] = libtess2.Vertex{X: x, Y: y}
			snap[[2]float32{x, y}] = p
		}
		contours[i] = c
	}

	elements, vertices, err := libtess2.Tesselate(contours, libtess2.WindingRuleNonzero)
	if err != nil {
		return nil, err
	}

	points := make([]Point, len(vertices))
	for i, v := range vertices {
		if p, ok := snap[[2]float32{v.X, v.Y}]; ok {
			points[i] = p
		} else {
			points[i] = Point{X: float64(v.X), Y: float64(v.Y)}
		}
	}

	tris := make([]capTriangle, 0, len(elements)/3)
	for i := 0; i+2 < len(elements); i += 3 {
		tris = append(tris, capTriangle{
			points[elements[i]],
			points[elements[i+1]],
			points[elements[i+2]],
		})
	}
	return tris, nil
}
