// Package textmesh converts text into 3D triangle meshes.
//
// # Overview
//
// textmesh loads a TrueType or OpenType font, extracts closed glyph
// contours (with curve flattening and hole orientation), and extrudes
// them into watertight 3D solids. It is the text-to-geometry component
// of the GoGPU ecosystem: the output is a plain vertex/index mesh that
// any viewer or exporter can consume.
//
// # Quick Start
//
//	import "github.com/gogpu/textmesh"
//
//	m := textmesh.NewMesher("arial.ttf", 48)
//	if !m.Ready() {
//	    // font failed to load
//	}
//	mesh := m.Generate("Hello", 0, 0, 16)
//	// mesh.Vertices, mesh.Triangles
//
// # Pipeline
//
// Generation is a single pipeline: font load, glyph outline extraction,
// Bezier flattening into polygon contours, orientation detection via the
// signed area, cap triangulation, and extrusion into front/back faces
// plus side walls. Successive characters are positioned by the glyph's
// horizontal advance plus kerning.
//
// # Contours
//
// GenerateContours exposes the intermediate 2D representation: one
// CharContour per character, each holding zero or more closed Contour
// loops. Contours wound opposite to their enclosing loop are holes
// (the "O" glyph yields two loops with opposite orientation).
//
// # Concurrency
//
// A Mesher holds mutable font and pen state and is not safe for
// concurrent use. Share a FontSource across goroutines instead and give
// each goroutine its own Mesher.
package textmesh
