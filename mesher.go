package textmesh

import (
	"golang.org/x/text/unicode/norm"
)

// closeEps is the tolerance for detecting an explicit closing point
// that duplicates a loop's start. Outline coordinates are multiples of
// 1/64 px, so anything well below that works.
const closeEps = 1e-6

// Mesher converts text into glyph contours and extruded 3D meshes
// using one loaded font at one pixel height.
//
// A Mesher is not safe for concurrent use: the parsed font buffers and
// the kerning state are mutated by every generation call. Create one
// Mesher per goroutine, sharing the FontSource.
type Mesher struct {
	source     *FontSource
	fontHeight int
	opts       mesherOptions
	ready      bool

	// kern is the glyph-pair state across character-level calls.
	// String-level calls reset it.
	kern kernState
}

// NewMesher creates a Mesher from a font file (normally a .ttf or
// .otf). The font height is the nominal pixel size contours are
// extracted at; it directly scales the generated coordinates.
//
// NewMesher never returns nil. When the file cannot be read or parsed
// the Mesher is created not-ready: Ready reports false and all
// generation calls return empty results.
func NewMesher(fontFile string, fontHeight int, opts ...Option) *Mesher {
	m := &Mesher{opts: defaultMesherOptions()}
	for _, opt := range opts {
		opt(&m.opts)
	}
	if err := m.SetFont(fontFile, fontHeight); err != nil {
		Logger().Warn("textmesh: font load failed", "file", fontFile, "err", err)
	}
	return m
}

// NewMesherFromSource creates a Mesher from an already loaded source.
// A nil source yields a not-ready Mesher.
func NewMesherFromSource(src *FontSource, fontHeight int, opts ...Option) *Mesher {
	m := &Mesher{opts: defaultMesherOptions()}
	for _, opt := range opts {
		opt(&m.opts)
	}
	m.SetFontSource(src, fontHeight)
	return m
}

// SetFont replaces the loaded font. The previous font is released
// before the new file is loaded; on failure the Mesher is left
// not-ready rather than keeping the old font.
//
// All subsequent generation calls use the new font.
func (m *Mesher) SetFont(fontFile string, fontHeight int) error {
	m.release()
	src, err := NewFontSourceFromFile(fontFile, WithParser(m.opts.parserName))
	if err != nil {
		return err
	}
	m.SetFontSource(src, fontHeight)
	return nil
}

// SetFontSource replaces the loaded font with an existing source.
func (m *Mesher) SetFontSource(src *FontSource, fontHeight int) {
	m.release()
	if src == nil {
		return
	}
	m.source = src
	m.fontHeight = fontHeight
	m.ready = true
}

// release drops the current font and resets dependent state. Safe to
// call when nothing is loaded.
func (m *Mesher) release() {
	m.source = nil
	m.fontHeight = 0
	m.ready = false
	m.kern.reset()
}

// Ready reports whether a font is loaded and generation can proceed.
func (m *Mesher) Ready() bool {
	return m.ready
}

// FontName returns the loaded font's family name, or "" when not ready.
func (m *Mesher) FontName() string {
	if !m.ready {
		return ""
	}
	return m.source.Name()
}

// FontHeight returns the pixel height contours are extracted at.
func (m *Mesher) FontHeight() int {
	return m.fontHeight
}

// GenerateContours converts text into one CharContour per character,
// starting the pen at (x, y). Characters without ink or without a glyph
// in the font produce an entry with zero contours; the pen still
// advances by whatever width the font assigns.
//
// Returns nil when the Mesher is not ready.
func (m *Mesher) GenerateContours(text string, x, y float64) []CharContour {
	out, _ := m.AppendContours(nil, text, x, y)
	return out
}

// AppendContours appends one CharContour per character of text to dst
// and returns the extended slice together with the final pen position.
// The pen starts at (x, y); kerning state is reset for the string.
//
// When the Mesher is not ready, dst is returned unchanged with the pen
// still at the start position.
func (m *Mesher) AppendContours(dst []CharContour, text string, x, y float64) ([]CharContour, Pen) {
	pen := Pen{X: x, Y: y}
	if !m.ready {
		return dst, pen
	}
	m.kern.reset()

	// NFC so combining sequences resolve to precomposed glyphs where
	// the font has them.
	for _, r := range norm.NFC.String(text) {
		var cc CharContour
		cc, pen = m.charContours(r, pen)
		dst = append(dst, cc)
	}
	return dst, pen
}

// GenerateCharContours converts a single character at the given pen
// position and returns its contours together with the advanced pen.
// Consecutive calls kern against each other; a string-level call or
// SetFont resets that pairing.
//
// The pen advances even when the character resolves to no contours.
func (m *Mesher) GenerateCharContours(r rune, pen Pen) (CharContour, Pen) {
	if !m.ready {
		return CharContour{Character: r}, pen
	}
	return m.charContours(r, pen)
}

// charContours extracts and flattens one character's outline at the pen
// position, advancing the pen through the kerning state.
func (m *Mesher) charContours(r rune, pen Pen) (CharContour, Pen) {
	cc := CharContour{Character: r}
	f := m.source.parsed
	ppem := float64(m.fontHeight)

	gid, ok := f.GlyphIndex(r)
	if !ok {
		Logger().Warn("textmesh: character not in font", "char", string(r))
		return cc, pen
	}

	backward, forward := m.kern.step(f, gid, ppem, m.opts.kerning)
	pen.X += backward

	outline, err := f.GlyphOutline(gid, ppem)
	if err != nil {
		Logger().Warn("textmesh: glyph outline unavailable", "char", string(r), "err", err)
	} else {
		cc.Contours = flattenOutline(outline, pen, m.opts.bezierSteps)
	}

	pen.X += forward
	return cc, pen
}

// flattenOutline converts outline commands into closed polygon loops,
// translated by the pen position. Curved segments are flattened into
// steps straight sub-segments. Orientation is computed per loop from
// the signed area once the loop closes.
func flattenOutline(outline Outline, pen Pen, steps int) []Contour {
	var contours []Contour
	var cur []Point

	closeLoop := func() {
		// Drop an explicit closing point and stray duplicates; the
		// loop is implicitly closed.
		if len(cur) > 1 && cur[len(cur)-1].NearlyEqual(cur[0], closeEps) {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			c := Contour{Points: dedupPoints(cur)}
			c.setOrientation()
			contours = append(contours, c)
		}
		cur = nil
	}

	off := Point{X: pen.X, Y: pen.Y}
	for _, seg := range outline {
		switch seg.Op {
		case SegmentOpMoveTo:
			closeLoop()
			cur = append(cur, seg.Args[0].Add(off))
		case SegmentOpLineTo:
			cur = append(cur, seg.Args[0].Add(off))
		case SegmentOpQuadTo:
			if len(cur) == 0 {
				continue
			}
			q := NewQuadBez(cur[len(cur)-1], seg.Args[0].Add(off), seg.Args[1].Add(off))
			cur = q.Flatten(cur, steps)
		case SegmentOpCubicTo:
			if len(cur) == 0 {
				continue
			}
			c := NewCubicBez(cur[len(cur)-1], seg.Args[0].Add(off), seg.Args[1].Add(off), seg.Args[2].Add(off))
			cur = c.Flatten(cur, steps)
		}
	}
	closeLoop()
	return contours
}

// dedupPoints removes consecutive duplicate points, which flattening
// can produce when a curve's control point coincides with its anchor.
func dedupPoints(pts []Point) []Point {
	out := pts[:0]
	for _, p := range pts {
		if len(out) == 0 || !p.NearlyEqual(out[len(out)-1], closeEps) {
			out = append(out, p)
		}
	}
	return out
}

// Generate produces a new mesh of the text extruded along z, with the
// pen starting at (x, y) and the front face at z=0.
//
// Returns nil when the Mesher is not ready. Empty text yields an empty
// (non-nil) mesh; neither case is an error.
func (m *Mesher) Generate(text string, x, y, extrude float64) *TriangleMesh {
	mesh := NewTriangleMesh()
	if err := m.GenerateInto(mesh, text, x, y, extrude); err != nil {
		return nil
	}
	return mesh
}

// GenerateInto appends the text's extruded geometry to an existing
// builder. The append is all-or-nothing: geometry is staged first and
// the target is only written once every character has been processed,
// so a failure never leaves the target partially modified.
//
// Characters that cannot be triangulated are skipped with a warning,
// matching the soft handling of missing glyphs. Returns ErrNotReady
// when no font is loaded and ErrNilBuilder for a nil target.
func (m *Mesher) GenerateInto(b MeshBuilder, text string, x, y, extrude float64) error {
	if b == nil {
		return ErrNilBuilder
	}
	if !m.ready {
		return ErrNotReady
	}

	chars, pen := m.AppendContours(nil, text, x, y)

	staging := NewTriangleMesh()
	for i := range chars {
		if err := buildSolid(staging, &chars[i], extrude); err != nil {
			Logger().Warn("textmesh: skipping character", "char", string(chars[i].Character), "err", err)
		}
	}
	staging.Append(b)

	Logger().Debug("textmesh: generated",
		"text", text,
		"font", m.source.Name(),
		"triangles", staging.NumTriangles(),
		"penX", pen.X)
	return nil
}
