package textmesh

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements FontParser using go-text/typesetting.
//
// The gotext backend reads outlines and advances from the typesetting
// glyph tables. It reports no pair kerning and no hinting deltas:
// typesetting surfaces kerning through full shaping, which is outside
// this package's scope. Select it per source with WithParser("gotext")
// when the default sfnt backend cannot parse a font.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textmesh: failed to parse font: %w", err)
	}
	return &gotextParsedFont{face: face}, nil
}

// gotextParsedFont implements ParsedFont using a typesetting face.
// Typesetting glyph coordinates are in font units with the y axis up,
// so only uniform scaling to the pixel height is needed.
type gotextParsedFont struct {
	face *font.Face
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	return f.face.Describe().Family
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) (GlyphID, bool) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return 0, false
	}
	return GlyphID(gid), true
}

// scale returns the font-unit to pixel factor for a pixel height.
func (f *gotextParsedFont) scale(ppem float64) float64 {
	upem := float64(f.face.Upem())
	if upem == 0 {
		return 0
	}
	return ppem / upem
}

// GlyphOutline implements ParsedFont.GlyphOutline.
func (f *gotextParsedFont) GlyphOutline(gid GlyphID, ppem float64) (Outline, error) {
	data := f.face.GlyphData(font.GID(gid))
	glyph, ok := data.(font.GlyphOutline)
	if !ok {
		if data == nil {
			return nil, nil
		}
		return nil, fmt.Errorf("textmesh: glyph %d: %w", gid, ErrNoOutline)
	}
	if len(glyph.Segments) == 0 {
		return nil, nil
	}

	sc := f.scale(ppem)
	outline := make(Outline, 0, len(glyph.Segments))
	for _, seg := range glyph.Segments {
		out := Segment{}
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			out.Op = SegmentOpMoveTo
			out.Args[0] = scalePoint(seg.Args[0], sc)
		case opentype.SegmentOpLineTo:
			out.Op = SegmentOpLineTo
			out.Args[0] = scalePoint(seg.Args[0], sc)
		case opentype.SegmentOpQuadTo:
			out.Op = SegmentOpQuadTo
			out.Args[0] = scalePoint(seg.Args[0], sc)
			out.Args[1] = scalePoint(seg.Args[1], sc)
		case opentype.SegmentOpCubeTo:
			out.Op = SegmentOpCubicTo
			out.Args[0] = scalePoint(seg.Args[0], sc)
			out.Args[1] = scalePoint(seg.Args[1], sc)
			out.Args[2] = scalePoint(seg.Args[2], sc)
		}
		outline = append(outline, out)
	}
	return outline, nil
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(gid GlyphID, ppem float64) float64 {
	return float64(f.face.HorizontalAdvance(font.GID(gid))) * f.scale(ppem)
}

// Kern implements ParsedFont.Kern. The gotext backend does not expose
// pair kerning outside of shaping, so this always returns 0.
func (f *gotextParsedFont) Kern(prev, cur GlyphID, ppem float64) float64 {
	return 0
}

// SideBearingDeltas implements ParsedFont.SideBearingDeltas.
// Typesetting metrics are unhinted, so the deltas are always zero.
func (f *gotextParsedFont) SideBearingDeltas(gid GlyphID, ppem float64) (lsbDelta, rsbDelta float64) {
	return 0, 0
}

// scalePoint converts a typesetting segment point to pixel units.
func scalePoint(p opentype.SegmentPoint, sc float64) Point {
	return Point{X: float64(p.X) * sc, Y: float64(p.Y) * sc}
}
