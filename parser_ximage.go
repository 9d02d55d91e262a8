package textmesh

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/sfnt.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("textmesh: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
//
// sfnt emits glyph coordinates with the y axis pointing down; outlines
// and side bearings are converted here to y-up with the baseline at
// y=0, which is what the contour and mesh pipeline expects.
type ximageParsedFont struct {
	font *sfnt.Font

	// buf is reused across sfnt operations. sfnt.Buffer is not safe
	// for concurrent use, which is part of why ParsedFont is not
	// either.
	buf sfnt.Buffer
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) (GlyphID, bool) {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphID(idx), true
}

// GlyphOutline implements ParsedFont.GlyphOutline.
func (f *ximageParsedFont) GlyphOutline(gid GlyphID, ppem float64) (Outline, error) {
	segments, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), floatToFixed(ppem), nil)
	if err != nil {
		return nil, fmt.Errorf("textmesh: failed to load glyph %d: %w", gid, err)
	}
	if len(segments) == 0 {
		return nil, nil
	}

	outline := make(Outline, 0, len(segments))
	for _, seg := range segments {
		out := Segment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = SegmentOpMoveTo
			out.Args[0] = fixedPointYUp(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			out.Op = SegmentOpLineTo
			out.Args[0] = fixedPointYUp(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			out.Op = SegmentOpQuadTo
			out.Args[0] = fixedPointYUp(seg.Args[0])
			out.Args[1] = fixedPointYUp(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			out.Op = SegmentOpCubicTo
			out.Args[0] = fixedPointYUp(seg.Args[0])
			out.Args[1] = fixedPointYUp(seg.Args[1])
			out.Args[2] = fixedPointYUp(seg.Args[2])
		}
		outline = append(outline, out)
	}
	return outline, nil
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(gid GlyphID, ppem float64) float64 {
	advance, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

// Kern implements ParsedFont.Kern using the font's kern table.
// Fonts without a kern table (or without data for the pair) yield 0.
func (f *ximageParsedFont) Kern(prev, cur GlyphID, ppem float64) float64 {
	k, err := f.font.Kern(&f.buf, sfnt.GlyphIndex(prev), sfnt.GlyphIndex(cur), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(k)
}

// SideBearingDeltas implements ParsedFont.SideBearingDeltas.
// The deltas are the hinted-minus-unhinted left and right side
// bearings, the same quantities FreeType reports as lsb_delta and
// rsb_delta for grid-fitted advance correction.
func (f *ximageParsedFont) SideBearingDeltas(gid GlyphID, ppem float64) (lsbDelta, rsbDelta float64) {
	x := sfnt.GlyphIndex(gid)
	p := floatToFixed(ppem)

	rawBounds, rawAdv, err := f.font.GlyphBounds(&f.buf, x, p, font.HintingNone)
	if err != nil {
		return 0, 0
	}
	fitBounds, fitAdv, err := f.font.GlyphBounds(&f.buf, x, p, font.HintingFull)
	if err != nil {
		return 0, 0
	}

	rawLSB := fixedToFloat(rawBounds.Min.X)
	fitLSB := fixedToFloat(fitBounds.Min.X)
	rawRSB := fixedToFloat(rawAdv - rawBounds.Max.X)
	fitRSB := fixedToFloat(fitAdv - fitBounds.Max.X)
	return fitLSB - rawLSB, fitRSB - rawRSB
}

// fixedPointYUp converts a fixed.Point26_6 to a Point, flipping the y
// axis so the baseline is at y=0 with ascenders above it.
func fixedPointYUp(p fixed.Point26_6) Point {
	return Point{
		X: fixedToFloat(p.X),
		Y: -fixedToFloat(p.Y),
	}
}

// floatToFixed converts a float64 pixel value to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
