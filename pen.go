package textmesh

// Pen is the current text layout position. The x axis is the advance
// direction; y stays fixed for single-line text.
//
// Pens are values: character-level generation returns the updated pen
// rather than mutating the caller's copy.
type Pen struct {
	X, Y float64
}

// kernState carries the glyph-pair context between consecutive
// characters of one string: the previous glyph and its right side
// bearing delta. It is reset at the start of every string-level call.
type kernState struct {
	prevGlyph    GlyphID
	prevRSBDelta float64
	hasPrev      bool
}

// step returns the pen movement for placing cur after the previous
// glyph. backward is applied to the pen before cur's contours are
// extracted: pair kerning against the previous glyph plus the
// side-bearing correction that keeps grid-fitted glyphs from drifting
// (the FreeType rsb/lsb delta rule, looking backward to fix the
// previous glyph's advance). forward is cur's own horizontal advance,
// applied after. cur is recorded as the new previous glyph.
func (ks *kernState) step(f ParsedFont, cur GlyphID, ppem float64, kerning bool) (backward, forward float64) {
	if kerning && ks.hasPrev {
		backward = f.Kern(ks.prevGlyph, cur, ppem)

		lsbDelta, _ := f.SideBearingDeltas(cur, ppem)
		switch d := ks.prevRSBDelta - lsbDelta; {
		case d >= 0.5:
			backward--
		case d < -0.5:
			backward++
		}
	}

	forward = f.GlyphAdvance(cur, ppem)

	_, rsbDelta := f.SideBearingDeltas(cur, ppem)
	ks.prevGlyph = cur
	ks.prevRSBDelta = rsbDelta
	ks.hasPrev = true
	return backward, forward
}

// reset clears the pair context, e.g. at the start of a new string.
func (ks *kernState) reset() {
	*ks = kernState{}
}
