package textmesh

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// SegmentOp is the type of outline path operation.
type SegmentOp uint8

const (
	// SegmentOpMoveTo starts a new loop at the target point.
	SegmentOpMoveTo SegmentOp = iota

	// SegmentOpLineTo draws a straight segment to the target point.
	SegmentOpLineTo

	// SegmentOpQuadTo draws a quadratic Bezier curve.
	SegmentOpQuadTo

	// SegmentOpCubicTo draws a cubic Bezier curve.
	SegmentOpCubicTo
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentOpMoveTo:
		return "MoveTo"
	case SegmentOpLineTo:
		return "LineTo"
	case SegmentOpQuadTo:
		return "QuadTo"
	case SegmentOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// Segment is one command of a glyph outline, in pixel units.
//
//   - MoveTo: Args[0] is the target point
//   - LineTo: Args[0] is the target point
//   - QuadTo: Args[0] is control, Args[1] is target
//   - CubicTo: Args[0], Args[1] are controls, Args[2] is target
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// Outline is the command sequence describing a glyph's shape.
// An empty outline means the glyph has no ink (e.g. space).
type Outline []Segment

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g. golang.org/x/image/font/opentype vs go-text/typesetting).
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed outline font.
// All metric-returning methods take the pixel height (ppem) the caller
// wants the glyph rendered at and return values in pixels.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// UnitsPerEm returns the font's design units per em.
	UnitsPerEm() int

	// GlyphIndex returns the glyph for a rune.
	// ok is false when the font has no mapping for the rune.
	GlyphIndex(r rune) (gid GlyphID, ok bool)

	// GlyphOutline returns the outline commands for a glyph at the
	// given pixel height. A nil outline with nil error means the glyph
	// exists but has no ink.
	GlyphOutline(gid GlyphID, ppem float64) (Outline, error)

	// GlyphAdvance returns the horizontal advance width in pixels.
	GlyphAdvance(gid GlyphID, ppem float64) float64

	// Kern returns the horizontal kerning adjustment in pixels for a
	// glyph pair, usually negative or zero. Backends without pair
	// kerning data return 0.
	Kern(prev, cur GlyphID, ppem float64) float64

	// SideBearingDeltas returns the differences between hinted and
	// unhinted left/right side bearings in pixels, used for the
	// advance correction between adjacent glyphs. Backends without
	// hinting return (0, 0).
	SideBearingDeltas(gid GlyphID, ppem float64) (lsbDelta, rsbDelta float64)
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var parserRegistry = map[string]FontParser{
	"ximage": &ximageParser{},
	"gotext": &gotextParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
