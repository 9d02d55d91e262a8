package textmesh

import "errors"

// Sentinel errors for the textmesh package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("textmesh: empty font data")

	// ErrNotReady is returned by generation calls when no font is
	// loaded (construction or SetFont failed).
	ErrNotReady = errors.New("textmesh: no font loaded")

	// ErrNilBuilder is returned when the append target is nil.
	ErrNilBuilder = errors.New("textmesh: nil mesh builder")

	// ErrNoOutline is returned when a glyph carries no vector outline
	// (bitmap or SVG glyph data).
	ErrNoOutline = errors.New("textmesh: glyph has no vector outline")
)
