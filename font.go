package textmesh

import (
	"fmt"
	"os"
)

// FontSource represents a loaded outline font file.
// One FontSource can back multiple Meshers at different heights.
// The parsed font is the only state a Mesher owns besides its pen; the
// source itself keeps no per-generation state.
type FontSource struct {
	// data is the raw font file contents.
	data []byte

	// parsed is the backend-specific parsed font.
	parsed ParsedFont

	// name is the font family name, "" when the backend has none.
	name string

	// path is the originating file path, "" for in-memory sources.
	path string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Only WithParser is meaningful among the options; the remaining
// options configure the Mesher, not the source.
func NewFontSource(data []byte, opts ...Option) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultMesherOptions()
	for _, opt := range opts {
		opt(&config)
	}

	parser := getParser(config.parserName)
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	return &FontSource{
		data:   dataCopy,
		parsed: parsed,
		name:   parsed.Name(),
	}, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...Option) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textmesh: failed to read font file: %w", err)
	}

	src, err := NewFontSource(data, opts...)
	if err != nil {
		return nil, err
	}
	src.path = path
	return src, nil
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	return s.name
}

// Path returns the file path the source was loaded from, or "" for
// in-memory sources.
func (s *FontSource) Path() string {
	return s.path
}

// UnitsPerEm returns the font's design units per em.
func (s *FontSource) UnitsPerEm() int {
	return s.parsed.UnitsPerEm()
}
