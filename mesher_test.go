package textmesh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font/gofont/goregular"
)

// newTestMesher creates a ready Mesher from the embedded Go Regular
// font (TrueType, quadratic outlines).
func newTestMesher(t *testing.T, height int, opts ...Option) *Mesher {
	t.Helper()
	src, err := NewFontSource(goregular.TTF, opts...)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	m := NewMesherFromSource(src, height, opts...)
	if !m.Ready() {
		t.Fatal("mesher not ready with embedded font")
	}
	return m
}

func TestNewMesher_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go-regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	m := NewMesher(path, 48)
	if !m.Ready() {
		t.Fatal("mesher not ready after loading font file")
	}
	if m.FontHeight() != 48 {
		t.Errorf("FontHeight() = %d, want 48", m.FontHeight())
	}
	if m.FontName() == "" {
		t.Error("FontName() empty for a named font")
	}
}

func TestNewMesher_MissingFile(t *testing.T) {
	m := NewMesher("/nonexistent/path.ttf", 48)
	if m == nil {
		t.Fatal("NewMesher returned nil")
	}
	if m.Ready() {
		t.Fatal("mesher ready with nonexistent font file")
	}

	// Generation calls fail gracefully, never crash.
	if mesh := m.Generate("AB", 0, 0, 10); mesh != nil {
		t.Errorf("Generate on not-ready mesher = %v, want nil", mesh)
	}
	if cs := m.GenerateContours("AB", 0, 0); len(cs) != 0 {
		t.Errorf("GenerateContours on not-ready mesher returned %d entries", len(cs))
	}
	if err := m.GenerateInto(NewTriangleMesh(), "AB", 0, 0, 10); err != ErrNotReady {
		t.Errorf("GenerateInto error = %v, want ErrNotReady", err)
	}
	cc, pen := m.GenerateCharContours('A', Pen{X: 5, Y: 2})
	if !cc.IsEmpty() || pen != (Pen{X: 5, Y: 2}) {
		t.Error("not-ready char generation must return empty contours and an unmoved pen")
	}
}

func TestSetFont_Replace(t *testing.T) {
	m := newTestMesher(t, 48)

	// Switching to a bad file releases the old font and marks the
	// instance not-ready.
	if err := m.SetFont("/nonexistent/path.ttf", 48); err == nil {
		t.Fatal("SetFont on missing file succeeded")
	}
	if m.Ready() {
		t.Error("mesher still ready after failed SetFont")
	}

	path := filepath.Join(t.TempDir(), "go-regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := m.SetFont(path, 36); err != nil {
		t.Fatalf("SetFont: %v", err)
	}
	if !m.Ready() || m.FontHeight() != 36 {
		t.Error("mesher not ready after successful SetFont")
	}
}

func TestGenerateContours_HollowGlyph(t *testing.T) {
	m := newTestMesher(t, 48)

	chars := m.GenerateContours("O", 0, 0)
	if len(chars) != 1 {
		t.Fatalf("got %d CharContours, want 1", len(chars))
	}
	cc := chars[0]
	if cc.Character != 'O' {
		t.Errorf("Character = %q, want 'O'", cc.Character)
	}
	if len(cc.Contours) != 2 {
		t.Fatalf("'O' produced %d contours, want 2 (outer + hole)", len(cc.Contours))
	}
	if cc.Contours[0].Clockwise == cc.Contours[1].Clockwise {
		t.Error("outer boundary and hole have the same orientation")
	}
	for i := range cc.Contours {
		c := &cc.Contours[i]
		if c.Area() <= 0 {
			t.Errorf("contour %d has zero area", i)
		}
		if c.Clockwise != (c.SignedArea() < 0) {
			t.Errorf("contour %d orientation flag disagrees with signed area", i)
		}
	}
}

func TestGenerateContours_Space(t *testing.T) {
	m := newTestMesher(t, 48)

	chars, pen := m.AppendContours(nil, " ", 0, 0)
	if len(chars) != 1 {
		t.Fatalf("got %d CharContours, want 1", len(chars))
	}
	if !chars[0].IsEmpty() {
		t.Error("space produced contours")
	}
	if pen.X <= 0 {
		t.Error("space did not advance the pen")
	}
}

func TestGenerateContours_MissingGlyph(t *testing.T) {
	m := newTestMesher(t, 48)

	// Go Regular has no CJK coverage; the middle character resolves to
	// nothing but must not halt the string.
	chars := m.GenerateContours("A一B", 0, 0)
	if len(chars) != 3 {
		t.Fatalf("got %d CharContours, want 3", len(chars))
	}
	if chars[0].IsEmpty() || chars[2].IsEmpty() {
		t.Error("glyphs around the missing character lost their contours")
	}
	if !chars[1].IsEmpty() {
		t.Error("missing glyph produced contours")
	}
}

func TestGenerateContours_Deterministic(t *testing.T) {
	m := newTestMesher(t, 48)

	a := m.GenerateContours("Okg", 3, 7)
	b := m.GenerateContours("Okg", 3, 7)
	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if len(a[i].Contours) != len(b[i].Contours) {
			t.Fatalf("char %d contour counts differ", i)
		}
		for j := range a[i].Contours {
			pa, pb := a[i].Contours[j].Points, b[i].Contours[j].Points
			if len(pa) != len(pb) {
				t.Fatalf("char %d contour %d point counts differ", i, j)
			}
			for k := range pa {
				if pa[k] != pb[k] {
					t.Fatalf("char %d contour %d point %d differs: %v vs %v", i, j, k, pa[k], pb[k])
				}
			}
		}
	}
}

func TestGenerateContours_MonotonicAdvance(t *testing.T) {
	m := newTestMesher(t, 48)

	pen := Pen{}
	for _, r := range "AVTawmo ij." {
		prevX := pen.X
		_, pen = m.GenerateCharContours(r, pen)
		if pen.X < prevX {
			t.Errorf("pen moved backwards at %q: %v -> %v", r, prevX, pen.X)
		}
	}
}

func TestGenerateContours_PenStart(t *testing.T) {
	m := newTestMesher(t, 48)

	at0 := m.GenerateContours("H", 0, 0)
	at10 := m.GenerateContours("H", 10, 5)
	p0 := at0[0].Contours[0].Points[0]
	p10 := at10[0].Contours[0].Points[0]
	if got := p10.Sub(p0); !got.NearlyEqual(Pt(10, 5), 1e-9) {
		t.Errorf("pen start offset = %v, want (10, 5)", got)
	}
}

func TestGenerateContours_NFCNormalization(t *testing.T) {
	m := newTestMesher(t, 48)

	// "o" + combining diaeresis composes to a single precomposed glyph.
	chars := m.GenerateContours("ö", 0, 0)
	if len(chars) != 1 {
		t.Fatalf("decomposed input produced %d CharContours, want 1", len(chars))
	}
	if chars[0].Character != 'ö' {
		t.Errorf("Character = %q, want 'ö'", chars[0].Character)
	}
	if len(chars[0].Contours) < 3 {
		t.Errorf("'ö' produced %d contours, want at least 3", len(chars[0].Contours))
	}
}

func TestBezierSteps_ControlsVertexCount(t *testing.T) {
	coarse := newTestMesher(t, 48, WithBezierSteps(2))
	fine := newTestMesher(t, 48, WithBezierSteps(8))

	count := func(m *Mesher) int {
		n := 0
		for _, cc := range m.GenerateContours("O", 0, 0) {
			for _, c := range cc.Contours {
				n += len(c.Points)
			}
		}
		return n
	}

	nc, nf := count(coarse), count(fine)
	if nf <= nc {
		t.Errorf("finer flattening produced %d points, coarser %d", nf, nc)
	}
}

func TestParserBackends_AgreeOnContourStructure(t *testing.T) {
	tests := []struct {
		name   string
		parser string
	}{
		{"ximage", "ximage"},
		{"gotext", "gotext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMesher(t, 48, WithParser(tt.parser))
			chars := m.GenerateContours("O", 0, 0)
			if len(chars) != 1 || len(chars[0].Contours) != 2 {
				t.Fatalf("backend %s: 'O' did not yield two contours", tt.parser)
			}
			if chars[0].Contours[0].Clockwise == chars[0].Contours[1].Clockwise {
				t.Errorf("backend %s: hole orientation not opposite", tt.parser)
			}
		})
	}
}

func TestCFFOutlines(t *testing.T) {
	// Latin Modern is CFF-flavored: its outlines arrive as cubic
	// segments, exercising the cubic flattening path.
	src, err := NewFontSource(lmroman10regular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource(latin-modern): %v", err)
	}
	m := NewMesherFromSource(src, 48)

	chars := m.GenerateContours("O", 0, 0)
	if len(chars) != 1 || len(chars[0].Contours) != 2 {
		t.Fatalf("'O' in Latin Modern did not yield two contours")
	}

	mesh := m.Generate("B", 0, 0, 8)
	if mesh.IsEmpty() {
		t.Fatal("no geometry for CFF glyph")
	}
	if !mesh.IsWatertight() {
		t.Error("CFF glyph solid not watertight")
	}
}

func TestKerning_Toggle(t *testing.T) {
	with := newTestMesher(t, 48, WithKerning(true))
	without := newTestMesher(t, 48, WithKerning(false))

	_, penWith := with.AppendContours(nil, "AVAV", 0, 0)
	_, penWithout := without.AppendContours(nil, "AVAV", 0, 0)

	if penWith.X <= 0 || penWithout.X <= 0 {
		t.Fatal("no advance accumulated")
	}
	// How far the widths differ depends on the font's kern data and
	// the grid-fit correction, but it stays within a pixel per pair.
	if diff := penWithout.X - penWith.X; diff < -3 {
		t.Errorf("kerned width %v exceeds unkerned width %v by more than the correction allows", penWith.X, penWithout.X)
	}
	t.Logf("advance with kerning %.2f, without %.2f", penWith.X, penWithout.X)
}

func TestFontSource_EmptyData(t *testing.T) {
	if _, err := NewFontSource(nil); err != ErrEmptyFontData {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource on garbage succeeded")
	}
}

func TestGetParser_UnknownFallsBack(t *testing.T) {
	if getParser("no-such-backend") != parserRegistry[defaultParserName] {
		t.Error("unknown parser name did not fall back to the default")
	}
}
