package textmesh

// Contour is one closed polygon loop of a glyph outline.
// The first and last points are implicitly connected; the closing
// duplicate point is never stored.
//
// Clockwise is computed from the signed area of the loop, never assumed
// from the font data. Loops wound opposite to their enclosing loop are
// holes (the inner loop of "O").
type Contour struct {
	// Points is the ordered vertex loop.
	Points []Point

	// Clockwise is true when the loop's signed area is negative.
	Clockwise bool
}

// SignedArea returns the shoelace area of the loop:
// positive for counter-clockwise winding, negative for clockwise.
// Returns 0 for loops with fewer than 3 points.
func (c *Contour) SignedArea() float64 {
	if len(c.Points) < 3 {
		return 0
	}
	var sum float64
	for i, p := range c.Points {
		q := c.Points[(i+1)%len(c.Points)]
		sum += p.Cross(q)
	}
	return sum / 2
}

// Area returns the absolute enclosed area of the loop.
func (c *Contour) Area() float64 {
	a := c.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// setOrientation recomputes the Clockwise flag from the signed area.
// Called once after a loop is closed.
func (c *Contour) setOrientation() {
	c.Clockwise = c.SignedArea() < 0
}

// isDegenerate reports whether the loop cannot bound any area.
func (c *Contour) isDegenerate() bool {
	return len(c.Points) < 3
}

// CharContour holds all contours belonging to one character.
// A glyph may have several loops: "O" has an outer boundary and an
// inner hole, accented letters have disjoint parts. Glyphs with no ink
// (space, missing glyphs) have zero contours.
type CharContour struct {
	// Character is the source code point.
	Character rune

	// Contours is the loop set, possibly empty.
	Contours []Contour
}

// IsEmpty reports whether the character produced no loops.
func (cc *CharContour) IsEmpty() bool {
	return len(cc.Contours) == 0
}

// HasInk reports whether at least one loop can bound area.
func (cc *CharContour) HasInk() bool {
	for i := range cc.Contours {
		if !cc.Contours[i].isDegenerate() {
			return true
		}
	}
	return false
}
