package shape

// Isoceles triangle, apex at top center.
func triangleAnchors() []Anchor {
	return []Anchor{
		{AnchorTop, 50, 0},
		{AnchorRight, 75, 50},
		{AnchorBottomRight, 100, 100},
		{AnchorBottom, 50, 100},
		{AnchorBottomLeft, 0, 100},
		{AnchorLeft, 25, 50},
	}
}

// Right angle at the bottom left.
func rightTriangleAnchors() []Anchor {
	return []Anchor{
		{AnchorTopLeft, 0, 0},
		{AnchorRight, 50, 50},
		{AnchorBottomRight, 100, 100},
		{AnchorBottom, 50, 100},
		{AnchorBottomLeft, 0, 100},
		{AnchorLeft, 0, 50},
	}
}
