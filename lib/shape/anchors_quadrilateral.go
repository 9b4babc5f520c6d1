package shape

// Top edge shifted right by a quarter of the width.
func parallelogramAnchors() []Anchor {
	return []Anchor{
		{AnchorTop, 62.5, 0},
		{AnchorTopLeft, 25, 0},
		{AnchorTopRight, 100, 0},
		{AnchorRight, 87.5, 50},
		{AnchorBottom, 37.5, 100},
		{AnchorBottomLeft, 0, 100},
		{AnchorBottomRight, 75, 100},
		{AnchorLeft, 12.5, 50},
	}
}

// Top edge inset by a quarter of the width on each side.
func trapezoidAnchors() []Anchor {
	return []Anchor{
		{AnchorTop, 50, 0},
		{AnchorTopLeft, 25, 0},
		{AnchorTopRight, 75, 0},
		{AnchorRight, 87.5, 50},
		{AnchorBottom, 50, 100},
		{AnchorBottomLeft, 0, 100},
		{AnchorBottomRight, 100, 100},
		{AnchorLeft, 12.5, 50},
	}
}
