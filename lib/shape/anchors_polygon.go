package shape

// Regular pentagon, point up.
func pentagonAnchors() []Anchor {
	return []Anchor{
		{AnchorTop, 50, 0},
		{AnchorRight, 100, 38.2},
		{AnchorBottomRight, 81.5, 100},
		{AnchorBottom, 50, 100},
		{AnchorBottomLeft, 18.5, 100},
		{AnchorLeft, 0, 38.2},
	}
}

// Flat-top hexagon.
func hexagonAnchors() []Anchor {
	return []Anchor{
		{AnchorTop, 50, 0},
		{AnchorTopLeft, 25, 0},
		{AnchorTopRight, 75, 0},
		{AnchorRight, 100, 50},
		{AnchorBottomRight, 75, 100},
		{AnchorBottom, 50, 100},
		{AnchorBottomLeft, 25, 100},
		{AnchorLeft, 0, 50},
	}
}

// Five-point star; anchors on the outer points.
func starAnchors() []Anchor {
	return []Anchor{
		{AnchorTop, 50, 0},
		{AnchorRight, 100, 38.2},
		{AnchorBottomRight, 79.4, 100},
		{AnchorBottomLeft, 20.6, 100},
		{AnchorLeft, 0, 38.2},
	}
}
