package shape

// Speech bubble: the body ends at 75% height, the tail points down-left.
func calloutAnchors() []Anchor {
	return []Anchor{
		{AnchorTop, 50, 0},
		{AnchorTopRight, 100, 0},
		{AnchorRight, 100, 37.5},
		{AnchorBottomRight, 100, 75},
		{AnchorBottom, 50, 75},
		{"bottom-tail", 25, 100},
		{AnchorBottomLeft, 0, 75},
		{AnchorLeft, 0, 37.5},
		{AnchorTopLeft, 0, 0},
	}
}
