package shape

// Right-pointing chevron; the notch sits a quarter of the width in.
func chevronAnchors() []Anchor {
	return []Anchor{
		{AnchorTop, 37.5, 0},
		{AnchorTopLeft, 0, 0},
		{AnchorRight, 100, 50},
		{AnchorBottom, 37.5, 100},
		{AnchorBottomLeft, 0, 100},
		{AnchorLeft, 25, 50},
	}
}

// Right-pointing block arrow: shaft spans the left 62.5%, head the rest.
func arrowAnchors() []Anchor {
	return []Anchor{
		{AnchorTop, 31.25, 25},
		{AnchorRight, 100, 50},
		{AnchorBottom, 31.25, 75},
		{AnchorLeft, 0, 50},
	}
}
