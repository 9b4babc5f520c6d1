package shape

// The side anchors sit below the top ellipse's rim.
func cylinderAnchors() []Anchor {
	return []Anchor{
		{AnchorTop, 50, 0},
		{AnchorTopLeft, 0, 12.5},
		{AnchorTopRight, 100, 12.5},
		{AnchorRight, 100, 50},
		{AnchorBottom, 50, 100},
		{AnchorLeft, 0, 50},
	}
}
