package shape

// Corner anchors are pulled in to stay on the cloud's lobes.
func cloudAnchors() []Anchor {
	return []Anchor{
		{AnchorTop, 50, 0},
		{AnchorTopRight, 85, 25},
		{AnchorRight, 100, 50},
		{AnchorBottomRight, 85, 75},
		{AnchorBottom, 50, 100},
		{AnchorBottomLeft, 15, 75},
		{AnchorLeft, 0, 50},
		{AnchorTopLeft, 15, 25},
	}
}
