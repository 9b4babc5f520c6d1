package shape

// Corner anchors sit on the ellipse itself at 45°: 50±50·cos(45°) ≈ 50±35.355.
func ellipseAnchors() []Anchor {
	return []Anchor{
		{AnchorTop, 50, 0},
		{AnchorTopRight, 85.355, 14.645},
		{AnchorRight, 100, 50},
		{AnchorBottomRight, 85.355, 85.355},
		{AnchorBottom, 50, 100},
		{AnchorBottomLeft, 14.645, 85.355},
		{AnchorLeft, 0, 50},
		{AnchorTopLeft, 14.645, 14.645},
	}
}
