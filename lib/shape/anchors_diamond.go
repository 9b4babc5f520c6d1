package shape

func diamondAnchors() []Anchor {
	return []Anchor{
		{AnchorTop, 50, 0},
		{AnchorRight, 100, 50},
		{AnchorBottom, 50, 100},
		{AnchorLeft, 0, 50},
	}
}
