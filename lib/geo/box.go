package geo

import (
	"fmt"

	"oss.inkboard.dev/connect/lib/go2"
)

type Box struct {
	TopLeft *Point
	Width   float64
	Height  float64
}

func NewBox(tl *Point, width, height float64) *Box {
	return &Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

// NewBoxFromPoints builds the smallest box containing both points.
func NewBoxFromPoints(a, b *Point) *Box {
	minX, maxX := go2.Min(a.X, b.X), go2.Max(a.X, b.X)
	minY, maxY := go2.Min(a.Y, b.Y), go2.Max(a.Y, b.Y)
	return NewBox(NewPoint(minX, minY), maxX-minX, maxY-minY)
}

func (b *Box) Copy() *Box {
	if b == nil {
		return nil
	}
	return NewBox(b.TopLeft.Copy(), b.Width, b.Height)
}

func (b *Box) Center() *Point {
	return NewPoint(b.TopLeft.X+b.Width/2, b.TopLeft.Y+b.Height/2)
}

func (b *Box) BottomRight() *Point {
	return NewPoint(b.TopLeft.X+b.Width, b.TopLeft.Y+b.Height)
}

// Expand grows the box by buffer on all four sides.
func (b *Box) Expand(buffer float64) *Box {
	return NewBox(
		NewPoint(b.TopLeft.X-buffer, b.TopLeft.Y-buffer),
		b.Width+2*buffer,
		b.Height+2*buffer,
	)
}

// ExtendTo grows the box just enough to contain p.
func (b *Box) ExtendTo(p *Point) {
	if p.X < b.TopLeft.X {
		b.Width += b.TopLeft.X - p.X
		b.TopLeft.X = p.X
	} else if p.X > b.TopLeft.X+b.Width {
		b.Width = p.X - b.TopLeft.X
	}
	if p.Y < b.TopLeft.Y {
		b.Height += b.TopLeft.Y - p.Y
		b.TopLeft.Y = p.Y
	} else if p.Y > b.TopLeft.Y+b.Height {
		b.Height = p.Y - b.TopLeft.Y
	}
}

func (b *Box) Contains(p *Point) bool {
	return p.X >= b.TopLeft.X && p.X <= b.TopLeft.X+b.Width &&
		p.Y >= b.TopLeft.Y && p.Y <= b.TopLeft.Y+b.Height
}

func (b *Box) ToString() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("{TopLeft: %s, Width: %.0f, Height: %.0f}", b.TopLeft.ToString(), b.Width, b.Height)
}
