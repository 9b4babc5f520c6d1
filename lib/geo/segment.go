package geo

import (
	"fmt"
	"math"
)

type Segment struct {
	Start *Point
	End   *Point
}

func NewSegment(from, to *Point) *Segment {
	return &Segment{from, to}
}

func (s Segment) ToString() string {
	return fmt.Sprintf("%v -> %v", s.Start.ToString(), s.End.ToString())
}

func (s Segment) IsHorizontal() bool {
	return s.Start.Y == s.End.Y
}

func (s Segment) IsVertical() bool {
	return s.Start.X == s.End.X
}

func (s Segment) IsZeroLength() bool {
	return s.Start.X == s.End.X && s.Start.Y == s.End.Y
}

func (s Segment) Length() float64 {
	return EuclideanDistance(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
}

// SharesEndpoint reports whether the two segments have an exactly equal
// endpoint. Touching at a shared vertex is a legal T-junction, not a
// crossing.
func (s Segment) SharesEndpoint(other Segment) bool {
	return s.Start.Equals(other.Start) || s.Start.Equals(other.End) ||
		s.End.Equals(other.Start) || s.End.Equals(other.End)
}

// IntersectsOrthogonal reports whether two axis-aligned segments cross or
// overlap. Parallel segments on the same line count as intersecting when
// their ranges touch or overlap: visually stacked straight segments look
// broken even without a true crossing point. Segments that merely share an
// exact endpoint do not intersect.
func (s Segment) IntersectsOrthogonal(other Segment) bool {
	if s.SharesEndpoint(other) {
		return false
	}

	sH, oH := s.IsHorizontal(), other.IsHorizontal()
	sV, oV := s.IsVertical(), other.IsVertical()

	switch {
	case sH && oV:
		return perpendicularCross(s, other)
	case sV && oH:
		return perpendicularCross(other, s)
	case sH && oH:
		if s.Start.Y != other.Start.Y {
			return false
		}
		return rangesOverlap(s.Start.X, s.End.X, other.Start.X, other.End.X)
	case sV && oV:
		if s.Start.X != other.Start.X {
			return false
		}
		return rangesOverlap(s.Start.Y, s.End.Y, other.Start.Y, other.End.Y)
	}
	// Not axis-aligned; the planner never constructs these.
	return false
}

// h must be horizontal, v vertical.
func perpendicularCross(h, v Segment) bool {
	x0, x1 := math.Min(h.Start.X, h.End.X), math.Max(h.Start.X, h.End.X)
	y0, y1 := math.Min(v.Start.Y, v.End.Y), math.Max(v.Start.Y, v.End.Y)
	return v.Start.X >= x0 && v.Start.X <= x1 &&
		h.Start.Y >= y0 && h.Start.Y <= y1
}

func rangesOverlap(a0, a1, b0, b1 float64) bool {
	lo1, hi1 := math.Min(a0, a1), math.Max(a0, a1)
	lo2, hi2 := math.Min(b0, b1), math.Max(b0, b1)
	return lo1 <= hi2 && lo2 <= hi1
}
