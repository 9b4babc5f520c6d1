package geo

import (
	"math"
)

type Route []*Point

func (route Route) Length() float64 {
	l := 0.
	for i := 0; i < len(route)-1; i++ {
		l += EuclideanDistance(
			route[i].X, route[i].Y,
			route[i+1].X, route[i+1].Y,
		)
	}
	return l
}

func (route Route) ManhattanLength() float64 {
	l := 0.
	for i := 0; i < len(route)-1; i++ {
		l += ManhattanDistance(
			route[i].X, route[i].Y,
			route[i+1].X, route[i+1].Y,
		)
	}
	return l
}

// Bends counts the interior points where the route changes direction.
func (route Route) Bends() int {
	bends := 0
	for i := 1; i < len(route)-1; i++ {
		prev, at, next := route[i-1], route[i], route[i+1]
		sameX := prev.X == at.X && at.X == next.X
		sameY := prev.Y == at.Y && at.Y == next.Y
		if !sameX && !sameY {
			bends++
		}
	}
	return bends
}

// IsOrthogonal reports whether every consecutive point pair shares exactly
// one coordinate.
func (route Route) IsOrthogonal() bool {
	for i := 0; i < len(route)-1; i++ {
		if route[i].X != route[i+1].X && route[i].Y != route[i+1].Y {
			return false
		}
	}
	return true
}

// return the point at _distance_ along the route, and the index of the segment it's on
func (route Route) GetPointAtDistance(distance float64) (*Point, int) {
	remaining := distance
	for i := 0; i < len(route)-1; i++ {
		curr, next := route[i], route[i+1]
		length := EuclideanDistance(curr.X, curr.Y, next.X, next.Y)

		if remaining <= length {
			t := remaining / length
			return curr.Interpolate(next, t), i
		}
		remaining -= length
	}

	return nil, -1
}

func (route Route) GetBoundingBox() (tl, br *Point) {
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)

	for _, p := range route {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return NewPoint(minX, minY), NewPoint(maxX, maxY)
}
