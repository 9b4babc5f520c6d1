package geo

import (
	"math"
)

// How precise should comparisons be, avoid being too precise due to floating point issues
const PRECISION = 0.0001

// QuadraticBezier is the curved connector's path: start and end points with a
// single control point.
type QuadraticBezier struct {
	Start   *Point
	Control *Point
	End     *Point
}

func NewQuadraticBezier(start, control, end *Point) QuadraticBezier {
	return QuadraticBezier{Start: start, Control: control, End: end}
}

// At returns the curve point at t, where 0 ≤ t ≤ 1.
func (q QuadraticBezier) At(t float64) *Point {
	mt := 1 - t
	return NewPoint(
		mt*mt*q.Start.X+2*mt*t*q.Control.X+t*t*q.End.X,
		mt*mt*q.Start.Y+2*mt*t*q.Control.Y+t*t*q.End.Y,
	)
}

// Midpoint is the curve point at t=0.5. The editor places the draggable
// handle here for both curved and elbow connectors so they share drag math.
func (q QuadraticBezier) Midpoint() *Point {
	return NewPoint(
		0.25*q.Start.X+0.5*q.Control.X+0.25*q.End.X,
		0.25*q.Start.Y+0.5*q.Control.Y+0.25*q.End.Y,
	)
}

// ExtremaTs returns the parameters in (0, 1) where the curve's tangent is
// axis-aligned, solving d/dt[(1-t)²P0 + 2(1-t)tP1 + t²P2] = 0 per axis:
// t = (P0 - P1)/(P0 - 2P1 + P2).
func (q QuadraticBezier) ExtremaTs() []float64 {
	var ts []float64
	for _, axis := range [][3]float64{
		{q.Start.X, q.Control.X, q.End.X},
		{q.Start.Y, q.Control.Y, q.End.Y},
	} {
		denom := axis[0] - 2*axis[1] + axis[2]
		if math.Abs(denom) < PRECISION {
			// nearly linear on this axis, no interior extremum
			continue
		}
		t := (axis[0] - axis[1]) / denom
		if t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	return ts
}

// DistanceTo returns the approximate distance from p to the curve, using a
// coarse sample pass and a local refinement around the best sample.
func (q QuadraticBezier) DistanceTo(p *Point) float64 {
	const coarseSteps = 32
	bestT := 0.
	bestD := math.Inf(1)
	for i := 0; i <= coarseSteps; i++ {
		t := float64(i) / coarseSteps
		cp := q.At(t)
		d := EuclideanDistance(p.X, p.Y, cp.X, cp.Y)
		if d < bestD {
			bestD = d
			bestT = t
		}
	}

	lo := math.Max(0, bestT-1./coarseSteps)
	hi := math.Min(1, bestT+1./coarseSteps)
	const refineSteps = 16
	for i := 0; i <= refineSteps; i++ {
		t := lo + (hi-lo)*float64(i)/refineSteps
		cp := q.At(t)
		d := EuclideanDistance(p.X, p.Y, cp.X, cp.Y)
		if d < bestD {
			bestD = d
		}
	}
	return bestD
}
