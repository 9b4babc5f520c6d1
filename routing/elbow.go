// Package routing computes how a connector travels between two points:
// orthogonal elbow routes under exit-direction constraints, and the tight
// bounds of the rendered connector path.
package routing

import (
	"oss.inkboard.dev/connect/lib/geo"
)

// DefaultStubLength is how far a connector travels straight out from an
// anchor before it is allowed to turn, so it doesn't bend on top of the
// shape's edge.
const DefaultStubLength = 30.

// bendPenalty ranks candidates: fewer bends dominates shorter paths.
// Crossing candidates are discarded outright, never ranked.
const bendPenalty = 10_000.

// ElbowRequest describes one elbow routing call. Control is the user-dragged
// handle, nil until the user bends the connector. StartDir/EndDir come from
// the endpoint attachments and may be NoDirection for free endpoints.
type ElbowRequest struct {
	Start   *geo.Point
	End     *geo.Point
	Control *geo.Point

	StartDir geo.Direction
	EndDir   geo.Direction

	// StubLength overrides DefaultStubLength when > 0.
	StubLength float64
}

func (req ElbowRequest) stubLength() float64 {
	if req.StubLength > 0 {
		return req.StubLength
	}
	return DefaultStubLength
}

// HandlePoint is where the draggable handle sits for the given endpoints and
// control point. With a control point it is the quadratic Bezier midpoint,
// the same formula the curved connector uses, so both connector kinds share
// drag math. Without one it is the implicit right-angle bend point.
func HandlePoint(start, end, control *geo.Point) *geo.Point {
	if control != nil {
		return geo.NewQuadraticBezier(start, control, end).Midpoint()
	}
	return geo.NewPoint(start.X, end.Y)
}

// PlanElbow returns an orthogonal polyline from Start to End through the
// handle, respecting exit-direction constraints and avoiding illegal
// self-intersections. It always returns a route with at least two points:
// when every candidate is rejected, a guaranteed-constructible fallback is
// returned even though it may contain crossings.
func PlanElbow(req ElbowRequest) geo.Route {
	handle := HandlePoint(req.Start, req.End, req.Control)

	stub := req.stubLength()
	startStub := projectStub(req.Start, req.StartDir, stub)
	endStub := projectStub(req.End, req.EndDir, stub)

	var best geo.Route
	bestScore := 0.
	for _, startHorizontal := range firstAxisOptions(req.StartDir, true) {
		for _, endHorizontal := range firstAxisOptions(req.EndDir, false) {
			candidate := buildCandidate(req, handle, startStub, endStub, startHorizontal, endHorizontal)
			crossings := illegalCrossings(candidate)
			if crossings > 0 {
				continue
			}
			if !exitLegal(candidate, req.StartDir, req.EndDir) {
				continue
			}

			score := float64(candidate.Bends())*bendPenalty + candidate.ManhattanLength()
			if best == nil || score < bestScore {
				best = candidate
				bestScore = score
			}
		}
	}
	if best == nil {
		best = fallbackRoute(req, handle, startStub, endStub)
	}
	if len(best) < 2 {
		// coincident endpoints compact to a single point
		return geo.Route{req.Start, req.End}
	}
	return best
}

// projectStub returns the point stubLength outward from p along dir, or p
// itself when the endpoint is unconstrained.
func projectStub(p *geo.Point, dir geo.Direction, stubLength float64) *geo.Point {
	dx, dy := dir.Vector()
	if dx == 0 && dy == 0 {
		return p
	}
	return geo.NewPoint(p.X+dx*stubLength, p.Y+dy*stubLength)
}

// firstAxisOptions returns which axis each leg should move along first. A
// constrained start leg keeps moving on its exit axis; a constrained end leg
// moves on the other axis first so it arrives collinear with its stub.
// Unconstrained endpoints try both orderings.
func firstAxisOptions(dir geo.Direction, isStart bool) []bool {
	if dir == geo.NoDirection {
		return []bool{true, false}
	}
	if isStart {
		return []bool{dir.IsHorizontal()}
	}
	return []bool{dir.IsVertical()}
}

// singleBendLeg connects a to b with at most one intermediate bend point.
func singleBendLeg(a, b *geo.Point, horizontalFirst bool) []*geo.Point {
	if a.X == b.X || a.Y == b.Y {
		return []*geo.Point{a, b}
	}
	if horizontalFirst {
		return []*geo.Point{a, geo.NewPoint(b.X, a.Y), b}
	}
	return []*geo.Point{a, geo.NewPoint(a.X, b.Y), b}
}

func buildCandidate(req ElbowRequest, handle, startStub, endStub *geo.Point, startHorizontal, endHorizontal bool) geo.Route {
	points := []*geo.Point{req.Start, startStub}
	points = append(points, singleBendLeg(startStub, handle, startHorizontal)[1:]...)
	points = append(points, singleBendLeg(handle, endStub, endHorizontal)[1:]...)
	points = append(points, req.End)
	return compact(points, handle)
}

// fallbackRoute is the guaranteed 2-bend path through the handle's column.
// It is only used when every candidate was rejected, and may cross itself.
func fallbackRoute(req ElbowRequest, handle, startStub, endStub *geo.Point) geo.Route {
	points := []*geo.Point{
		req.Start,
		startStub,
		geo.NewPoint(handle.X, startStub.Y),
		handle,
		geo.NewPoint(handle.X, endStub.Y),
		endStub,
		req.End,
	}
	return compact(points, handle)
}

// compact removes consecutive duplicates, then collapses runs of collinear
// points down to the run's endpoints. The handle point is never removed:
// it has to stay draggable and visually anchored even when collinear.
func compact(points []*geo.Point, handle *geo.Point) geo.Route {
	deduped := make([]*geo.Point, 0, len(points))
	for _, p := range points {
		if len(deduped) > 0 && p.Equals(deduped[len(deduped)-1]) {
			continue
		}
		deduped = append(deduped, p)
	}
	if len(deduped) < 3 {
		return deduped
	}

	out := []*geo.Point{deduped[0]}
	for i := 1; i < len(deduped)-1; i++ {
		at := deduped[i]
		prev := out[len(out)-1]
		// collapsing a reversal can fold the scan back onto the last kept point
		if at.Equals(prev) {
			continue
		}
		if at.Equals(handle) {
			out = append(out, at)
			continue
		}
		next := deduped[i+1]
		sameX := prev.X == at.X && at.X == next.X
		sameY := prev.Y == at.Y && at.Y == next.Y
		if sameX || sameY {
			continue
		}
		out = append(out, at)
	}
	last := deduped[len(deduped)-1]
	if !last.Equals(out[len(out)-1]) {
		out = append(out, last)
	}
	return out
}

// exitLegal checks the turns adjacent to each anchor: the route is walked
// outward from the anchor, and the turn's moving segment may not go against
// the anchor's exit direction. In forward order the end-anchor rule reads as
// "arrive moving opposite the stored direction", i.e. into the shape.
func exitLegal(route geo.Route, startDir, endDir geo.Direction) bool {
	if len(route) < 3 {
		return true
	}
	n := len(route)
	if startDir != geo.NoDirection {
		if !isTurnAllowed(route[0], route[1], route[2], startDir) {
			return false
		}
	}
	if endDir != geo.NoDirection {
		if !isTurnAllowed(route[n-1], route[n-2], route[n-3], endDir) {
			return false
		}
	}
	return true
}

// isTurnAllowed examines only the turn's second segment (at -> next). A
// horizontal segment must move in the exit direction's horizontal sense, a
// vertical one in its vertical sense. Anything else (degenerate or diagonal,
// which construction never produces) is permissively allowed.
func isTurnAllowed(prev, at, next *geo.Point, exitDir geo.Direction) bool {
	dx := next.X - at.X
	dy := next.Y - at.Y
	switch {
	case dy == 0 && dx != 0:
		if exitDir == geo.Right {
			return dx >= 0
		}
		if exitDir == geo.Left {
			return dx <= 0
		}
	case dx == 0 && dy != 0:
		if exitDir == geo.Down {
			return dy >= 0
		}
		if exitDir == geo.Up {
			return dy <= 0
		}
	}
	return true
}

// illegalCrossings counts intersections between non-adjacent segments of the
// polyline. Zero-length segments are dropped first so degenerate points
// can't poison the range math.
func illegalCrossings(route geo.Route) int {
	segments := make([]geo.Segment, 0, len(route))
	for i := 0; i+1 < len(route); i++ {
		s := geo.Segment{Start: route[i], End: route[i+1]}
		if s.IsZeroLength() {
			continue
		}
		segments = append(segments, s)
	}

	crossings := 0
	for i := 0; i < len(segments); i++ {
		for j := i + 2; j < len(segments); j++ {
			if segments[i].IntersectsOrthogonal(segments[j]) {
				crossings++
			}
		}
	}
	return crossings
}
