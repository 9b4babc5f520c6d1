package routing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.inkboard.dev/connect/lib/geo"
)

func routesEqual(a, b geo.Route) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

func TestPlanElbowDegenerateCollapse(t *testing.T) {
	route := PlanElbow(ElbowRequest{
		Start: geo.NewPoint(0, 0),
		End:   geo.NewPoint(0, 50),
	})

	if len(route) != 2 {
		t.Fatalf("expected 2 points, got %s", geo.Points(route).ToString())
	}
	assert.True(t, route[0].Equals(geo.NewPoint(0, 0)))
	assert.True(t, route[1].Equals(geo.NewPoint(0, 50)))
}

func TestPlanElbowDefaultSingleBend(t *testing.T) {
	// unconstrained endpoints bend once at {start.x, end.y}
	route := PlanElbow(ElbowRequest{
		Start: geo.NewPoint(0, 0),
		End:   geo.NewPoint(100, 50),
	})

	expected := geo.Route{
		geo.NewPoint(0, 0),
		geo.NewPoint(0, 50),
		geo.NewPoint(100, 50),
	}
	if !routesEqual(route, expected) {
		t.Fatalf("expected %s, got %s", geo.Points(expected).ToString(), geo.Points(route).ToString())
	}
}

func TestPlanElbowHandlePreserved(t *testing.T) {
	// control (100, 50) puts the handle at (100, 50), collinear with the
	// vertical run around it; compaction must keep it anyway
	route := PlanElbow(ElbowRequest{
		Start:    geo.NewPoint(0, 0),
		End:      geo.NewPoint(200, 100),
		Control:  geo.NewPoint(100, 50),
		StartDir: geo.Right,
		EndDir:   geo.Left,
	})

	handle := HandlePoint(geo.NewPoint(0, 0), geo.NewPoint(200, 100), geo.NewPoint(100, 50))
	assert.True(t, handle.Equals(geo.NewPoint(100, 50)))

	found := false
	for _, p := range route {
		if p.Equals(handle) {
			found = true
		}
	}
	assert.True(t, found, "handle missing from %s", geo.Points(route).ToString())
	assert.True(t, route.IsOrthogonal())
	assert.Zero(t, illegalCrossings(route))
}

func TestPlanElbowDirectionCompliance(t *testing.T) {
	route := PlanElbow(ElbowRequest{
		Start:    geo.NewPoint(0, 0),
		End:      geo.NewPoint(200, 100),
		Control:  geo.NewPoint(100, 50),
		StartDir: geo.Right,
		EndDir:   geo.Left,
	})

	if len(route) < 2 {
		t.Fatalf("route too short: %s", geo.Points(route).ToString())
	}

	// leaves rightward
	first := route[1]
	assert.GreaterOrEqual(t, first.X, route[0].X)
	assert.Equal(t, route[0].Y, first.Y)

	// arrives moving rightward, into the left-facing anchor
	n := len(route)
	assert.GreaterOrEqual(t, route[n-1].X, route[n-2].X)
	assert.Equal(t, route[n-1].Y, route[n-2].Y)
}

func TestPlanElbowStubs(t *testing.T) {
	route := PlanElbow(ElbowRequest{
		Start:    geo.NewPoint(0, 0),
		End:      geo.NewPoint(300, 200),
		Control:  geo.NewPoint(150, 100),
		StartDir: geo.Right,
		EndDir:   geo.Left,
	})

	// the first segment must run at least the stub length before turning
	assert.True(t, route[0].Equals(geo.NewPoint(0, 0)))
	assert.Equal(t, 0., route[1].Y)
	assert.GreaterOrEqual(t, route[1].X, DefaultStubLength)

	n := len(route)
	assert.Equal(t, 200., route[n-2].Y)
	assert.LessOrEqual(t, route[n-2].X, 300.-DefaultStubLength)
}

func TestPlanElbowCustomStubLength(t *testing.T) {
	route := PlanElbow(ElbowRequest{
		Start:      geo.NewPoint(0, 0),
		End:        geo.NewPoint(300, 200),
		Control:    geo.NewPoint(150, 100),
		StartDir:   geo.Right,
		EndDir:     geo.Left,
		StubLength: 10,
	})
	assert.GreaterOrEqual(t, route[1].X, 10.)
}

func TestHandlePoint(t *testing.T) {
	start := geo.NewPoint(0, 0)
	end := geo.NewPoint(100, 40)

	// no control: implicit right-angle bend point
	h := HandlePoint(start, end, nil)
	assert.True(t, h.Equals(geo.NewPoint(0, 40)))

	// with control: quadratic midpoint, shared with the curved connector
	h = HandlePoint(start, end, geo.NewPoint(50, 100))
	assert.Equal(t, 50., h.X)
	assert.Equal(t, 60., h.Y)
}

func TestFallbackRouteAlwaysConstructible(t *testing.T) {
	req := ElbowRequest{
		Start:    geo.NewPoint(0, 0),
		End:      geo.NewPoint(40, 0),
		StartDir: geo.Right,
		EndDir:   geo.Right,
	}
	handle := HandlePoint(req.Start, req.End, req.Control)
	route := fallbackRoute(req, handle,
		projectStub(req.Start, req.StartDir, req.stubLength()),
		projectStub(req.End, req.EndDir, req.stubLength()))

	assert.GreaterOrEqual(t, len(route), 2)
	assert.True(t, route.IsOrthogonal())
}

func TestPlanElbowCoincidentEndpoints(t *testing.T) {
	route := PlanElbow(ElbowRequest{
		Start: geo.NewPoint(5, 5),
		End:   geo.NewPoint(5, 5),
	})
	assert.Equal(t, 2, len(route))
}

func randomDirection(rng *rand.Rand) geo.Direction {
	return []geo.Direction{
		geo.NoDirection, geo.Up, geo.Down, geo.Left, geo.Right,
	}[rng.Intn(5)]
}

// Route invariants hold for arbitrary inputs: a route always comes back, it
// is orthogonal, has no consecutive duplicates, and unless it is the
// fallback it is crossing-free.
func TestPlanElbowRandomizedInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		req := ElbowRequest{
			Start:    geo.NewPoint(float64(rng.Intn(800)), float64(rng.Intn(600))),
			End:      geo.NewPoint(float64(rng.Intn(800)), float64(rng.Intn(600))),
			StartDir: randomDirection(rng),
			EndDir:   randomDirection(rng),
		}
		if rng.Intn(2) == 0 {
			req.Control = geo.NewPoint(float64(rng.Intn(800)), float64(rng.Intn(600)))
		}

		route := PlanElbow(req)
		if len(route) < 2 {
			t.Fatalf("case %d: route too short: %s", i, geo.Points(route).ToString())
		}
		if !route.IsOrthogonal() {
			t.Fatalf("case %d: route not orthogonal: %s", i, geo.Points(route).ToString())
		}
		for j := 1; j < len(route); j++ {
			if route[j].Equals(route[j-1]) && !(len(route) == 2 && req.Start.Equals(req.End)) {
				t.Fatalf("case %d: consecutive duplicate at %d: %s", i, j, geo.Points(route).ToString())
			}
		}

		handle := HandlePoint(req.Start, req.End, req.Control)
		fallback := fallbackRoute(req, handle,
			projectStub(req.Start, req.StartDir, req.stubLength()),
			projectStub(req.End, req.EndDir, req.stubLength()))
		if !routesEqual(route, fallback) && illegalCrossings(route) > 0 {
			t.Fatalf("case %d: illegal crossings in %s", i, geo.Points(route).ToString())
		}
	}
}

func TestIsTurnAllowed(t *testing.T) {
	a := geo.NewPoint(0, 0)
	b := geo.NewPoint(30, 0)

	// horizontal second segment against each horizontal sense
	assert.True(t, isTurnAllowed(a, b, geo.NewPoint(60, 0), geo.Right))
	assert.False(t, isTurnAllowed(a, b, geo.NewPoint(10, 0), geo.Right))
	assert.False(t, isTurnAllowed(a, b, geo.NewPoint(60, 0), geo.Left))

	// vertical second segment is unconstrained by horizontal anchors
	assert.True(t, isTurnAllowed(a, b, geo.NewPoint(30, 50), geo.Right))
	assert.True(t, isTurnAllowed(a, b, geo.NewPoint(30, 50), geo.Left))

	// vertical senses
	assert.True(t, isTurnAllowed(a, geo.NewPoint(0, 30), geo.NewPoint(0, 60), geo.Down))
	assert.False(t, isTurnAllowed(a, geo.NewPoint(0, 30), geo.NewPoint(0, 10), geo.Down))
	assert.True(t, isTurnAllowed(a, geo.NewPoint(0, -30), geo.NewPoint(0, -60), geo.Up))
}
