package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.inkboard.dev/connect/lib/geo"
	"oss.inkboard.dev/connect/lib/shape"
)

func TestBoundsElbowMatchesRoute(t *testing.T) {
	req := ElbowRequest{
		Start:    geo.NewPoint(10, 20),
		End:      geo.NewPoint(310, 220),
		Control:  geo.NewPoint(160, 120),
		StartDir: geo.Right,
		EndDir:   geo.Left,
	}

	box := Bounds(shape.ELBOW_CONNECTOR_TYPE, req, 0)
	tl, br := PlanElbow(req).GetBoundingBox()

	assert.True(t, box.TopLeft.Equals(tl))
	assert.True(t, box.BottomRight().Equals(br))
}

func TestBoundsElbowBuffer(t *testing.T) {
	req := ElbowRequest{
		Start: geo.NewPoint(0, 0),
		End:   geo.NewPoint(100, 50),
	}

	box := Bounds(shape.ELBOW_CONNECTOR_TYPE, req, 4)
	assert.True(t, box.TopLeft.Equals(geo.NewPoint(-4, -4)))
	assert.True(t, box.BottomRight().Equals(geo.NewPoint(104, 54)))
}

func TestBoundsCurveExtrema(t *testing.T) {
	// symmetric arch: the curve peaks at y=50, above both endpoints
	req := ElbowRequest{
		Start:   geo.NewPoint(0, 100),
		End:     geo.NewPoint(100, 100),
		Control: geo.NewPoint(50, 0),
	}

	box := Bounds(shape.CURVE_CONNECTOR_TYPE, req, 0)
	assert.True(t, box.TopLeft.Equals(geo.NewPoint(0, 50)))
	assert.True(t, box.BottomRight().Equals(geo.NewPoint(100, 100)))
}

func TestBoundsCurveWithoutControl(t *testing.T) {
	req := ElbowRequest{
		Start: geo.NewPoint(20, 30),
		End:   geo.NewPoint(120, 10),
	}

	box := Bounds(shape.CURVE_CONNECTOR_TYPE, req, 2)
	assert.True(t, box.TopLeft.Equals(geo.NewPoint(18, 8)))
	assert.True(t, box.BottomRight().Equals(geo.NewPoint(122, 32)))
}

func TestBoundsLine(t *testing.T) {
	req := ElbowRequest{
		Start: geo.NewPoint(0, 0),
		End:   geo.NewPoint(50, 80),
	}

	box := Bounds(shape.LINE_CONNECTOR_TYPE, req, 0)
	assert.Equal(t, 50., box.Width)
	assert.Equal(t, 80., box.Height)
}

func TestBoundsNearlyLinearCurve(t *testing.T) {
	// control collinear with the endpoints: epsilon guard skips the
	// extremum division, bounds are just the endpoints
	req := ElbowRequest{
		Start:   geo.NewPoint(0, 0),
		End:     geo.NewPoint(100, 0),
		Control: geo.NewPoint(50, 0),
	}

	box := Bounds(shape.CURVE_CONNECTOR_TYPE, req, 0)
	assert.True(t, box.TopLeft.Equals(geo.NewPoint(0, 0)))
	assert.Equal(t, 100., box.Width)
	assert.Equal(t, 0., box.Height)
}
