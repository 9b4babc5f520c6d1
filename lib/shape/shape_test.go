package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var registeredTypes = []string{
	RECTANGLE_TYPE,
	ROUNDED_RECTANGLE_TYPE,
	ELLIPSE_TYPE,
	TRIANGLE_TYPE,
	RIGHT_TRIANGLE_TYPE,
	DIAMOND_TYPE,
	PARALLELOGRAM_TYPE,
	TRAPEZOID_TYPE,
	PENTAGON_TYPE,
	HEXAGON_TYPE,
	CHEVRON_TYPE,
	ARROW_TYPE,
	STAR_TYPE,
	CYLINDER_TYPE,
	CLOUD_TYPE,
	CALLOUT_TYPE,
	TEXT_TYPE,
	IMAGE_TYPE,
}

func TestAnchorsNonEmptyAndUnique(t *testing.T) {
	for _, shapeType := range registeredTypes {
		anchors := GetAnchors(shapeType)
		assert.NotEmpty(t, anchors, shapeType)

		seen := map[string]struct{}{}
		for _, a := range anchors {
			_, dup := seen[a.Position]
			assert.False(t, dup, "%s has duplicate anchor %q", shapeType, a.Position)
			seen[a.Position] = struct{}{}

			assert.GreaterOrEqual(t, a.XPercentage, 0., "%s %s", shapeType, a.Position)
			assert.LessOrEqual(t, a.XPercentage, 100., "%s %s", shapeType, a.Position)
			assert.GreaterOrEqual(t, a.YPercentage, 0., "%s %s", shapeType, a.Position)
			assert.LessOrEqual(t, a.YPercentage, 100., "%s %s", shapeType, a.Position)
		}
	}
}

func TestUnknownShapeFallsBackToRectangle(t *testing.T) {
	anchors := GetAnchors("NoSuchShape")
	assert.Equal(t, rectangularAnchors(), anchors)

	// rectangle itself uses the default set
	assert.Equal(t, rectangularAnchors(), GetAnchors(RECTANGLE_TYPE))
}

func TestIsConnector(t *testing.T) {
	assert.True(t, IsConnector(ELBOW_CONNECTOR_TYPE))
	assert.True(t, IsConnector(CURVE_CONNECTOR_TYPE))
	assert.True(t, IsConnector(LINE_CONNECTOR_TYPE))
	assert.False(t, IsConnector(RECTANGLE_TYPE))
	assert.False(t, IsConnector(""))
}
