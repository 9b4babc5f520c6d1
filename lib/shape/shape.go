// Package shape holds the widget shape registry: shape type tags and the
// per-shape anchor tables connectors snap to. Anchors are percentage
// coordinates on the shape's unrotated bounding box, so they are
// resolution-independent.
package shape

const (
	RECTANGLE_TYPE         = "Rectangle"
	ROUNDED_RECTANGLE_TYPE = "RoundedRectangle"
	ELLIPSE_TYPE           = "Ellipse"
	TRIANGLE_TYPE          = "Triangle"
	RIGHT_TRIANGLE_TYPE    = "RightTriangle"
	DIAMOND_TYPE           = "Diamond"
	PARALLELOGRAM_TYPE     = "Parallelogram"
	TRAPEZOID_TYPE         = "Trapezoid"
	PENTAGON_TYPE          = "Pentagon"
	HEXAGON_TYPE           = "Hexagon"
	CHEVRON_TYPE           = "Chevron"
	ARROW_TYPE             = "Arrow"
	STAR_TYPE              = "Star"
	CYLINDER_TYPE          = "Cylinder"
	CLOUD_TYPE             = "Cloud"
	CALLOUT_TYPE           = "Callout"
	TEXT_TYPE              = "Text"
	IMAGE_TYPE             = "Image"

	ELBOW_CONNECTOR_TYPE = "ElbowConnector"
	CURVE_CONNECTOR_TYPE = "CurveConnector"
	LINE_CONNECTOR_TYPE  = "LineConnector"
)

// Anchor names follow the side they sit on: the prefix is what the anchor
// resolver derives exit directions from.
const (
	AnchorTop         = "top"
	AnchorTopRight    = "top-right"
	AnchorRight       = "right"
	AnchorBottomRight = "bottom-right"
	AnchorBottom      = "bottom"
	AnchorBottomLeft  = "bottom-left"
	AnchorLeft        = "left"
	AnchorTopLeft     = "top-left"
)

// Anchor is a named point on a shape's unrotated bounding box, as
// percentages (0-100) of its width and height.
type Anchor struct {
	Position    string
	XPercentage float64
	YPercentage float64
}

// GetAnchors returns the anchor set for a shape type. Unregistered types get
// the rectangular 8-point set; the result is never empty.
func GetAnchors(shapeType string) []Anchor {
	switch shapeType {
	case ELLIPSE_TYPE:
		return ellipseAnchors()
	case TRIANGLE_TYPE:
		return triangleAnchors()
	case RIGHT_TRIANGLE_TYPE:
		return rightTriangleAnchors()
	case DIAMOND_TYPE:
		return diamondAnchors()
	case PARALLELOGRAM_TYPE:
		return parallelogramAnchors()
	case TRAPEZOID_TYPE:
		return trapezoidAnchors()
	case PENTAGON_TYPE:
		return pentagonAnchors()
	case HEXAGON_TYPE:
		return hexagonAnchors()
	case CHEVRON_TYPE:
		return chevronAnchors()
	case ARROW_TYPE:
		return arrowAnchors()
	case STAR_TYPE:
		return starAnchors()
	case CYLINDER_TYPE:
		return cylinderAnchors()
	case CLOUD_TYPE:
		return cloudAnchors()
	case CALLOUT_TYPE:
		return calloutAnchors()
	default:
		return rectangularAnchors()
	}
}

func rectangularAnchors() []Anchor {
	return []Anchor{
		{AnchorTop, 50, 0},
		{AnchorTopRight, 100, 0},
		{AnchorRight, 100, 50},
		{AnchorBottomRight, 100, 100},
		{AnchorBottom, 50, 100},
		{AnchorBottomLeft, 0, 100},
		{AnchorLeft, 0, 50},
		{AnchorTopLeft, 0, 0},
	}
}

// IsConnector reports whether the shape type is one of the connector kinds.
// Connectors don't expose anchors and are skipped when snapping.
func IsConnector(shapeType string) bool {
	switch shapeType {
	case ELBOW_CONNECTOR_TYPE, CURVE_CONNECTOR_TYPE, LINE_CONNECTOR_TYPE:
		return true
	}
	return false
}
