package routing

import (
	"oss.inkboard.dev/connect/lib/geo"
	"oss.inkboard.dev/connect/lib/shape"
)

// Bounds returns the tight box around the rendered connector path, expanded
// by buffer on all sides for stroke width. Elbow connectors delegate to
// PlanElbow and take the polyline's extrema, so the container always matches
// exactly what is rendered; curve connectors use the analytic quadratic
// extrema; anything else is treated as a straight segment.
func Bounds(shapeType string, req ElbowRequest, buffer float64) *geo.Box {
	switch shapeType {
	case shape.ELBOW_CONNECTOR_TYPE:
		route := PlanElbow(req)
		tl, br := route.GetBoundingBox()
		return geo.NewBoxFromPoints(tl, br).Expand(buffer)

	case shape.CURVE_CONNECTOR_TYPE:
		box := geo.NewBoxFromPoints(req.Start, req.End)
		if req.Control != nil {
			curve := geo.NewQuadraticBezier(req.Start, req.Control, req.End)
			for _, t := range curve.ExtremaTs() {
				box.ExtendTo(curve.At(t))
			}
		}
		return box.Expand(buffer)

	default:
		return geo.NewBoxFromPoints(req.Start, req.End).Expand(buffer)
	}
}
