// Package anchor resolves shape anchor geometry: absolute positions of named
// anchors on (possibly rotated) widget frames, their nominal exit directions,
// and nearest-anchor snapping for connector endpoints.
package anchor

import (
	"math"
	"strings"

	"oss.inkboard.dev/connect/lib/geo"
	"oss.inkboard.dev/connect/lib/shape"
)

// Frame is a widget's effective geometry: top-left position, size, and
// rotation in degrees (clockwise, about the center). Passed by value; the
// engine never holds on to live widget state.
type Frame struct {
	Position *geo.Point
	Width    float64
	Height   float64
	Rotation float64
}

// Widget is a snapshot of a widget as supplied by the surrounding editor's
// state layer, valid for the duration of one call.
type Widget struct {
	ID        string
	Type      string
	ShapeType string
	Frame     Frame
}

// Attachment is a durable, non-owning reference from a connector endpoint to
// a widget's named anchor. If the widget is gone, resolution fails and the
// endpoint falls back to a free point.
type Attachment struct {
	WidgetID string        `json:"widgetId"`
	Anchor   string        `json:"anchor"`
	Dir      geo.Direction `json:"dir,omitempty"`
}

// Direction returns the nominal outward direction of a named anchor.
// Unrecognized names return NoDirection, which relaxes routing constraints.
func Direction(anchorName string) geo.Direction {
	switch {
	case strings.HasPrefix(anchorName, "top"):
		return geo.Up
	case strings.HasPrefix(anchorName, "bottom"):
		return geo.Down
	case anchorName == "left":
		return geo.Left
	case anchorName == "right":
		return geo.Right
	}
	return geo.NoDirection
}

// DirectionWithRotation returns the anchor's nominal direction rotated by
// the nearest 90° multiple of the frame's rotation. Quarters round half up
// (floor(rotation/90 + 0.5)), so a 50° rotation maps to one quarter turn and
// 44° to none; negative rotations rotate counter-clockwise.
func DirectionWithRotation(anchorName string, rotationDegrees float64) geo.Direction {
	dir := Direction(anchorName)
	if dir == geo.NoDirection || rotationDegrees == 0 {
		return dir
	}
	quarters := int(math.Floor(rotationDegrees/90 + 0.5))
	return dir.RotateQuarters(quarters)
}

// FindAnchor looks up a named anchor in the shape's table.
func FindAnchor(shapeType, anchorName string) (shape.Anchor, bool) {
	for _, a := range shape.GetAnchors(shapeType) {
		if a.Position == anchorName {
			return a, true
		}
	}
	return shape.Anchor{}, false
}

// AbsolutePosition computes an anchor's canvas position on a frame. With
// zero rotation this is exact percentage math, no trigonometry; otherwise
// the unrotated local point is rotated about the frame's center.
func AbsolutePosition(frame Frame, a shape.Anchor) *geo.Point {
	localX := frame.Width * a.XPercentage / 100
	localY := frame.Height * a.YPercentage / 100

	if frame.Rotation == 0 {
		return geo.NewPoint(frame.Position.X+localX, frame.Position.Y+localY)
	}

	cx := frame.Width / 2
	cy := frame.Height / 2
	rad := frame.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)

	dx := localX - cx
	dy := localY - cy
	rotatedX := cx + dx*cos - dy*sin
	rotatedY := cy + dx*sin + dy*cos

	return geo.NewPoint(frame.Position.X+rotatedX, frame.Position.Y+rotatedY)
}
