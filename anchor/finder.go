package anchor

import (
	"context"

	"cdr.dev/slog"

	"oss.inkboard.dev/connect/lib/geo"
	"oss.inkboard.dev/connect/lib/go2"
	"oss.inkboard.dev/connect/lib/log"
	"oss.inkboard.dev/connect/lib/shape"
)

// DefaultSnapThreshold is how close the cursor must be to an anchor, in
// canvas pixels, before a connector endpoint snaps to it.
const DefaultSnapThreshold = 20.

// WidgetSource supplies widget snapshots per page. Implementations must
// return effective frames, with any in-progress drag or resize overrides
// already applied.
type WidgetSource interface {
	WidgetsOnPage(pageID string) []Widget
}

// Nearest describes the winning snap target.
type Nearest struct {
	Widget    Widget
	Anchor    shape.Anchor
	Position  *geo.Point
	Distance  float64
	Direction geo.Direction
}

// Attachment builds the durable endpoint reference for the snap target.
func (n *Nearest) Attachment() Attachment {
	return Attachment{
		WidgetID: n.Widget.ID,
		Anchor:   n.Anchor.Position,
		Dir:      n.Direction,
	}
}

// Finder runs nearest-anchor queries against a WidgetSource.
type Finder struct {
	Source WidgetSource

	// SnapThreshold overrides DefaultSnapThreshold when > 0.
	SnapThreshold float64
}

func NewFinder(source WidgetSource) *Finder {
	return &Finder{Source: source}
}

func (f *Finder) threshold() float64 {
	if f.SnapThreshold > 0 {
		return f.SnapThreshold
	}
	return DefaultSnapThreshold
}

// FindNearest returns the closest anchor to point among the page's
// non-connector widgets, excluding excludeWidgetID (the connector being
// dragged must not snap to itself). Returns nil when no anchor is within the
// snap threshold. Equidistant anchors keep the first one encountered, in
// source order then table order.
func (f *Finder) FindNearest(ctx context.Context, pageID string, point *geo.Point, excludeWidgetID string) *Nearest {
	var best *Nearest
	threshold := f.threshold()

	for _, w := range f.Source.WidgetsOnPage(pageID) {
		if w.ID == excludeWidgetID {
			continue
		}
		if shape.IsConnector(w.ShapeType) || shape.IsConnector(w.Type) {
			continue
		}

		for _, a := range shape.GetAnchors(w.ShapeType) {
			pos := AbsolutePosition(w.Frame, a)
			d := geo.EuclideanDistance(point.X, point.Y, pos.X, pos.Y)
			if d > threshold {
				continue
			}
			if best != nil && d >= best.Distance {
				continue
			}
			best = go2.Pointer(Nearest{
				Widget:    w,
				Anchor:    a,
				Position:  pos,
				Distance:  d,
				Direction: DirectionWithRotation(a.Position, w.Frame.Rotation),
			})
		}
	}

	if best != nil {
		log.Debug(ctx, "anchor snap",
			slog.F("widget", best.Widget.ID),
			slog.F("anchor", best.Anchor.Position),
			slog.F("distance", best.Distance),
		)
	}
	return best
}

// Resolve looks up an attachment's current absolute position and
// rotation-aware direction. ok is false when the widget or anchor no longer
// exists, in which case the endpoint should be treated as a free point.
func Resolve(src WidgetSource, pageID string, att Attachment) (pos *geo.Point, dir geo.Direction, ok bool) {
	for _, w := range src.WidgetsOnPage(pageID) {
		if w.ID != att.WidgetID {
			continue
		}
		a, found := FindAnchor(w.ShapeType, att.Anchor)
		if !found {
			return nil, geo.NoDirection, false
		}
		return AbsolutePosition(w.Frame, a), DirectionWithRotation(a.Position, w.Frame.Rotation), true
	}
	return nil, geo.NoDirection, false
}
