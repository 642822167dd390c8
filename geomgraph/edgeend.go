package geomgraph

import (
	"github.com/golang/geo/r2"

	"github.com/davidreynolds/planar/geom"
)

// An EdgeEnd is a directed ray leaving a node of the planar graph, headed
// toward the next coordinate along its parent edge. All edge-ends inserted
// into one star share the same origin; the caller that builds the graph is
// responsible for that.
type EdgeEnd interface {
	// Coordinate returns the origin of the ray (the node's location).
	Coordinate() r2.Point

	// Directed returns the coordinate the ray points toward.
	Directed() r2.Point

	Label() *Label

	// ComputeLabel derives whatever locations follow from the end's own
	// incident edges, under the boundary semantics in force. Locations it
	// cannot derive are left unknown for the star to fill in.
	ComputeLabel(rule BoundaryNodeRule)
}

// CompareDirection orders edge-ends counter-clockwise about their shared
// origin, starting from the positive x-axis: first by quadrant, then by the
// orientation of one ray's target about the other ray. The result is
// negative, zero or positive as a sorts before, equal to or after b; it is
// zero only for coincident directions.
func CompareDirection(a, b EdgeEnd) int {
	da := a.Directed().Sub(a.Coordinate())
	db := b.Directed().Sub(b.Coordinate())
	if da.X == db.X && da.Y == db.Y {
		return 0
	}
	qa := geom.Quadrant(da.X, da.Y)
	qb := geom.Quadrant(db.X, db.Y)
	if qa > qb {
		return 1
	}
	if qa < qb {
		return -1
	}
	// Within a quadrant, a sorts after b exactly when a's target lies to
	// the left of b's ray.
	return geom.Orientation(b.Coordinate(), b.Directed(), a.Directed())
}

// A BasicEdgeEnd is an edge-end whose label was assigned when the graph was
// built; ComputeLabel leaves it untouched.
type BasicEdgeEnd struct {
	origin   r2.Point
	directed r2.Point
	label    *Label
}

// NewBasicEdgeEnd returns an edge-end from origin toward directed. A nil
// label is replaced by an all-unknown area label.
func NewBasicEdgeEnd(origin, directed r2.Point, label *Label) *BasicEdgeEnd {
	if label == nil {
		label = NewNullAreaLabel()
	}
	return &BasicEdgeEnd{origin: origin, directed: directed, label: label}
}

var _ EdgeEnd = (*BasicEdgeEnd)(nil)

func (e *BasicEdgeEnd) Coordinate() r2.Point { return e.origin }
func (e *BasicEdgeEnd) Directed() r2.Point   { return e.directed }
func (e *BasicEdgeEnd) Label() *Label        { return e.label }

func (e *BasicEdgeEnd) ComputeLabel(BoundaryNodeRule) {}
