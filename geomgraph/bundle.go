package geomgraph

import (
	"github.com/golang/geo/r2"

	"github.com/davidreynolds/planar/geom"
)

// An EdgeEndBundle is the set of edge-ends at a node that share a single
// direction, presented as one edge-end carrying their combined label.
type EdgeEndBundle struct {
	ends  []EdgeEnd
	label *Label
}

func newEdgeEndBundle(e EdgeEnd) *EdgeEndBundle {
	label := *e.Label()
	return &EdgeEndBundle{ends: []EdgeEnd{e}, label: &label}
}

func (b *EdgeEndBundle) Coordinate() r2.Point { return b.ends[0].Coordinate() }
func (b *EdgeEndBundle) Directed() r2.Point   { return b.ends[0].Directed() }
func (b *EdgeEndBundle) Label() *Label        { return b.label }

// Ends returns the bundled edge-ends in insertion order.
func (b *EdgeEndBundle) Ends() []EdgeEnd { return b.ends }

func (b *EdgeEndBundle) add(e EdgeEnd) { b.ends = append(b.ends, e) }

// ComputeLabel combines the labels of the bundled edge-ends. The On location
// for each geometry is Interior if any member is interior to it; when
// members end on the geometry's boundary, the boundary-node rule decides
// between Boundary and Interior from their count. Side locations favour
// Interior over Exterior, since coincident edges may bound the area from
// either side.
func (b *EdgeEndBundle) ComputeLabel(rule BoundaryNodeRule) {
	isArea := false
	for _, e := range b.ends {
		if e.Label().IsArea(0) || e.Label().IsArea(1) {
			isArea = true
		}
	}
	if isArea {
		b.label = NewNullAreaLabel()
	} else {
		b.label = &Label{}
	}
	for i := 0; i < 2; i++ {
		b.computeLabelOn(i, rule)
		if b.label.IsArea(i) {
			b.computeLabelSide(i, geom.Left)
			b.computeLabelSide(i, geom.Right)
		}
	}
}

func (b *EdgeEndBundle) computeLabelOn(geomIndex int, rule BoundaryNodeRule) {
	boundaryCount := 0
	foundInterior := false
	for _, e := range b.ends {
		switch e.Label().Location(geomIndex) {
		case geom.Boundary:
			boundaryCount++
		case geom.Interior:
			foundInterior = true
		}
	}
	loc := geom.NoLocation
	if foundInterior {
		loc = geom.Interior
	}
	if boundaryCount > 0 {
		loc = DetermineBoundary(rule, boundaryCount)
	}
	b.label.SetLocation(geomIndex, geom.On, loc)
}

func (b *EdgeEndBundle) computeLabelSide(geomIndex int, side geom.Position) {
	for _, e := range b.ends {
		if !e.Label().IsArea(geomIndex) {
			continue
		}
		switch e.Label().LocationAt(geomIndex, side) {
		case geom.Interior:
			b.label.SetLocation(geomIndex, side, geom.Interior)
			return
		case geom.Exterior:
			b.label.SetLocation(geomIndex, side, geom.Exterior)
		}
	}
}

// An EdgeEndBundleStar combines edge-ends with coincident directions into
// EdgeEndBundles, so that each direction leaving the node appears exactly
// once in the ordering.
type EdgeEndBundleStar struct {
	starCore
}

func NewEdgeEndBundleStar() *EdgeEndBundleStar { return &EdgeEndBundleStar{} }

var (
	_ EdgeEnd     = (*EdgeEndBundle)(nil)
	_ EdgeEndStar = (*EdgeEndBundleStar)(nil)
)

func (s *EdgeEndBundleStar) Insert(e EdgeEnd) {
	for i := range s.entries {
		if CompareDirection(s.entries[i].key, e) == 0 {
			s.entries[i].val.(*EdgeEndBundle).add(e)
			s.ordered = nil
			return
		}
	}
	s.insertEdgeEnd(e, newEdgeEndBundle(e))
}
