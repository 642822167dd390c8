package geomgraph

import (
	"sort"

	"github.com/golang/geo/r2"

	"github.com/davidreynolds/planar/geom"
)

// An EdgeEndStar is the set of edge-ends leaving a single node, arranged
// counter-clockwise about it. Concrete stars differ only in their insertion
// policy, i.e. how edge-ends with coincident directions are combined; the
// ordering, navigation and labelling machinery is shared.
type EdgeEndStar interface {
	// Insert adds an edge-end to the star, applying the star's policy for
	// coincident directions.
	Insert(e EdgeEnd)

	Edges() []EdgeEnd
	Coordinate() (r2.Point, bool)
	Degree() int
	NextCW(e EdgeEnd) (EdgeEnd, bool)
	Find(e EdgeEnd) (int, bool)
	ComputeEdgeEndLabels(rule BoundaryNodeRule)
	ComputeLabelling(graphs [2]*GeometryGraph) error
	AreaLabelsConsistent(geomIndex int) bool
	IsAreaLabelsConsistent(gg *GeometryGraph) bool
}

// starCore implements everything about a star except its insertion policy.
type starCore struct {
	// Association list rather than a map: stars are small, and iterating a
	// slice is deterministic where map iteration is not. Keys are compared
	// by identity.
	entries []starEntry

	// Counter-clockwise view of the associated values; nil whenever an
	// insertion has happened since it was last built.
	ordered []EdgeEnd

	// Result of the point-in-area query per input geometry, computed at
	// most once over the life of the star.
	ptInAreaLocation [2]geom.Location
}

type starEntry struct {
	key EdgeEnd
	val EdgeEnd
}

// insertEdgeEnd records val under key's identity and invalidates the ordered
// view. Inserting under an existing key replaces its value.
func (s *starCore) insertEdgeEnd(key, val EdgeEnd) {
	for i := range s.entries {
		if s.entries[i].key == key {
			s.entries[i].val = val
			s.ordered = nil
			return
		}
	}
	s.entries = append(s.entries, starEntry{key, val})
	s.ordered = nil
}

type byDirection []EdgeEnd

func (x byDirection) Len() int           { return len(x) }
func (x byDirection) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }
func (x byDirection) Less(i, j int) bool { return CompareDirection(x[i], x[j]) < 0 }

// Edges returns the edge-ends in counter-clockwise order, rebuilding the
// ordered view if an insertion has invalidated it. Every read operation on
// the star goes through here, so no read ever sees a stale ordering.
func (s *starCore) Edges() []EdgeEnd {
	if s.ordered == nil {
		s.ordered = make([]EdgeEnd, 0, len(s.entries))
		for _, ent := range s.entries {
			s.ordered = append(s.ordered, ent.val)
		}
		// A stable sort keeps coincident directions in insertion order.
		sort.Stable(byDirection(s.ordered))
	}
	return s.ordered
}

// Coordinate returns the node's location, shared by every edge-end in the
// star. ok is false for an empty star.
func (s *starCore) Coordinate() (r2.Point, bool) {
	edges := s.Edges()
	if len(edges) == 0 {
		return r2.Point{}, false
	}
	return edges[0].Coordinate(), true
}

// Degree returns the number of edge-ends in the star.
func (s *starCore) Degree() int { return len(s.Edges()) }

// Find returns the position of e in the counter-clockwise ordering, located
// by identity. ok is false when e is not a member of the star.
func (s *starCore) Find(e EdgeEnd) (int, bool) {
	for i, cur := range s.Edges() {
		if cur == e {
			return i, true
		}
	}
	return -1, false
}

// NextCW returns the neighbour of e in the clockwise direction, i.e. the
// previous element of the counter-clockwise ordering, wrapping past the
// start. ok is false when e is not a member of the star.
func (s *starCore) NextCW(e EdgeEnd) (EdgeEnd, bool) {
	i, ok := s.Find(e)
	if !ok {
		return nil, false
	}
	edges := s.Edges()
	return edges[(i-1+len(edges))%len(edges)], true
}

// ComputeEdgeEndLabels has each edge-end derive the locations that follow
// from its own incident edges alone.
func (s *starCore) ComputeEdgeEndLabels(rule BoundaryNodeRule) {
	for _, e := range s.Edges() {
		e.ComputeLabel(rule)
	}
}

// ComputeLabelling completes the label of every edge-end in the star. Each
// end first derives what it can from its own edges; side locations are then
// propagated around the star for both geometries; finally any label still
// unresolved for a geometry is settled with a point-in-area query against
// that input (or forced Exterior when a dimensional collapse at the node
// makes the query meaningless).
func (s *starCore) ComputeLabelling(graphs [2]*GeometryGraph) error {
	s.ComputeEdgeEndLabels(graphs[0].BoundaryNodeRule())
	if err := s.propagateSideLabels(0); err != nil {
		return err
	}
	if err := s.propagateSideLabels(1); err != nil {
		return err
	}

	// A line edge labelled Boundary for a geometry means the geometry
	// collapses to a lower dimension at this node. The area that would
	// resolve the remaining labels is not actually present, so they must
	// be Exterior.
	var hasDimensionalCollapseEdge [2]bool
	for _, e := range s.Edges() {
		label := e.Label()
		for i := 0; i < 2; i++ {
			if label.IsLine(i) && label.Location(i) == geom.Boundary {
				hasDimensionalCollapseEdge[i] = true
			}
		}
	}

	for _, e := range s.Edges() {
		label := e.Label()
		for i := 0; i < 2; i++ {
			if !label.IsAnyNull(i) {
				continue
			}
			loc := geom.Exterior
			if !hasDimensionalCollapseEdge[i] {
				p, _ := s.Coordinate()
				loc = s.location(i, p, graphs)
			}
			label.SetAllLocationsIfNull(i, loc)
		}
	}
	return nil
}

// location classifies the node against input geometry i, querying the
// point-in-area locator at most once per geometry for the life of the star.
func (s *starCore) location(i int, p r2.Point, graphs [2]*GeometryGraph) geom.Location {
	if s.ptInAreaLocation[i] == geom.NoLocation {
		g := graphs[i].Geometry()
		if g == nil {
			s.ptInAreaLocation[i] = geom.Exterior
		} else {
			s.ptInAreaLocation[i] = g.Locate(p)
		}
	}
	return s.ptInAreaLocation[i]
}

// propagateSideLabels extends the side locations of geometry geomIndex's
// area edges around the star. Traversing counter-clockwise, each edge's
// right side must agree with the location carried over from the previous
// edge's left side; an edge that carries no side information for this
// geometry lies wholly on one side of it, so the running location does not
// change across it and is assigned to both of its sides.
func (s *starCore) propagateSideLabels(geomIndex int) error {
	// Seed from the left side of the last edge that has one.
	startLoc := geom.NoLocation
	for _, e := range s.Edges() {
		label := e.Label()
		if label.IsArea(geomIndex) && label.LocationAt(geomIndex, geom.Left) != geom.NoLocation {
			startLoc = label.LocationAt(geomIndex, geom.Left)
		}
	}
	// No area edge carries a side location for this geometry.
	if startLoc == geom.NoLocation {
		return nil
	}

	currLoc := startLoc
	for _, e := range s.Edges() {
		label := e.Label()
		if label.LocationAt(geomIndex, geom.On) == geom.NoLocation {
			label.SetLocation(geomIndex, geom.On, currLoc)
		}
		if !label.IsArea(geomIndex) {
			continue
		}
		leftLoc := label.LocationAt(geomIndex, geom.Left)
		rightLoc := label.LocationAt(geomIndex, geom.Right)
		if rightLoc != geom.NoLocation {
			if rightLoc != currLoc {
				return &TopologyError{Msg: "side location conflict", Pt: e.Coordinate()}
			}
			currLoc = leftLoc
		} else {
			label.SetLocation(geomIndex, geom.Right, currLoc)
			label.SetLocation(geomIndex, geom.Left, currLoc)
		}
	}
	return nil
}

// AreaLabelsConsistent reports whether the side labels of geometry
// geomIndex's edges alternate consistently around the star: traversing
// counter-clockwise, each edge's right side must match the left side of the
// edge before it, and no edge may bound the same location on both sides. It
// never modifies any label. An empty star is consistent.
func (s *starCore) AreaLabelsConsistent(geomIndex int) bool {
	edges := s.Edges()
	if len(edges) == 0 {
		return true
	}
	// The running location starts from the left side of the last edge-end.
	last := edges[len(edges)-1].Label()
	currLoc := last.LocationAt(geomIndex, geom.Left)
	for _, e := range edges {
		label := e.Label()
		leftLoc := label.LocationAt(geomIndex, geom.Left)
		rightLoc := label.LocationAt(geomIndex, geom.Right)
		if leftLoc == rightLoc {
			return false
		}
		if rightLoc != currLoc {
			return false
		}
		currLoc = leftLoc
	}
	return true
}

// IsAreaLabelsConsistent recomputes the intrinsic labels under gg's boundary
// rule and then validates the alternation of geometry 0's side labels.
func (s *starCore) IsAreaLabelsConsistent(gg *GeometryGraph) bool {
	s.ComputeEdgeEndLabels(gg.BoundaryNodeRule())
	return s.AreaLabelsConsistent(0)
}

// A BasicEdgeEndStar keeps every inserted edge-end as its own member, even
// when directions coincide.
type BasicEdgeEndStar struct {
	starCore
}

func NewBasicEdgeEndStar() *BasicEdgeEndStar { return &BasicEdgeEndStar{} }

var _ EdgeEndStar = (*BasicEdgeEndStar)(nil)

func (s *BasicEdgeEndStar) Insert(e EdgeEnd) {
	s.insertEdgeEnd(e, e)
}
