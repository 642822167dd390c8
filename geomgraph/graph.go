package geomgraph

import "github.com/davidreynolds/planar/geom"

// A GeometryGraph ties one input geometry of an overlay operation to the
// boundary semantics its edges were labelled with. The two inputs are
// identified by indices 0 and 1 throughout the package.
type GeometryGraph struct {
	g    geom.Geometry
	rule BoundaryNodeRule
}

// NewGeometryGraph wraps g with rule. A nil rule selects the OGC SFS rule; a
// nil geometry locates every point Exterior.
func NewGeometryGraph(g geom.Geometry, rule BoundaryNodeRule) *GeometryGraph {
	if rule == nil {
		rule = OGCSFSBoundaryNodeRule
	}
	return &GeometryGraph{g: g, rule: rule}
}

func (gg *GeometryGraph) Geometry() geom.Geometry { return gg.g }

func (gg *GeometryGraph) BoundaryNodeRule() BoundaryNodeRule { return gg.rule }
