package geomgraph

import "github.com/davidreynolds/planar/geom"

// A BoundaryNodeRule decides whether a node where boundaryCount edges of one
// geometry end is itself on that geometry's boundary. Different rules give
// different semantics for lineal geometry whose components touch.
type BoundaryNodeRule interface {
	IsInBoundary(boundaryCount int) bool
}

var (
	// Mod2BoundaryNodeRule is the OGC SFS rule: a node is on the boundary
	// when an odd number of boundary edges end there.
	Mod2BoundaryNodeRule BoundaryNodeRule = mod2Rule{}

	// EndpointBoundaryNodeRule puts every endpoint on the boundary,
	// however many components share it.
	EndpointBoundaryNodeRule BoundaryNodeRule = endpointRule{}

	// MultiValentEndBoundaryNodeRule puts a node on the boundary only when
	// more than one component ends there.
	MultiValentEndBoundaryNodeRule BoundaryNodeRule = multiValentRule{}

	// MonoValentEndBoundaryNodeRule puts a node on the boundary only when
	// exactly one component ends there.
	MonoValentEndBoundaryNodeRule BoundaryNodeRule = monoValentRule{}

	// OGCSFSBoundaryNodeRule is the rule used when none is specified.
	OGCSFSBoundaryNodeRule = Mod2BoundaryNodeRule
)

type mod2Rule struct{}

func (mod2Rule) IsInBoundary(boundaryCount int) bool { return boundaryCount%2 == 1 }

type endpointRule struct{}

func (endpointRule) IsInBoundary(boundaryCount int) bool { return boundaryCount > 0 }

type multiValentRule struct{}

func (multiValentRule) IsInBoundary(boundaryCount int) bool { return boundaryCount > 1 }

type monoValentRule struct{}

func (monoValentRule) IsInBoundary(boundaryCount int) bool { return boundaryCount == 1 }

// DetermineBoundary maps a count of boundary edge-ends at a node to the
// node's location under rule.
func DetermineBoundary(rule BoundaryNodeRule, boundaryCount int) geom.Location {
	if rule.IsInBoundary(boundaryCount) {
		return geom.Boundary
	}
	return geom.Interior
}
