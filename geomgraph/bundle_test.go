package geomgraph

import (
	"testing"

	"github.com/golang/geo/r2"

	"github.com/davidreynolds/planar/geom"
)

func TestBundleStarMergesCoincident(t *testing.T) {
	star := NewEdgeEndBundleStar()
	star.Insert(NewBasicEdgeEnd(r2.Point{}, r2.Point{X: 1, Y: 0}, NewLineLabel(0, geom.Boundary)))
	star.Insert(NewBasicEdgeEnd(r2.Point{}, r2.Point{X: 2, Y: 0}, NewLineLabel(0, geom.Boundary)))
	star.Insert(NewBasicEdgeEnd(r2.Point{}, r2.Point{X: 0, Y: 1}, NewLineLabel(0, geom.Boundary)))

	if got := star.Degree(); got != 2 {
		t.Fatalf("Degree() = %v, want 2", got)
	}
	bundle, ok := star.Edges()[0].(*EdgeEndBundle)
	if !ok {
		t.Fatalf("star member is %T, want *EdgeEndBundle", star.Edges()[0])
	}
	if got := len(bundle.Ends()); got != 2 {
		t.Errorf("len(bundle.Ends()) = %v, want 2", got)
	}
}

func TestBundleBoundaryParity(t *testing.T) {
	bundle := newEdgeEndBundle(
		NewBasicEdgeEnd(r2.Point{}, r2.Point{X: 1, Y: 0}, NewLineLabel(0, geom.Boundary)))
	bundle.add(
		NewBasicEdgeEnd(r2.Point{}, r2.Point{X: 1, Y: 0}, NewLineLabel(0, geom.Boundary)))

	// Two boundary edge-ends: an even count is interior under the mod-2
	// rule but boundary under the endpoint rule.
	bundle.ComputeLabel(Mod2BoundaryNodeRule)
	if got := bundle.Label().Location(0); got != geom.Interior {
		t.Errorf("mod-2 On location = %v, want interior", got)
	}
	bundle.ComputeLabel(EndpointBoundaryNodeRule)
	if got := bundle.Label().Location(0); got != geom.Boundary {
		t.Errorf("endpoint On location = %v, want boundary", got)
	}

	// The other geometry is untouched either way.
	if got := bundle.Label().Location(1); got != geom.NoLocation {
		t.Errorf("On location for geometry 1 = %v, want none", got)
	}
}

func TestBundleSideLabels(t *testing.T) {
	bundle := newEdgeEndBundle(NewBasicEdgeEnd(r2.Point{}, r2.Point{X: 1, Y: 0},
		NewAreaLabel(0, geom.Boundary, geom.Interior, geom.Exterior)))
	bundle.add(NewBasicEdgeEnd(r2.Point{}, r2.Point{X: 1, Y: 0},
		NewAreaLabel(0, geom.Boundary, geom.Exterior, geom.Exterior)))

	bundle.ComputeLabel(Mod2BoundaryNodeRule)
	// Interior wins over Exterior on a side: one of the coincident edges
	// bounds the area from the left.
	if got := bundle.Label().LocationAt(0, geom.Left); got != geom.Interior {
		t.Errorf("Left location = %v, want interior", got)
	}
	if got := bundle.Label().LocationAt(0, geom.Right); got != geom.Exterior {
		t.Errorf("Right location = %v, want exterior", got)
	}
	if got := bundle.Label().Location(0); got != geom.Interior {
		t.Errorf("On location = %v, want interior", got)
	}
}

// A node where boundary edges of both input areas cross: each direction is
// bundled per geometry and the full labelling resolves without consulting
// the locator.
func TestBundleStarLabelling(t *testing.T) {
	star := NewEdgeEndBundleStar()
	star.Insert(NewBasicEdgeEnd(r2.Point{}, r2.Point{X: 1, Y: 0},
		NewAreaLabel(0, geom.Boundary, geom.Interior, geom.Exterior)))
	star.Insert(NewBasicEdgeEnd(r2.Point{}, r2.Point{X: 1, Y: 0},
		NewAreaLabel(1, geom.Boundary, geom.Interior, geom.Exterior)))
	star.Insert(NewBasicEdgeEnd(r2.Point{}, r2.Point{X: -1, Y: 0},
		NewAreaLabel(0, geom.Boundary, geom.Exterior, geom.Interior)))
	star.Insert(NewBasicEdgeEnd(r2.Point{}, r2.Point{X: -1, Y: 0},
		NewAreaLabel(1, geom.Boundary, geom.Exterior, geom.Interior)))

	if got := star.Degree(); got != 2 {
		t.Fatalf("Degree() = %v, want 2", got)
	}

	counting := [2]*countingGeometry{
		{Geometry: geom.Collection(nil)},
		{Geometry: geom.Collection(nil)},
	}
	graphs := [2]*GeometryGraph{
		NewGeometryGraph(counting[0], nil),
		NewGeometryGraph(counting[1], nil),
	}
	if err := star.ComputeLabelling(graphs); err != nil {
		t.Fatalf("ComputeLabelling: %v", err)
	}
	if counting[0].calls != 0 || counting[1].calls != 0 {
		t.Errorf("locator queried %v/%v times, want 0/0", counting[0].calls, counting[1].calls)
	}

	for i := 0; i < 2; i++ {
		for _, e := range star.Edges() {
			if e.Label().IsAnyNull(i) {
				t.Errorf("bundle %v left unresolved for geometry %v: %v", e.Directed(), i, e.Label())
			}
		}
		if !star.AreaLabelsConsistent(i) {
			t.Errorf("labels for geometry %v inconsistent", i)
		}
	}
}
