package geomgraph

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// A TopologyError reports an inconsistency in the labelling of a node,
// together with the coordinate where it was found. It indicates malformed
// input topology and is not recoverable by the star.
type TopologyError struct {
	Msg string
	Pt  r2.Point
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("%s [ (%v, %v) ]", e.Msg, e.Pt.X, e.Pt.Y)
}
