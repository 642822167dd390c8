package geomgraph

import (
	"fmt"

	"github.com/davidreynolds/planar/geom"
)

// A topoLocation holds the locations of one input geometry relative to an
// edge-end: only the On slot for ends derived from 1-dimensional input, or
// the full On/Left/Right triple for ends that bound an area.
type topoLocation struct {
	loc  [3]geom.Location // indexed by geom.Position; sides unused for lines
	area bool
}

func (t *topoLocation) isAnyNull() bool {
	if !t.area {
		return t.loc[geom.On] == geom.NoLocation
	}
	for _, l := range t.loc {
		if l == geom.NoLocation {
			return true
		}
	}
	return false
}

func (t *topoLocation) setAllIfNull(loc geom.Location) {
	if !t.area {
		if t.loc[geom.On] == geom.NoLocation {
			t.loc[geom.On] = loc
		}
		return
	}
	for i := range t.loc {
		if t.loc[i] == geom.NoLocation {
			t.loc[i] = loc
		}
	}
}

func (t topoLocation) String() string {
	if !t.area {
		return t.loc[geom.On].String()
	}
	return fmt.Sprintf("%v/%v/%v", t.loc[geom.Left], t.loc[geom.On], t.loc[geom.Right])
}

// A Label records, for each of the two input geometries of an overlay, where
// an edge-end lies relative to that geometry. The zero value is a line label
// with every location unknown.
type Label struct {
	elt [2]topoLocation
}

// NewLineLabel returns a label carrying a single On location for geometry
// geomIndex; the element for the other geometry is a line element with no
// location.
func NewLineLabel(geomIndex int, on geom.Location) *Label {
	l := &Label{}
	l.elt[geomIndex].loc[geom.On] = on
	return l
}

// NewAreaLabel returns a label whose elements carry the full side triple for
// both geometries, with only the element for geomIndex populated.
func NewAreaLabel(geomIndex int, on, left, right geom.Location) *Label {
	l := NewNullAreaLabel()
	l.elt[geomIndex].loc = [3]geom.Location{on, left, right}
	return l
}

// NewNullAreaLabel returns an area label with every location unknown for
// both geometries.
func NewNullAreaLabel() *Label {
	l := &Label{}
	l.elt[0].area = true
	l.elt[1].area = true
	return l
}

// IsLine reports whether only the On location is meaningful for geometry
// geomIndex.
func (l *Label) IsLine(geomIndex int) bool { return !l.elt[geomIndex].area }

// IsArea reports whether the element for geometry geomIndex carries side
// locations.
func (l *Label) IsArea(geomIndex int) bool { return l.elt[geomIndex].area }

// IsAnyNull reports whether any location for geometry geomIndex is still
// unknown.
func (l *Label) IsAnyNull(geomIndex int) bool { return l.elt[geomIndex].isAnyNull() }

// Location returns the On location for geometry geomIndex.
func (l *Label) Location(geomIndex int) geom.Location {
	return l.elt[geomIndex].loc[geom.On]
}

// LocationAt returns the location at pos for geometry geomIndex.
func (l *Label) LocationAt(geomIndex int, pos geom.Position) geom.Location {
	return l.elt[geomIndex].loc[pos]
}

// SetLocation sets the location at pos for geometry geomIndex.
func (l *Label) SetLocation(geomIndex int, pos geom.Position, loc geom.Location) {
	l.elt[geomIndex].loc[pos] = loc
}

// SetAllLocationsIfNull assigns loc to every still-unknown location for
// geometry geomIndex.
func (l *Label) SetAllLocationsIfNull(geomIndex int, loc geom.Location) {
	l.elt[geomIndex].setAllIfNull(loc)
}

// Merge adopts the locations of other wherever this label has none. If other
// carries side locations for a geometry this label treats as a line, the
// element is promoted to an area element first.
func (l *Label) Merge(other *Label) {
	for i := 0; i < 2; i++ {
		if other.elt[i].area && !l.elt[i].area {
			l.elt[i].area = true
		}
		for pos := range l.elt[i].loc {
			if l.elt[i].loc[pos] == geom.NoLocation {
				l.elt[i].loc[pos] = other.elt[i].loc[pos]
			}
		}
	}
}

func (l *Label) String() string {
	return fmt.Sprintf("a:%v b:%v", l.elt[0], l.elt[1])
}
