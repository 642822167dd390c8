package geom

import "github.com/golang/geo/r2"

// A Ring is a closed chain of vertices in the plane. The segment from the
// last vertex back to the first is implicit; a duplicated closing vertex is
// tolerated. Rings with fewer than three distinct vertices enclose nothing.
type Ring []r2.Point

// An Area is a polygon: one shell ring and zero or more hole rings. The
// locator does not require any particular orientation of the rings, and it
// assumes the holes are properly nested inside the shell.
type Area struct {
	Shell Ring
	Holes []Ring
}

// A Geometry is anything points can be located against.
type Geometry interface {
	// Locate classifies p as Interior, Boundary or Exterior to the
	// geometry. It never returns NoLocation.
	Locate(p r2.Point) Location
}

// Locate classifies p against the area: on any ring it is Boundary, inside
// the shell but outside every hole it is Interior, anywhere else Exterior.
func (a *Area) Locate(p r2.Point) Location {
	loc := LocatePointInRing(p, a.Shell)
	if loc != Interior {
		return loc
	}
	for _, h := range a.Holes {
		switch LocatePointInRing(p, h) {
		case Boundary:
			return Boundary
		case Interior:
			return Exterior
		}
	}
	return Interior
}

// A Collection locates points against the union of several areas. An empty
// collection classifies every point as Exterior.
type Collection []*Area

func (c Collection) Locate(p r2.Point) Location {
	loc := Exterior
	for _, a := range c {
		switch a.Locate(p) {
		case Interior:
			return Interior
		case Boundary:
			loc = Boundary
		}
	}
	return loc
}

// LocatePointInRing reports where p lies relative to ring, by counting the
// crossings of a ray running from p in the positive x direction.
func LocatePointInRing(p r2.Point, ring Ring) Location {
	c := crossingCounter{p: p}
	n := len(ring)
	for i := 0; i < n; i++ {
		c.countSegment(ring[i], ring[(i+1)%n])
		if c.onSegment {
			return Boundary
		}
	}
	if c.crossings%2 == 1 {
		return Interior
	}
	return Exterior
}

type crossingCounter struct {
	p         r2.Point
	crossings int
	onSegment bool
}

func (c *crossingCounter) countSegment(p1, p2 r2.Point) {
	// Segments strictly to the left of the test point cannot cross the ray.
	if p1.X < c.p.X && p2.X < c.p.X {
		return
	}

	if c.p == p2 {
		c.onSegment = true
		return
	}

	// Horizontal segments can only put the point on the boundary; they are
	// never counted as crossings.
	if p1.Y == c.p.Y && p2.Y == c.p.Y {
		minX, maxX := p1.X, p2.X
		if minX > maxX {
			minX, maxX = maxX, minX
		}
		if c.p.X >= minX && c.p.X <= maxX {
			c.onSegment = true
		}
		return
	}

	// To avoid double-counting shared vertices, an upward edge includes its
	// starting endpoint and excludes its final endpoint, while a downward
	// edge excludes its starting endpoint and includes its final one.
	if (p1.Y > c.p.Y && p2.Y <= c.p.Y) || (p2.Y > c.p.Y && p1.Y <= c.p.Y) {
		s := Orientation(c.p, p1, p2)
		if s == 0 {
			c.onSegment = true
			return
		}
		if p2.Y < p1.Y {
			s = -s
		}
		// The segment crosses the ray strictly to the right of p.
		if s > 0 {
			c.crossings++
		}
	}
}
