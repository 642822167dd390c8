package geom

import (
	"testing"

	"github.com/golang/geo/r2"
)

func square(x0, y0, x1, y1 float64) Ring {
	return Ring{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestLocatePointInRing(t *testing.T) {
	ring := square(0, 0, 10, 10)
	tests := []struct {
		p    r2.Point
		want Location
	}{
		{r2.Point{X: 5, Y: 5}, Interior},
		{r2.Point{X: 15, Y: 5}, Exterior},
		{r2.Point{X: -3, Y: 5}, Exterior},
		{r2.Point{X: 0, Y: 5}, Boundary},  // on a vertical edge
		{r2.Point{X: 5, Y: 0}, Boundary},  // on a horizontal edge
		{r2.Point{X: 0, Y: 0}, Boundary},  // on a vertex
		{r2.Point{X: 5, Y: 10}, Boundary}, // on the top edge
		{r2.Point{X: 5, Y: 15}, Exterior}, // directly above
	}
	for _, test := range tests {
		if got := LocatePointInRing(test.p, ring); got != test.want {
			t.Errorf("LocatePointInRing(%v) = %v, want %v", test.p, got, test.want)
		}
	}
}

func TestLocatePointInDegenerateRing(t *testing.T) {
	ring := Ring{{X: 0, Y: 0}, {X: 10, Y: 0}}
	if got := LocatePointInRing(r2.Point{X: 5, Y: 5}, ring); got != Exterior {
		t.Errorf("point off a degenerate ring located %v, want exterior", got)
	}
	if got := LocatePointInRing(r2.Point{X: 5, Y: 0}, ring); got != Boundary {
		t.Errorf("point on a degenerate ring located %v, want boundary", got)
	}
}

func TestAreaLocate(t *testing.T) {
	a := &Area{
		Shell: square(0, 0, 10, 10),
		Holes: []Ring{square(4, 4, 6, 6)},
	}
	tests := []struct {
		p    r2.Point
		want Location
	}{
		{r2.Point{X: 2, Y: 2}, Interior},
		{r2.Point{X: 5, Y: 5}, Exterior}, // inside the hole
		{r2.Point{X: 4, Y: 5}, Boundary}, // on the hole boundary
		{r2.Point{X: 0, Y: 5}, Boundary}, // on the shell
		{r2.Point{X: 11, Y: 5}, Exterior},
	}
	for _, test := range tests {
		if got := a.Locate(test.p); got != test.want {
			t.Errorf("Locate(%v) = %v, want %v", test.p, got, test.want)
		}
	}
}

func TestCollectionLocate(t *testing.T) {
	var empty Collection
	if got := empty.Locate(r2.Point{X: 1, Y: 1}); got != Exterior {
		t.Errorf("empty collection located %v, want exterior", got)
	}

	c := Collection{
		{Shell: square(0, 0, 4, 4)},
		{Shell: square(10, 0, 14, 4)},
	}
	tests := []struct {
		p    r2.Point
		want Location
	}{
		{r2.Point{X: 2, Y: 2}, Interior},
		{r2.Point{X: 12, Y: 2}, Interior},
		{r2.Point{X: 10, Y: 2}, Boundary},
		{r2.Point{X: 7, Y: 2}, Exterior},
	}
	for _, test := range tests {
		if got := c.Locate(test.p); got != test.want {
			t.Errorf("Locate(%v) = %v, want %v", test.p, got, test.want)
		}
	}
}
