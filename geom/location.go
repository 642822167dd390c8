package geom

// A Location classifies a point, or one side of an edge, relative to a
// geometry.
type Location int

const (
	// NoLocation means the location has not been determined yet.
	NoLocation Location = iota
	Interior
	Boundary
	Exterior
)

func (l Location) String() string {
	switch l {
	case Interior:
		return "interior"
	case Boundary:
		return "boundary"
	case Exterior:
		return "exterior"
	}
	return "none"
}

// A Position identifies one of the three location slots an edge carries per
// geometry: the edge itself (On), or the face to its left or right. Left and
// Right are relative to the edge's direction of travel.
type Position int

const (
	On Position = iota
	Left
	Right
)

func (p Position) String() string {
	switch p {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "on"
}

// Opposite returns Right for Left and vice versa. On is its own opposite.
func (p Position) Opposite() Position {
	switch p {
	case Left:
		return Right
	case Right:
		return Left
	}
	return On
}
