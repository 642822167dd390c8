package geom

import (
	"math/big"

	"github.com/golang/geo/r2"
)

// ccwErrBound is the relative error bound of the floating point orientation
// determinant. Results smaller than this (scaled by the magnitude of the
// computation) cannot be trusted and are recomputed exactly.
const ccwErrBound = (3.0 + 16.0*2.220446049250313e-16) * 2.220446049250313e-16

// Orientation returns 1 if the points a, b, c are in counter-clockwise
// order, -1 if they are in clockwise order, and 0 if they are collinear.
//
// The determinant is evaluated in floating point first; when its magnitude
// falls within rounding error of zero the sign is recomputed with exact
// rational arithmetic, so the result is always the true sign.
func Orientation(a, b, c r2.Point) int {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	var bound float64
	if detLeft > 0 {
		if detRight <= 0 {
			return sign(det)
		}
		bound = ccwErrBound * (detLeft + detRight)
	} else if detLeft < 0 {
		if detRight >= 0 {
			return sign(det)
		}
		bound = ccwErrBound * (-detLeft - detRight)
	} else {
		return sign(det)
	}
	if det >= bound || -det >= bound {
		return sign(det)
	}
	return exactOrientation(a, b, c)
}

func sign(x float64) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// exactOrientation evaluates the orientation determinant with rational
// arithmetic. Every float64 is representable as a big.Rat, so there is no
// rounding anywhere.
func exactOrientation(a, b, c r2.Point) int {
	ax := new(big.Rat).SetFloat64(a.X)
	ay := new(big.Rat).SetFloat64(a.Y)
	bx := new(big.Rat).SetFloat64(b.X)
	by := new(big.Rat).SetFloat64(b.Y)
	cx := new(big.Rat).SetFloat64(c.X)
	cy := new(big.Rat).SetFloat64(c.Y)

	left := new(big.Rat).Mul(ax.Sub(ax, cx), by.Sub(by, cy))
	right := new(big.Rat).Mul(ay.Sub(ay, cy), bx.Sub(bx, cx))
	return left.Sub(left, right).Sign()
}

// Quadrant returns the quadrant (0 through 3, counter-clockwise from the
// positive x-axis) containing the direction vector (dx, dy). dx and dy must
// not both be zero.
func Quadrant(dx, dy float64) int {
	if dx >= 0 {
		if dy >= 0 {
			return 0
		}
		return 3
	}
	if dy >= 0 {
		return 1
	}
	return 2
}
