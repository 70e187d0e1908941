package geom

import (
	"fmt"
	"math"
)

// Point is an immutable point in cartesian coordinates (x right, y up).
// It is a plain value type: create it, copy it, never mutate it.
type Point struct {
	X, Y float64
}

// Moved returns a new Point shifted from the one in hand by dx and dy.
// The receiver is left untouched.
// Complexity: O(1).
func (p Point) Moved(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String renders the point as "(x, y)" for error messages and debugging.
func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Round rounds v half-away-from-zero to the given number of decimal places.
// A negative zero result is normalized to +0 so that rounded coordinates
// compare and print uniformly.
//
// Rounding to a fixed precision is load-bearing throughout starpoly:
// comparisons between slopes, intercepts and coordinates happen on rounded
// values only, which is what keeps nearly-vertical straights vertical and
// nearly-parallel straights parallel. Complexity: O(1).
func Round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	r := math.Round(v*pow) / pow
	if r == 0 {
		return 0
	}

	return r
}

// RoundPoint returns a copy of p with both coordinates rounded to the given
// number of decimal places. Complexity: O(1).
func RoundPoint(p Point, decimals int) Point {
	return Point{X: Round(p.X, decimals), Y: Round(p.Y, decimals)}
}
