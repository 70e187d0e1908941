package geom

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Straight construction and intersection.
var (
	// ErrIdenticalPoints indicates both defining points coincide after
	// rounding, so no unique straight passes through them.
	ErrIdenticalPoints = errors.New("geom: identical points define no straight")

	// ErrBadDecimals indicates a negative decimals precision was requested.
	ErrBadDecimals = errors.New("geom: decimals must be non-negative")

	// ErrParallelStraights indicates two distinct parallel straights:
	// no intersection point exists.
	ErrParallelStraights = errors.New("geom: straights are parallel")

	// ErrCoincidentStraights indicates two overlapping straights:
	// every point is shared, so no unique intersection exists.
	ErrCoincidentStraights = errors.New("geom: straights are coincident")
)

// Straight is an infinite line through two points, stored either as the
// linear equation y = slope·x + intercept or, for vertical lines, as the
// constant x = x. All coefficients are rounded to a fixed number of decimal
// places at construction so that equality checks between straights are
// immune to floating-point noise (see the package doc).
//
// A Straight is immutable once built.
type Straight struct {
	slope     float64 // defined when !vertical
	intercept float64 // defined when !vertical
	x         float64 // defined when vertical
	vertical  bool
	decimals  int
}

// NewStraight builds the straight through points a and b, rounding its
// coefficients to the given number of decimal places.
// Returns ErrBadDecimals when decimals < 0 and ErrIdenticalPoints when the
// two points coincide after rounding. Complexity: O(1).
func NewStraight(a, b Point, decimals int) (Straight, error) {
	if decimals < 0 {
		return Straight{}, ErrBadDecimals
	}
	ax, ay := Round(a.X, decimals), Round(a.Y, decimals)
	bx, by := Round(b.X, decimals), Round(b.Y, decimals)
	if ax == bx {
		if ay == by {
			return Straight{}, fmt.Errorf("%w: %v", ErrIdenticalPoints, a)
		}
		// Vertical straight: constant x.
		return Straight{x: ax, vertical: true, decimals: decimals}, nil
	}
	slope := Round((by-ay)/(bx-ax), decimals)
	intercept := Round(ay-slope*ax, decimals)

	return Straight{slope: slope, intercept: intercept, decimals: decimals}, nil
}

// IsVertical reports whether the straight is of the form x = const.
// Complexity: O(1).
func (s Straight) IsVertical() bool {
	return s.vertical
}

// Intersection computes the unique point where s crosses other.
// Both straights must have been built with the same decimals precision for
// the comparison semantics to be meaningful; the result is rounded to the
// receiver's precision before it is returned.
//
// Returns ErrParallelStraights when the straights are distinct but never
// meet, and ErrCoincidentStraights when they overlap entirely. The two
// failure modes are detected by comparing rounded coefficients, never by
// letting a division blow up. Complexity: O(1).
func (s Straight) Intersection(other Straight) (Point, error) {
	switch {
	case !s.vertical && !other.vertical:
		// Neither straight is vertical.
		if s.slope == other.slope {
			if s.intercept == other.intercept {
				return Point{}, ErrCoincidentStraights
			}

			return Point{}, ErrParallelStraights
		}
		x := (other.intercept - s.intercept) / (s.slope - other.slope)
		y := s.slope*x + s.intercept

		return RoundPoint(Point{X: x, Y: y}, s.decimals), nil

	case s.vertical && other.vertical:
		// Both straights vertical: parallel, or the very same line.
		if s.x == other.x {
			return Point{}, ErrCoincidentStraights
		}

		return Point{}, ErrParallelStraights

	case s.vertical:
		// Only the receiver is vertical.
		return RoundPoint(Point{X: s.x, Y: other.slope*s.x + other.intercept}, s.decimals), nil

	default:
		// Only the other straight is vertical.
		return RoundPoint(Point{X: other.x, Y: s.slope*other.x + s.intercept}, s.decimals), nil
	}
}

// String renders the straight as its linear equation, "y = ax + b" or
// "x = c", mainly for error messages and debugging.
func (s Straight) String() string {
	if s.vertical {
		return fmt.Sprintf("x = %v", s.x)
	}
	if s.slope == 0 {
		return fmt.Sprintf("y = %v", s.intercept)
	}
	if s.intercept == 0 {
		return fmt.Sprintf("y = %vx", s.slope)
	}
	if s.intercept < 0 {
		return fmt.Sprintf("y = %vx - %v", s.slope, -s.intercept)
	}

	return fmt.Sprintf("y = %vx + %v", s.slope, s.intercept)
}
