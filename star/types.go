// Package star defines configuration options and sentinel errors for the
// star-polygon vertex generator.
//
// Options:
//
//	– Corners:          number of outer corners, ≥ 3. Default 5.
//	– InnerDiameter:    twice the center→inner-vertex distance. When > 0 it
//	  fully determines the inner ring and Style is ignored. Default 0
//	  (derive the inner ring from Style instead).
//	– Style:            connect each corner to the corner Style positions
//	  ahead; inner vertices are the intersections of consecutive connecting
//	  straights. Must lie in [2, Corners-2]. Default 2.
//	– FirstCornerSlope: angle of the first corner, in radians clockwise
//	  from north, in [0, 2π). Out-of-range values are rejected, not
//	  normalized. Default 0.
//	– Decimals:         rounding precision for every exported coordinate
//	  and every internal geometric comparison. Default 5.
//
// Errors (sentinel):
//
//	– ErrTooFewCorners            if Corners < 3.
//	– ErrNonPositiveDiameter      if the outer diameter is ≤ 0.
//	– ErrNonPositiveInnerDiameter if WithInnerDiameter was given ≤ 0.
//	– ErrBadStyle                 if Style is outside [2, Corners-2].
//	– ErrBadSlope                 if FirstCornerSlope is outside [0, 2π).
//	– ErrBadDecimals              if Decimals < 0.
//	– ErrDegenerateStyle          if the connecting straights of some inner
//	  vertex are parallel, coincident, or collapse onto the center.
package star

import (
	"errors"
	"math"
)

// Default option values. These constants are the single source of truth
// for DefaultOptions.
const (
	// DefaultCorners is the classic five-cornered star.
	DefaultCorners = 5

	// DefaultStyle connects each corner to the second-next one, which for
	// five corners yields the pentagram.
	DefaultStyle = 2

	// DefaultFirstCornerSlope points the first corner straight up (north).
	DefaultFirstCornerSlope = 0

	// DefaultDecimals is the rounding precision applied to all coordinates.
	DefaultDecimals = 5
)

// Sentinel errors returned by New.
var (
	// ErrTooFewCorners indicates fewer than three corners were requested;
	// no polygon exists below a triangle.
	ErrTooFewCorners = errors.New("star: at least 3 corners required")

	// ErrNonPositiveDiameter indicates a zero or negative outer diameter.
	ErrNonPositiveDiameter = errors.New("star: outer diameter must be positive")

	// ErrNonPositiveInnerDiameter indicates a zero or negative inner diameter.
	ErrNonPositiveInnerDiameter = errors.New("star: inner diameter must be positive")

	// ErrBadStyle indicates a style outside [2, corners-2]. Styles 0 and 1
	// redraw the outer polygon itself, and styles ≥ corners-1 mirror them.
	ErrBadStyle = errors.New("star: style must be between 2 and corners-2")

	// ErrBadSlope indicates a first corner slope outside [0, 2π).
	ErrBadSlope = errors.New("star: first corner slope must be in [0, 2π)")

	// ErrBadDecimals indicates a negative decimals precision.
	ErrBadDecimals = errors.New("star: decimals must be non-negative")

	// ErrDegenerateStyle indicates the chosen corners/style combination
	// yields connecting straights that are parallel, coincident, or all
	// passing through the center, so some inner vertex has no unique,
	// off-center intersection point.
	ErrDegenerateStyle = errors.New("star: connecting straights do not uniquely intersect")
)

// Options configures star construction. Zero values mean "derive the inner
// ring from Style"; use DefaultOptions as the starting point and override
// via the functional With* setters.
type Options struct {
	Corners          int     // number of outer corners, ≥ 3
	InnerDiameter    float64 // explicit inner-ring diameter; 0 ⇒ derive from Style
	Style            int     // corner-connection step for the derived inner ring
	FirstCornerSlope float64 // radians clockwise from north, in [0, 2π)
	Decimals         int     // rounding precision for all coordinates
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithCorners sets the number of outer corners.
// Values < 3 cause New to fail with ErrTooFewCorners.
func WithCorners(n int) Option {
	return func(o *Options) {
		o.Corners = n
	}
}

// WithInnerDiameter pins the inner vertices to a circle of the given
// diameter, skipping the style-based derivation entirely.
// Zero means "no explicit inner ring" (the default: derive from Style);
// negative values cause New to fail with ErrNonPositiveInnerDiameter.
func WithInnerDiameter(d float64) Option {
	return func(o *Options) {
		o.InnerDiameter = d
	}
}

// WithStyle selects which corners are connected to derive the inner
// vertices: corner i is joined to corner i+s (mod Corners).
// Only consulted when no inner diameter was given.
// Values outside [2, Corners-2] cause New to fail with ErrBadStyle.
func WithStyle(s int) Option {
	return func(o *Options) {
		o.Style = s
	}
}

// WithFirstCornerSlope rotates the whole star so that the first corner
// sits at the given angle, in radians clockwise from north.
// Values outside [0, 2π) cause New to fail with ErrBadSlope.
func WithFirstCornerSlope(rad float64) Option {
	return func(o *Options) {
		o.FirstCornerSlope = rad
	}
}

// WithDecimals sets the rounding precision applied to every exported
// coordinate and every internal geometric comparison.
// Negative values cause New to fail with ErrBadDecimals.
func WithDecimals(d int) Option {
	return func(o *Options) {
		o.Decimals = d
	}
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults: five corners, style 2 (pentagram), first corner at north,
// five decimal places, inner ring derived from style.
func DefaultOptions() Options {
	return Options{
		Corners:          DefaultCorners,
		InnerDiameter:    0,
		Style:            DefaultStyle,
		FirstCornerSlope: DefaultFirstCornerSlope,
		Decimals:         DefaultDecimals,
	}
}

// fullTurn is 2π, the exclusive upper bound for FirstCornerSlope.
const fullTurn = 2 * math.Pi
