package star

import (
	"fmt"
	"math"

	"github.com/katalvlaran/starpoly/geom"
)

// innerMode is the resolved inner-vertex rule: the optional inner diameter
// and the connection style form a tagged variant, decided once at
// construction and never re-inspected afterwards.
type innerMode int

const (
	// innerDerived computes inner vertices from intersections of the
	// corner-connecting straights selected by Style.
	innerDerived innerMode = iota

	// innerExplicit places inner vertices on the circle given by
	// InnerDiameter; Style is ignored.
	innerExplicit
)

// Star holds the computed geometry of one star polygon. It is immutable
// after New returns: parameters are fixed, both vertex rings are cached,
// and every accessor hands out fresh copies. Distinct Star values share no
// state, so they may be built and read concurrently without locks.
type Star struct {
	center        geom.Point
	corners       int
	outerDiameter float64
	innerDiameter float64 // 0 when the inner ring was derived from style
	style         int
	slope         float64
	decimals      int

	outer []geom.Point // corner vertices, clockwise from FirstCornerSlope
	inner []geom.Point // inner[i] sits between outer[i] and outer[i+1]
}

// New validates the parameters, computes both vertex rings eagerly and
// returns the finished Star. On any failure the error is one of the
// package sentinels and no Star is returned — a half-built star never
// escapes.
//
// Complexity: O(Corners) time and memory.
func New(center geom.Point, outerDiameter float64, opts ...Option) (*Star, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.Decimals < 0 {
		return nil, ErrBadDecimals
	}
	if o.Corners < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewCorners, o.Corners)
	}
	if outerDiameter <= 0 {
		return nil, ErrNonPositiveDiameter
	}
	if o.InnerDiameter < 0 {
		return nil, ErrNonPositiveInnerDiameter
	}
	if o.FirstCornerSlope < 0 || o.FirstCornerSlope >= fullTurn {
		return nil, ErrBadSlope
	}

	mode := innerDerived
	if o.InnerDiameter > 0 {
		mode = innerExplicit
	}
	if mode == innerDerived && (o.Style < 2 || o.Style > o.Corners-2) {
		return nil, fmt.Errorf("%w: corners=%d style=%d", ErrBadStyle, o.Corners, o.Style)
	}

	s := &Star{
		center:        center,
		corners:       o.Corners,
		outerDiameter: outerDiameter,
		innerDiameter: o.InnerDiameter,
		style:         o.Style,
		slope:         o.FirstCornerSlope,
		decimals:      o.Decimals,
	}

	s.outer = s.outerRing()

	var err error
	if mode == innerExplicit {
		s.inner = s.innerRingByDiameter()
	} else if s.inner, err = s.innerRingByStyle(); err != nil {
		return nil, err
	}

	return s, nil
}

// outerRing places the corner vertices evenly on the outer circle,
// clockwise from north, starting at the first corner slope.
func (s *Star) outerRing() []geom.Point {
	spacing := fullTurn / float64(s.corners)
	radius := s.outerDiameter / 2
	ring := make([]geom.Point, s.corners)
	for i := range ring {
		a := s.slope + spacing*float64(i)
		ring[i] = geom.RoundPoint(s.center.Moved(math.Sin(a)*radius, math.Cos(a)*radius), s.decimals)
	}

	return ring
}

// innerRingByDiameter places inner vertex i on the inner circle, on the
// angular bisector between corners i and i+1. No failure mode.
func (s *Star) innerRingByDiameter() []geom.Point {
	spacing := fullTurn / float64(s.corners)
	radius := s.innerDiameter / 2
	ring := make([]geom.Point, s.corners)
	for i := range ring {
		a := s.slope + spacing*float64(i) + spacing/2
		ring[i] = geom.RoundPoint(s.center.Moved(math.Sin(a)*radius, math.Cos(a)*radius), s.decimals)
	}

	return ring
}

// innerRingByStyle derives inner vertex i as the intersection of the
// straight through corners (i, i+style) with the straight through corners
// (i-style+1, i+1). Both straights cross the sector between corners i and
// i+1, so the intersection lands on the bisector there.
//
// Any parallel or coincident pair, and any intersection collapsing onto
// the center (connecting straights that are diameters), aborts the whole
// construction with ErrDegenerateStyle.
func (s *Star) innerRingByStyle() ([]geom.Point, error) {
	straights := make([]geom.Straight, s.corners)
	for i := range straights {
		st, err := geom.NewStraight(s.outer[i], s.outer[(i+s.style)%s.corners], s.decimals)
		if err != nil {
			// Two corners rounded onto the same point: the precision is too
			// coarse for this geometry to exist at all.
			return nil, fmt.Errorf("%w: corners=%d style=%d (%v)", ErrDegenerateStyle, s.corners, s.style, err)
		}
		straights[i] = st
	}

	hub := geom.RoundPoint(s.center, s.decimals)
	ring := make([]geom.Point, s.corners)
	for i := range ring {
		j := ((i-s.style+1)%s.corners + s.corners) % s.corners
		p, err := straights[i].Intersection(straights[j])
		if err != nil {
			return nil, fmt.Errorf("%w: corners=%d style=%d (%v)", ErrDegenerateStyle, s.corners, s.style, err)
		}
		if p == hub {
			return nil, fmt.Errorf("%w: corners=%d style=%d (connecting straights are diameters, inner ring collapses onto the center)",
				ErrDegenerateStyle, s.corners, s.style)
		}
		ring[i] = p
	}

	return ring, nil
}

// XCoordinates returns the x-coordinates of all 2×Corners vertices in
// drawing order: outer 0, inner 0, outer 1, inner 1, … The consumer treats
// the sequence as a closed loop. A fresh slice is built from the cached
// rings on every call; repeated calls return identical values.
// Complexity: O(Corners).
func (s *Star) XCoordinates() []float64 {
	xs := make([]float64, 0, 2*s.corners)
	for i := 0; i < s.corners; i++ {
		xs = append(xs, s.outer[i].X, s.inner[i].X)
	}

	return xs
}

// YCoordinates returns the y-coordinates of all 2×Corners vertices in the
// same order as XCoordinates, so (x[k], y[k]) is one vertex.
// Complexity: O(Corners).
func (s *Star) YCoordinates() []float64 {
	ys := make([]float64, 0, 2*s.corners)
	for i := 0; i < s.corners; i++ {
		ys = append(ys, s.outer[i].Y, s.inner[i].Y)
	}

	return ys
}

// Vertices returns the full interleaved vertex sequence
// (outer 0, inner 0, outer 1, inner 1, …) as a fresh slice.
// Complexity: O(Corners).
func (s *Star) Vertices() []geom.Point {
	vs := make([]geom.Point, 0, 2*s.corners)
	for i := 0; i < s.corners; i++ {
		vs = append(vs, s.outer[i], s.inner[i])
	}

	return vs
}

// OuterVertices returns a copy of the outer corner ring, clockwise from
// the first corner. Complexity: O(Corners).
func (s *Star) OuterVertices() []geom.Point {
	ring := make([]geom.Point, s.corners)
	copy(ring, s.outer)

	return ring
}

// InnerVertices returns a copy of the inner vertex ring; InnerVertices()[i]
// sits between OuterVertices()[i] and OuterVertices()[i+1].
// Complexity: O(Corners).
func (s *Star) InnerVertices() []geom.Point {
	ring := make([]geom.Point, s.corners)
	copy(ring, s.inner)

	return ring
}

// Center returns the star's center point.
func (s *Star) Center() geom.Point {
	return s.center
}

// Corners returns the number of outer corners.
func (s *Star) Corners() int {
	return s.corners
}

// OuterDiameter returns the outer-circle diameter.
func (s *Star) OuterDiameter() float64 {
	return s.outerDiameter
}

// Decimals returns the rounding precision of all exported coordinates.
func (s *Star) Decimals() int {
	return s.decimals
}
