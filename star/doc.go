// Package star generates the vertex geometry of star polygons: an
// alternating, closed sequence of outer corners and inner vertices,
// ready to be handed to any plotting or drawing tool.
//
// 🚀 What is star?
//
//	Given a center, an outer diameter and a few optional knobs, New
//	computes 2×Corners vertices:
//	  • outer corners — evenly spaced on the outer circle, clockwise from
//	    north, starting at FirstCornerSlope
//	  • inner vertices — either on an explicit inner circle
//	    (WithInnerDiameter), or derived as the intersections of the
//	    straights that connect every corner to the corner Style positions
//	    ahead (the classic pentagram is Corners=5, Style=2)
//
// ✨ Key guarantees:
//
//   - Fail-fast construction – every parameter is validated and every
//     degenerate corner/style combination is rejected with a sentinel
//     error before a *Star exists; a successfully built Star cannot fail
//   - Immutable geometry – vertices are computed once, accessors hand out
//     fresh copies, repeated reads are byte-for-byte identical
//   - Honest degeneracy – parallel, coincident or center-collapsing
//     connecting straights yield ErrDegenerateStyle naming the offending
//     corners/style pair, never a silently wrong point
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/starpoly/geom"
//	  "github.com/katalvlaran/starpoly/star"
//	)
//
//	s, err := star.New(geom.Point{X: 1, Y: 1}, 2) // pentagram, defaults
//	if err != nil {
//	  // handle ErrTooFewCorners, ErrDegenerateStyle, ...
//	}
//	xs, ys := s.XCoordinates(), s.YCoordinates()
//	// (xs[k], ys[k]) is one vertex; even k = outer corner, odd k = inner.
//
// Complexity: O(Corners) time and memory for construction, O(Corners) per
// coordinate export. See examples in example_test.go.
package star
