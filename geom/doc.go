// Package geom provides the cartesian primitives underlying starpoly:
// an immutable 2-D Point and a Straight (an infinite line through two
// points), together with the precision helpers that keep floating-point
// noise out of geometric comparisons.
//
// 🚀 What is geom?
//
//	The leaf layer of starpoly. It supports:
//	  • Point — an immutable (x, y) value with a pure translation op
//	  • Straight — slope/intercept or vertical-line form, built from two
//	    points with coefficients rounded to a fixed number of decimals
//	  • Intersection — the unique crossing point of two straights, with
//	    parallel and coincident configurations reported as first-class
//	    sentinel errors, never as a division-by-zero artifact
//
// ✨ Why round coefficients at all?
//
//	Raw float64 arithmetic can leave a mathematically vertical straight
//	with an astronomically large finite slope, or make two mathematically
//	parallel straights differ in the 15th digit and "intersect" absurdly
//	far away. Rounding slope, intercept and intersection coordinates to a
//	caller-chosen precision before any comparison is what makes the
//	parallel/coincident detection reliable. It is a correctness mechanism,
//	not cosmetics.
//
// Conventions: plain cartesian axes, x to the right, y up. Angles are the
// caller's concern; geom only deals in coordinates.
//
// See star/ for the package that consumes these primitives.
package geom
