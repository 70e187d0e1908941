// Package starpoly is your in-memory toolbox for generating the vertex
// geometry of star polygons — from a handful of parameters to a
// render-ready coordinate sequence.
//
// 🚀 What is starpoly?
//
//	A small, deterministic, pure-Go library that brings together:
//		• geom/ — cartesian primitives: immutable Point and Straight (infinite
//		  line) with explicit parallel/coincident intersection failure
//		• star/ — the Star generator: outer corners on a circle, inner
//		  vertices either on an explicit inner circle or derived from the
//		  intersections of corner-connecting straights
//
// ✨ Why choose starpoly?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – fail-fast construction, sentinel errors,
//     no half-built geometry ever escapes
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – coordinates rounded to a configurable precision,
//     byte-for-byte stable across repeated reads
//
// Quick ASCII example:
//
//	      *
//	     / \
//	*---·   ·---*
//	  \  \ /  /
//	    \ X /
//	    / · \
//	   *     *
//
//	a five-cornered star: outer corners (*) on the outer circle, inner
//	vertices (·) where the corner-connecting straights cross.
//
// Rendering, color and layout are deliberately out of scope: starpoly
// produces the ordered vertex coordinates, your plotting tool draws them.
//
//	go get github.com/katalvlaran/starpoly/star
package starpoly
