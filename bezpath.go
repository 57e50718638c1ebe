/*
Package bezpath implements an editable piecewise cubic-Bezier path:
segments of four control points each, sampled into polylines, with
joint continuity between adjacent segments.

The root package holds the numeric and point utilities shared by the
curve model (package curve), the interactive controller (package
pathedit) and the planar footprint helper (package footprint).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezpath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bezpath'
func tracer() tracing.Trace {
	return tracing.Select("bezpath")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Point Data Type =======================================================

// Points and vectors are mgl64.Vec3. The curve model stores them in an
// arena and addresses them by index, so the root package only provides
// constructors and predicates.

// Origin represents the frequently used constant (0,0,0).
var Origin = P(0, 0, 0)

// P is a quick notation for constructing a point from floats.
func P(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}

// V validates a point: coordinates must be finite.
func V(p mgl64.Vec3) (mgl64.Vec3, error) {
	for i := 0; i < 3; i++ {
		if math.IsNaN(p[i]) || math.IsInf(p[i], 0) {
			tracer().Errorf("point with non-finite coordinate: %s", PtString(p))
			return Origin, fmt.Errorf("point coordinate %d is not finite", i)
		}
	}
	return p, nil
}

// ZapPt rounds every coordinate of p to Epsilon.
func ZapPt(p mgl64.Vec3) mgl64.Vec3 {
	return P(Zap(p.X()), Zap(p.Y()), Zap(p.Z()))
}

// PtEqual compares two points coordinate-wise with tolerance Epsilon.
func PtEqual(p, q mgl64.Vec3) bool {
	return Is0(p.X()-q.X()) && Is0(p.Y()-q.Y()) && Is0(p.Z()-q.Z())
}

// IsOrigin is a predicate: is p the origin?
func IsOrigin(p mgl64.Vec3) bool {
	return PtEqual(p, Origin)
}

// Lerp interpolates linearly between p and q, with t in [0,1] mapping
// onto the segment from p to q.
func Lerp(p, q mgl64.Vec3, t float64) mgl64.Vec3 {
	return p.Mul(1 - t).Add(q.Mul(t))
}

// Mid returns the midpoint between p and q.
func Mid(p, q mgl64.Vec3) mgl64.Vec3 {
	return Lerp(p, q, 0.5)
}

// PtString is a pretty Stringer for points.
func PtString(p mgl64.Vec3) string {
	return fmt.Sprintf("(%g,%g,%g)", p.X(), p.Y(), p.Z())
}
