// Package curve models a piecewise cubic-Bezier path as an editable chain
// of segments over a shared control-point arena.
/*

A path is an ordered sequence of segments; each segment is a cubic Bezier
curve defined by four control points (start, two inner control handles,
end). Adjacent segments are continuous by construction: the end point of
segment i and the start point of segment i+1 are the same arena slot, so a
single write moves both.

Control points do not live inside the segments. They are held in an arena
and segments address them through PointRef indices. Joints are therefore
expressed as two segments carrying the same index, which makes the
continuity invariant checkable with plain integer equality:

   seg[i].End == seg[i+1].Start

Paths are built with a fluent builder, in the style of MetaPost path
expressions (package qualifiers omitted):

   p := StartAt(P(0,0,0)).
           CurveTo(P(1,2,0), P(3,2,0), P(4,0,0)).
           CurveTo(P(5,-2,0), P(7,-2,0), P(8,0,0)).
           Path()

Sampling a segment yields SampleCount+1 points on the curve, uniformly
parameterized over [0,1]. Rebuild concatenates the per-segment samples
into one combined polyline for rendering, dropping the duplicated joint
sample of every segment after the first, and refreshes an offset index
that maps polyline vertices back to their owning segment.

All operations are synchronous; the package is meant to be driven from a
single UI dispatch thread and does no locking of its own.
*/
package curve
