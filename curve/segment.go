package curve

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/bezpath"
)

// DefaultSampleCount is the per-segment resolution used when a segment is
// created without an explicit sample count. 10 sub-divisions keep the
// polyline smooth at interactive rates without inflating the vertex list.
const DefaultSampleCount = 10

// Segment is one cubic Bezier curve unit: four control-point references
// and a sampling resolution. Its sample cache is derived state, refreshed
// by resample and never read across a control-point mutation without an
// intervening rebuild.
type Segment struct {
	Start, Ctrl1, Ctrl2, End PointRef
	SampleCount              int
	samples                  []mgl64.Vec3
}

// Sample evaluates the cubic Bezier curve given by the four control points
// at count+1 uniformly spaced parameters over [0,1] and returns the points
// in curve order. It is pure: identical inputs yield identical output. A
// count below 1 is rejected with ErrInvalidSampleCount.
func Sample(p0, p1, p2, p3 mgl64.Vec3, count int) ([]mgl64.Vec3, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, count)
	}
	pts := make([]mgl64.Vec3, count+1)
	for i := 0; i <= count; i++ {
		t := float64(i) / float64(count)
		pts[i] = cubicAt(p0, p1, p2, p3, t)
	}
	// pin the endpoints to the control points, avoiding FP drift at t=0,1
	pts[0] = p0
	pts[count] = p3
	return pts, nil
}

// cubicAt evaluates the Bernstein form B(t) of a cubic Bezier.
func cubicAt(p0, p1, p2, p3 mgl64.Vec3, t float64) mgl64.Vec3 {
	s := 1 - t
	b0 := s * s * s
	b1 := 3 * s * s * t
	b2 := 3 * s * t * t
	b3 := t * t * t
	q := p0.Mul(b0)
	q = q.Add(p1.Mul(b1))
	q = q.Add(p2.Mul(b2))
	q = q.Add(p3.Mul(b3))
	return q
}

// resample refreshes the segment's cache from the current arena state.
// On error the previous cache is left untouched.
func (seg *Segment) resample(arena *Arena) error {
	pts, err := Sample(arena.At(seg.Start), arena.At(seg.Ctrl1),
		arena.At(seg.Ctrl2), arena.At(seg.End), seg.SampleCount)
	if err != nil {
		return err
	}
	seg.samples = pts
	return nil
}

// Samples returns the cached sample sequence of the segment. Valid only
// after the owning path has been rebuilt.
func (seg *Segment) Samples() []mgl64.Vec3 {
	return seg.samples
}

func (seg *Segment) String() string {
	return fmt.Sprintf("[%d .. controls %d and %d .. %d]",
		seg.Start, seg.Ctrl1, seg.Ctrl2, seg.End)
}

// asString traces a segment with resolved coordinates, MetaPost-style.
func (seg *Segment) asString(arena *Arena) string {
	return fmt.Sprintf("%s .. controls %s and %s .. %s",
		bezpath.PtString(arena.At(seg.Start)),
		bezpath.PtString(arena.At(seg.Ctrl1)),
		bezpath.PtString(arena.At(seg.Ctrl2)),
		bezpath.PtString(arena.At(seg.End)))
}
