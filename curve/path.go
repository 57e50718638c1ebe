package curve

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/bezpath"
)

// Path is an ordered chain of cubic Bezier segments over one shared
// control-point arena. A path always has at least one segment; the joint
// continuity invariant seg[i].End == seg[i+1].Start holds for every
// adjacent pair and survives every mutation the path offers.
type Path struct {
	arena    *Arena
	segs     []Segment
	polyline []mgl64.Vec3 // combined samples, refreshed by Rebuild
	offsets  []int        // polyline offset of each segment start, plus final vertex
	offindex *treemap.Map // polyline offset → segment index
}

// SegmentPoints is the resolved 4-tuple of control-point coordinates of
// one segment, as handed to inspector UIs.
type SegmentPoints struct {
	Start, Ctrl1, Ctrl2, End mgl64.Vec3
}

// === Builder ===============================================================

// Builder assembles a path segment by segment. Start with StartAt, chain
// CurveTo calls, and finish with Path.
type Builder struct {
	arena *Arena
	segs  []Segment
	tip   PointRef // end point of the segment built last
}

// StartAt opens a path builder at the given first on-curve point.
func StartAt(p mgl64.Vec3) *Builder {
	a := NewArena()
	return &Builder{arena: a, tip: a.Alloc(bezpath.ZapPt(p))}
}

// CurveTo extends the path under construction by one cubic segment from
// the current tip through the two control handles to end. The new
// segment shares its start slot with the previous segment's end slot.
// Part of builder functionality.
func (b *Builder) CurveTo(ctrl1, ctrl2, end mgl64.Vec3) *Builder {
	seg := Segment{
		Start:       b.tip,
		Ctrl1:       b.arena.Alloc(bezpath.ZapPt(ctrl1)),
		Ctrl2:       b.arena.Alloc(bezpath.ZapPt(ctrl2)),
		End:         b.arena.Alloc(bezpath.ZapPt(end)),
		SampleCount: DefaultSampleCount,
	}
	b.segs = append(b.segs, seg)
	b.tip = seg.End
	return b
}

// SampleCount sets the resolution of the segment built last.
// Part of builder functionality.
func (b *Builder) SampleCount(count int) *Builder {
	if len(b.segs) == 0 {
		panic("cannot set sample count on empty path")
	}
	b.segs[len(b.segs)-1].SampleCount = count
	return b
}

// Path finishes the builder. A path without segments is invalid and must
// never be constructed, so finishing a builder with no CurveTo panics.
func (b *Builder) Path() *Path {
	if len(b.segs) == 0 {
		panic("path needs at least one segment")
	}
	return &Path{arena: b.arena, segs: b.segs}
}

// DefaultPath builds the two-segment path a fresh renderable starts with:
// an arch and its mirrored continuation along the x-axis.
func DefaultPath() *Path {
	return StartAt(bezpath.P(0, 0, 0)).
		CurveTo(bezpath.P(1, 2, 0), bezpath.P(3, 2, 0), bezpath.P(4, 0, 0)).
		CurveTo(bezpath.P(5, -2, 0), bezpath.P(7, -2, 0), bezpath.P(8, 0, 0)).
		Path()
}

// === Accessors =============================================================

// N returns the number of segments.
func (p *Path) N() int {
	return len(p.segs)
}

// Arena exposes the control-point arena, mainly for identity checks.
func (p *Path) Arena() *Arena {
	return p.arena
}

// Seg returns the segment at index i (a copy; control points are
// addressed through the arena, so the copy still aliases the path's
// coordinates).
func (p *Path) Seg(i int) (Segment, error) {
	if i < 0 || i >= len(p.segs) {
		return Segment{}, fmt.Errorf("%w: segment %d of %d", ErrIndexOutOfRange, i, len(p.segs))
	}
	return p.segs[i], nil
}

// Points resolves the four control-point coordinates of segment i.
func (p *Path) Points(i int) (SegmentPoints, error) {
	seg, err := p.Seg(i)
	if err != nil {
		return SegmentPoints{}, err
	}
	return SegmentPoints{
		Start: p.arena.At(seg.Start),
		Ctrl1: p.arena.At(seg.Ctrl1),
		Ctrl2: p.arena.At(seg.Ctrl2),
		End:   p.arena.At(seg.End),
	}, nil
}

// ref maps a (segment, role) pair to the arena slot it addresses.
func (p *Path) ref(i int, role Role) (PointRef, error) {
	seg, err := p.Seg(i)
	if err != nil {
		return NoPoint, err
	}
	switch role {
	case RoleStart:
		return seg.Start, nil
	case RoleCtrl1:
		return seg.Ctrl1, nil
	case RoleCtrl2:
		return seg.Ctrl2, nil
	case RoleEnd:
		return seg.End, nil
	}
	return NoPoint, fmt.Errorf("%w: role %d", ErrIndexOutOfRange, role)
}

// === Mutation ==============================================================

// MovePoint copies the coordinates of `to` into the control point (i,
// role). If the slot is a joint, both adjacent segments observe the new
// coordinates on the next rebuild, as they share the slot.
func (p *Path) MovePoint(i int, role Role, to mgl64.Vec3) error {
	r, err := p.ref(i, role)
	if err != nil {
		return err
	}
	tracer().Debugf("move point %d/%s to %s", i, role, bezpath.PtString(to))
	p.arena.CopyInto(r, to)
	return nil
}

// SetPoints overwrites all four control points of segment i, the entry
// point for inspector-style editing.
func (p *Path) SetPoints(i int, pts SegmentPoints) error {
	seg, err := p.Seg(i)
	if err != nil {
		return err
	}
	p.arena.CopyInto(seg.Start, pts.Start)
	p.arena.CopyInto(seg.Ctrl1, pts.Ctrl1)
	p.arena.CopyInto(seg.Ctrl2, pts.Ctrl2)
	p.arena.CopyInto(seg.End, pts.End)
	return nil
}

// RemoveSegment deletes the segment at index i. Removing the only
// remaining segment is rejected with ErrInvalidRemoval; a path must keep
// at least one segment. When an interior segment is removed, the left
// survivor keeps its end slot and the right survivor's start is re-linked
// to it, preserving joint continuity across the gap (left side wins; no
// coordinate averaging).
func (p *Path) RemoveSegment(i int) error {
	if i < 0 || i >= len(p.segs) {
		return fmt.Errorf("%w: segment %d of %d", ErrIndexOutOfRange, i, len(p.segs))
	}
	if len(p.segs) == 1 {
		return ErrInvalidRemoval
	}
	tracer().Infof("removing segment %d: %s", i, p.segs[i].asString(p.arena))
	p.segs = append(p.segs[:i], p.segs[i+1:]...)
	if i > 0 && i < len(p.segs) {
		p.segs[i].Start = p.segs[i-1].End
	}
	return nil
}

// === Rebuild ===============================================================

// Rebuild resamples every segment in order and concatenates the samples
// into the combined polyline, dropping the duplicated joint sample of
// every segment after the first. It refreshes the offset index and
// returns the polyline. Rebuilding twice without an intervening mutation
// yields identical output. On error no derived state is replaced.
func (p *Path) Rebuild() ([]mgl64.Vec3, error) {
	if p == nil {
		return nil, ErrNilPath
	}
	total := 1
	for i := range p.segs {
		if p.segs[i].SampleCount < 1 {
			return nil, fmt.Errorf("%w: segment %d has %d", ErrInvalidSampleCount, i, p.segs[i].SampleCount)
		}
		total += p.segs[i].SampleCount
	}
	poly := make([]mgl64.Vec3, 0, total)
	offsets := make([]int, len(p.segs)+1)
	index := treemap.NewWithIntComparator()
	for i := range p.segs {
		if err := p.segs[i].resample(p.arena); err != nil {
			return nil, err
		}
		if i == 0 {
			offsets[i] = 0
			index.Put(0, i)
			poly = append(poly, p.segs[i].samples...)
		} else {
			// the segment starts at the shared joint vertex, which the
			// previous segment already appended
			offsets[i] = len(poly) - 1
			// vertices strictly after the joint are owned by segment i
			index.Put(len(poly), i)
			poly = append(poly, p.segs[i].samples[1:]...)
		}
	}
	offsets[len(p.segs)] = len(poly) - 1
	p.polyline, p.offsets, p.offindex = poly, offsets, index
	tracer().Debugf("rebuilt path: %d segments, %d polyline vertices", len(p.segs), len(poly))
	return poly, nil
}

// Polyline returns the combined polyline of the last rebuild.
func (p *Path) Polyline() []mgl64.Vec3 {
	return p.polyline
}

// Offsets returns, for each segment, the polyline offset of its first
// sample (the shared joint vertex for every segment after the first),
// followed by the index of the very last polyline vertex. Valid after a
// rebuild; length is N()+1. Handle placement is derived from these
// offsets.
func (p *Path) Offsets() []int {
	return p.offsets
}

// SegmentAt maps a polyline vertex index back to the segment owning it,
// by floor lookup in the offset index. Joint vertices belong to the
// earlier segment, the final vertex to the last segment.
func (p *Path) SegmentAt(vertex int) (int, error) {
	if p.offindex == nil || vertex < 0 || vertex >= len(p.polyline) {
		return 0, fmt.Errorf("%w: polyline vertex %d", ErrIndexOutOfRange, vertex)
	}
	_, seg := p.offindex.Floor(vertex)
	return seg.(int), nil
}

// AsString produces a MetaPost-flavored rendition of a path, mainly for
// tracing and tests.
func AsString(p *Path) string {
	if p == nil || len(p.segs) == 0 {
		return "<empty path>"
	}
	s := bezpath.PtString(p.arena.At(p.segs[0].Start))
	for i := range p.segs {
		seg := &p.segs[i]
		s += fmt.Sprintf(" .. controls %s and %s .. %s",
			bezpath.PtString(p.arena.At(seg.Ctrl1)),
			bezpath.PtString(p.arena.At(seg.Ctrl2)),
			bezpath.PtString(p.arena.At(seg.End)))
	}
	return s
}
