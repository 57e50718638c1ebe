// Package pathedit drives interactive editing of a piecewise cubic-Bezier
// path. A Controller owns the path model, pushes the combined polyline
// into a host geometry container, and manages a pool of draggable handle
// nodes, one per joint plus one for the path's final endpoint.
//
// The controller is a UI-callback component: all operations run to
// completion synchronously on the dispatch thread, and structurally
// invalid edits (removing the last segment, stale indices) are traced and
// dropped rather than surfaced as failures.
package pathedit

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/bezpath/curve"
	"github.com/npillmayer/bezpath/footprint"
)

// DefaultHitWidth is the half-band, in world units, around the projected
// polyline that HitTest treats as "on the curve".
const DefaultHitWidth = 0.25

// Controller mediates between a path model and its host renderable.
// Create one with New; the zero value is not usable.
type Controller struct {
	path     *curve.Path
	geom     LineGeometry
	factory  HandleFactory
	handles  []HandleNode
	visible  bool
	selected int // highlighted segment, -1 for none

	// CurveColor and SelectColor are the per-vertex colors pushed with
	// the polyline; the selected segment's span gets SelectColor.
	CurveColor  color.RGBA
	SelectColor color.RGBA
	// HitWidth tunes the coarse pick band of HitTest.
	HitWidth float64
}

// New wires a controller to its host collaborators. A nil path starts the
// renderable on the default two-segment path. The controller begins
// Hidden (no handles); the polyline is built and pushed immediately.
func New(path *curve.Path, geom LineGeometry, factory HandleFactory) *Controller {
	if path == nil {
		path = curve.DefaultPath()
	}
	c := &Controller{
		path:        path,
		geom:        geom,
		factory:     factory,
		selected:    -1,
		CurveColor:  color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF},
		SelectColor: color.RGBA{R: 0xFF, G: 0xA0, B: 0x00, A: 0xFF},
		HitWidth:    DefaultHitWidth,
	}
	c.refresh()
	return c
}

// Path exposes the underlying model, e.g. for tree-view adapters.
func (c *Controller) Path() *curve.Path {
	return c.path
}

// Visible reports whether the handle set is currently shown.
func (c *Controller) Visible() bool {
	return c.visible
}

// Handles returns the current handle pool size. Outside of a drag in
// progress this is segment count + 1 while visible, 0 while hidden.
func (c *Controller) Handles() int {
	return len(c.handles)
}

// === Visibility state machine ==============================================

// Show transitions Hidden→Visible: it allocates one handle per joint plus
// one for the final endpoint and positions them on the polyline. Showing
// an already visible controller only repositions.
func (c *Controller) Show() {
	if !c.visible {
		n := c.path.N()
		c.handles = make([]HandleNode, n+1)
		for i := range c.handles {
			slot := i
			c.handles[i] = c.factory.NewHandle(slot, func(to mgl64.Vec3) {
				c.DragTo(slot, to)
			})
		}
		c.visible = true
		tracer().Debugf("showing %d handles", len(c.handles))
	}
	c.repositionHandles()
}

// Hide transitions Visible→Hidden, disposing every handle and clearing
// the pool. Curve data and the pushed polyline are unaffected.
func (c *Controller) Hide() {
	for _, h := range c.handles {
		h.Dispose()
	}
	c.handles = nil
	c.visible = false
}

// === Edit operations =======================================================

// DragTo is the handle-drag callback target: it routes the new coordinate
// to the control point behind the given pool slot and refreshes geometry
// and handle positions. Joints are shared slots, so both adjacent
// segments pick up the move on the rebuild.
func (c *Controller) DragTo(slot int, to mgl64.Vec3) {
	s, err := SlotOf(slot, c.path.N())
	if err != nil {
		tracer().Errorf("drag on stale handle: %v", err)
		return
	}
	if err := c.path.MovePoint(s.Segment, s.Role, to); err != nil {
		tracer().Errorf("drag rejected: %v", err)
		return
	}
	c.refresh()
}

// SetSegmentPoints overwrites all four control points of one segment, the
// inspector-editing entry point. Invalid indices are traced and dropped.
func (c *Controller) SetSegmentPoints(i int, pts curve.SegmentPoints) {
	if err := c.path.SetPoints(i, pts); err != nil {
		tracer().Errorf("segment edit rejected: %v", err)
		return
	}
	c.refresh()
}

// RemoveSegment deletes segment i, shrinks the handle pool to the new
// segment count + 1 and refreshes. Removing the only segment or an
// out-of-range index leaves all state untouched.
func (c *Controller) RemoveSegment(i int) {
	if err := c.path.RemoveSegment(i); err != nil {
		tracer().Errorf("removal rejected: %v", err)
		return
	}
	if c.selected >= c.path.N() {
		c.selected = -1
	}
	// dispose stale handles synchronously, before any callback can fire
	if c.visible {
		keep := c.path.N() + 1
		for _, h := range c.handles[keep:] {
			h.Dispose()
		}
		c.handles = c.handles[:keep]
	}
	c.refresh()
}

// Select highlights segment i in the pushed vertex colors; tree-view
// selection feeds this. An out-of-range index clears the highlight.
func (c *Controller) Select(i int) {
	if i < 0 || i >= c.path.N() {
		i = -1
	}
	c.selected = i
	c.refresh()
}

// Deselect clears the segment highlight.
func (c *Controller) Deselect() {
	c.Select(-1)
}

// Selected returns the highlighted segment index, -1 for none.
func (c *Controller) Selected() int {
	return c.selected
}

// === Queries ===============================================================

// SegmentInfo describes one segment for listing in a tree view.
type SegmentInfo struct {
	Index       int
	Points      curve.SegmentPoints
	SampleCount int
}

// Segments lists the path's segments in order, with resolved control
// points.
func (c *Controller) Segments() []SegmentInfo {
	infos := make([]SegmentInfo, c.path.N())
	for i := range infos {
		seg, _ := c.path.Seg(i)
		pts, _ := c.path.Points(i)
		infos[i] = SegmentInfo{Index: i, Points: pts, SampleCount: seg.SampleCount}
	}
	return infos
}

// SegmentAt maps a picked polyline vertex to its owning segment, for
// selecting in the tree view. ok is false for a stale vertex index.
func (c *Controller) SegmentAt(vertex int) (seg int, ok bool) {
	seg, err := c.path.SegmentAt(vertex)
	if err != nil {
		tracer().Debugf("pick on stale vertex: %v", err)
		return 0, false
	}
	return seg, true
}

// HitTest reports whether the point (x,y), in the host's working plane,
// falls within HitWidth of the projected curve body. Handle picking is
// the host's business; this covers clicking the curve itself.
func (c *Controller) HitTest(x, y float64) bool {
	poly := footprint.Outline(c.path.Polyline(), c.HitWidth)
	return footprint.Contains(poly, x, y)
}

// === Geometry refresh ======================================================

// refresh resamples the full path, pushes vertices and colors to the host
// geometry and repositions handles. Handles are reused, never recreated
// here; only Show/Hide and RemoveSegment change the pool.
func (c *Controller) refresh() {
	poly, err := c.path.Rebuild()
	if err != nil {
		tracer().Errorf("rebuild failed: %v", err)
		return
	}
	c.geom.SetVertices(poly, c.colorize(len(poly)))
	c.repositionHandles()
}

// colorize produces the per-vertex color buffer, highlighting the
// selected segment's sample span.
func (c *Controller) colorize(n int) []color.RGBA {
	colors := make([]color.RGBA, n)
	for i := range colors {
		colors[i] = c.CurveColor
	}
	if c.selected >= 0 {
		offs := c.path.Offsets()
		lo, hi := offs[c.selected], offs[c.selected+1]+1 // spans include both joints
		if hi > n {
			hi = n
		}
		for i := lo; i < hi; i++ {
			colors[i] = c.SelectColor
		}
	}
	return colors
}

// repositionHandles moves every pooled handle onto its polyline offset:
// handle i sits on the first sample of segment i, the last handle on the
// final vertex.
func (c *Controller) repositionHandles() {
	if !c.visible {
		return
	}
	poly := c.path.Polyline()
	offs := c.path.Offsets()
	for i, h := range c.handles {
		if i < len(offs) {
			h.MoveTo(poly[offs[i]])
		}
	}
}
